// SPDX-License-Identifier: MIT
// Package op - operator model: binary operators, monoids and semirings.
//
// Purpose:
//   - Binary[A,B,C] is a pure function of two values.
//   - Monoid[T] is an associative Binary[T,T,T] with an identity element.
//   - Semiring[A,B,C] pairs a Combine (multiply-like) operator with a Reduce
//     (add-like) monoid; algebra kernels take one of these instead of hard-coded +/×.
//
// Determinism:
//   - Operators are plain functions; kernels apply them in iteration order, so
//     non-associative user operators still produce reproducible results.
//
// AI-Hints:
//   - Use the predefined constructors (PlusTimes, MinPlus, LOrLAnd, ...) for the
//     classic GraphBLAS semirings; build custom ones with NewSemiring.

package op

import (
	"cmp"
	"math"
	"reflect"
)

// Number is the set of built-in numeric types the predefined operators accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Binary is a pure function of two values to one value.
type Binary[A, B, C any] func(a A, b B) C

// Unary is a pure function of one value.
type Unary[A, B any] func(a A) B

// Monoid is an associative operator with an identity element.
type Monoid[T any] struct {
	Op       Binary[T, T, T]
	Identity T
}

// NewMonoid bundles op with its identity.
func NewMonoid[T any](op Binary[T, T, T], identity T) Monoid[T] {
	return Monoid[T]{Op: op, Identity: identity}
}

// Fold reduces values left-to-right starting from the identity.
func (m Monoid[T]) Fold(values ...T) T {
	acc := m.Identity
	for _, v := range values {
		acc = m.Op(acc, v)
	}
	return acc
}

// Semiring pairs a combine operator with a reduce monoid.
type Semiring[A, B, C any] struct {
	Combine Binary[A, B, C]
	Reduce  Monoid[C]
}

// NewSemiring bundles combine and reduce.
func NewSemiring[A, B, C any](combine Binary[A, B, C], reduce Monoid[C]) Semiring[A, B, C] {
	return Semiring[A, B, C]{Combine: combine, Reduce: reduce}
}

// ---------- Binary operators ----------

// Plus returns a + b.
func Plus[T Number](a, b T) T { return a + b }

// Minus returns a - b.
func Minus[T Number](a, b T) T { return a - b }

// Times returns a * b.
func Times[T Number](a, b T) T { return a * b }

// Div returns a / b. Integer division by zero panics as usual in Go.
func Div[T Number](a, b T) T { return a / b }

// Min returns the smaller operand.
func Min[T cmp.Ordered](a, b T) T { return min(a, b) }

// Max returns the larger operand.
func Max[T cmp.Ordered](a, b T) T { return max(a, b) }

// First returns a and ignores b.
func First[A, B any](a A, _ B) A { return a }

// Second returns b and ignores a.
func Second[A, B any](_ A, b B) B { return b }

// Pair returns 1 whatever its operands (GraphBLAS "oneb").
func Pair[C Number, A, B any](A, B) C { return 1 }

// Any returns either operand; here the first.
func Any[T any](a, _ T) T { return a }

// LOr returns a || b.
func LOr(a, b bool) bool { return a || b }

// LAnd returns a && b.
func LAnd(a, b bool) bool { return a && b }

// LXor returns a != b.
func LXor(a, b bool) bool { return a != b }

// Eq reports a == b.
func Eq[T comparable](a, b T) bool { return a == b }

// ---------- Monoids ----------

// PlusMonoid is (+, 0).
func PlusMonoid[T Number]() Monoid[T] { return NewMonoid[T](Plus[T], 0) }

// TimesMonoid is (×, 1).
func TimesMonoid[T Number]() Monoid[T] { return NewMonoid[T](Times[T], 1) }

// MinMonoid is (min, +∞) for floats or the maximal value for integers.
func MinMonoid[T Number]() Monoid[T] { return NewMonoid[T](Min[T], maxValue[T]()) }

// MaxMonoid is (max, -∞) for floats or the minimal value for integers.
func MaxMonoid[T Number]() Monoid[T] { return NewMonoid[T](Max[T], minValue[T]()) }

// LOrMonoid is (||, false).
func LOrMonoid() Monoid[bool] { return NewMonoid[bool](LOr, false) }

// LAndMonoid is (&&, true).
func LAndMonoid() Monoid[bool] { return NewMonoid[bool](LAnd, true) }

// LXorMonoid is (!=, false).
func LXorMonoid() Monoid[bool] { return NewMonoid[bool](LXor, false) }

// AnyMonoid keeps the first value reduced; identity is the zero value and is
// only meaningful as a placeholder.
func AnyMonoid[T any]() Monoid[T] {
	var zero T
	return NewMonoid[T](Any[T], zero)
}

// ---------- Semirings ----------

// PlusTimes is the conventional arithmetic semiring.
func PlusTimes[T Number]() Semiring[T, T, T] {
	return NewSemiring[T, T, T](Times[T], PlusMonoid[T]())
}

// MinPlus is the tropical semiring used for shortest paths.
func MinPlus[T Number]() Semiring[T, T, T] {
	return NewSemiring[T, T, T](Plus[T], MinMonoid[T]())
}

// MaxPlus is the max-plus semiring (longest paths, scheduling).
func MaxPlus[T Number]() Semiring[T, T, T] {
	return NewSemiring[T, T, T](Plus[T], MaxMonoid[T]())
}

// MaxTimes is the max-times semiring (most reliable path).
func MaxTimes[T Number]() Semiring[T, T, T] {
	return NewSemiring[T, T, T](Times[T], MaxMonoid[T]())
}

// MinTimes is the min-times semiring.
func MinTimes[T Number]() Semiring[T, T, T] {
	return NewSemiring[T, T, T](Times[T], MinMonoid[T]())
}

// LOrLAnd is the boolean semiring used for reachability.
func LOrLAnd() Semiring[bool, bool, bool] {
	return NewSemiring[bool, bool, bool](LAnd, LOrMonoid())
}

// PlusFirst reduces with + the left operand of every matched pair.
func PlusFirst[T Number, B any]() Semiring[T, B, T] {
	return NewSemiring[T, B, T](First[T, B], PlusMonoid[T]())
}

// PlusSecond reduces with + the right operand of every matched pair.
func PlusSecond[A any, T Number]() Semiring[A, T, T] {
	return NewSemiring[A, T, T](Second[A, T], PlusMonoid[T]())
}

// PlusPair counts matched pairs.
func PlusPair[T Number, A, B any]() Semiring[A, B, T] {
	return NewSemiring[A, B, T](Pair[T, A, B], PlusMonoid[T]())
}

// MinFirst keeps the smallest left operand of every matched pair.
func MinFirst[T Number, B any]() Semiring[T, B, T] {
	return NewSemiring[T, B, T](First[T, B], MinMonoid[T]())
}

// MinSecond keeps the smallest right operand (BFS parent selection).
func MinSecond[A any, T Number]() Semiring[A, T, T] {
	return NewSemiring[A, T, T](Second[A, T], MinMonoid[T]())
}

// AnyPair marks structure: true for every matched pair.
func AnyPair[A, B any]() Semiring[A, B, bool] {
	return NewSemiring[A, B, bool](func(A, B) bool { return true }, LOrMonoid())
}

// ---------- Truthiness ----------

// Truthy reports whether a mask value selects its key: true for bools, non-zero
// for numbers (named types included), non-nil for pointers, maps, slices,
// channels and funcs. Any other value is truthy by presence.
func Truthy[T any](v T) bool {
	switch x := any(v).(type) {
	case bool:
		return x
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	case nil:
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return !rv.IsZero()
	default:
		return true
	}
}

// maxValue returns +Inf for floats and the largest representable value otherwise.
func maxValue[T Number]() T {
	var zero T
	t := reflect.TypeOf(zero)
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		inf := math.Inf(1)
		return T(inf)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		m := int64(1)<<(t.Bits()-1) - 1
		return T(m)
	default:
		u := ^uint64(0) >> (64 - t.Bits())
		return T(u)
	}
}

// minValue returns -Inf for floats and the smallest representable value otherwise.
func minValue[T Number]() T {
	var zero T
	t := reflect.TypeOf(zero)
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		inf := math.Inf(-1)
		return T(inf)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		m := -(int64(1) << (t.Bits() - 1))
		return T(m)
	default:
		return zero
	}
}
