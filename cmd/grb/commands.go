// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/katalvlaran/grb"
	"github.com/katalvlaran/grb/algebra"
	"github.com/katalvlaran/grb/bfs"
	"github.com/katalvlaran/grb/codec"
	"github.com/katalvlaran/grb/core"
	"github.com/katalvlaran/grb/internal/config"
	"github.com/katalvlaran/grb/op"
	"github.com/katalvlaran/grb/sssp"
	"github.com/katalvlaran/grb/view"
)

// cmdEnv is what every command receives.
type cmdEnv struct {
	ctx context.Context
	cfg *config.Config
	log *grb.Logger
	out io.Writer
}

type command func(e *cmdEnv, args []string) error

var commands = map[string]command{
	"info":    runInfo,
	"reduce":  runReduce,
	"bfs":     runBFS,
	"sssp":    runSSSP,
	"convert": runConvert,
}

// parseArgs parses command flags and checks the positional count.
func parseArgs(fs *flag.FlagSet, args []string, want int) error {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", fs.Name(), err)
	}
	if fs.NArg() != want {
		return fmt.Errorf("%s: want %d file argument(s), got %d", fs.Name(), want, fs.NArg())
	}
	return nil
}

func runInfo(e *cmdEnv, args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	if err := parseArgs(fs, args, 1); err != nil {
		return err
	}
	m, err := e.loadMatrix(fs.Arg(0))
	if err != nil {
		return err
	}

	ones := view.Transform[core.Index, float64, int](m, func(float64) int { return 1 })
	deg, err := algebra.ReduceRows[int](ones, op.PlusMonoid[int]())
	if err != nil {
		return err
	}
	maxDeg, _ := algebra.ReduceScalar[int, int](deg, op.MaxMonoid[int]())
	minDeg := 0
	if m.Rows() > 0 && deg.Size() == m.Rows() {
		minDeg, _ = algebra.ReduceScalar[int, int](deg, op.MinMonoid[int]())
	}
	symmetric := m.Rows() == m.Cols() &&
		core.Equal[core.Index, float64](m, view.Transpose[float64](m), func(a, b float64) bool { return a == b })

	tw := tabwriter.NewWriter(e.out, 0, 4, 1, ' ', 0)
	fmt.Fprintf(tw, "shape\t%s\n", m.Shape())
	fmt.Fprintf(tw, "nnz\t%d\n", m.Size())
	if cells := m.Shape().Cells(); cells > 0 {
		fmt.Fprintf(tw, "density\t%.6g\n", float64(m.Size())/float64(cells))
	}
	fmt.Fprintf(tw, "empty rows\t%d\n", m.Rows()-deg.Size())
	fmt.Fprintf(tw, "row degree\tmin %d, max %d\n", minDeg, maxDeg)
	fmt.Fprintf(tw, "symmetric\t%t\n", symmetric)
	return tw.Flush()
}

func runReduce(e *cmdEnv, args []string) error {
	fs := flag.NewFlagSet("reduce", flag.ContinueOnError)
	name := fs.String("op", "plus", "Monoid (plus, times, min, max)")
	cols := fs.Bool("cols", false, "Reduce columns instead of rows")
	if err := parseArgs(fs, args, 1); err != nil {
		return err
	}
	monoids := map[string]op.Monoid[float64]{
		"plus":  op.PlusMonoid[float64](),
		"times": op.TimesMonoid[float64](),
		"min":   op.MinMonoid[float64](),
		"max":   op.MaxMonoid[float64](),
	}
	mon, ok := monoids[*name]
	if !ok {
		return fmt.Errorf("reduce: unknown monoid %q: %w", *name, core.ErrInvalidArgument)
	}
	m, err := e.loadMatrix(fs.Arg(0))
	if err != nil {
		return err
	}
	reduce := algebra.ReduceRows[float64]
	if *cols {
		reduce = algebra.ReduceCols[float64]
	}
	v, err := reduce(m, mon)
	if err != nil {
		return err
	}
	e.log.Debug("reduced", slog.String("monoid", *name), slog.Bool("cols", *cols), slog.Int("nnz", v.Size()))
	v.Do(func(i int, x float64) bool {
		fmt.Fprintf(e.out, "%d\t%g\n", i, x)
		return true
	})
	return nil
}

func runBFS(e *cmdEnv, args []string) error {
	fs := flag.NewFlagSet("bfs", flag.ContinueOnError)
	source := fs.Int("source", e.cfg.Search.Source, "Source vertex (0-based)")
	maxDepth := fs.Int("max-depth", e.cfg.Search.MaxDepth, "Depth limit, 0 for none")
	dest := fs.Int("path", -1, "Print the path to this vertex instead of the table")
	if err := parseArgs(fs, args, 1); err != nil {
		return err
	}
	e.cfg.Search.Source, e.cfg.Search.MaxDepth = *source, *maxDepth
	if err := e.cfg.Validate(); err != nil {
		return err
	}
	m, err := e.loadMatrix(fs.Arg(0))
	if err != nil {
		return err
	}
	res, err := bfs.Levels[float64](m, e.cfg.Search.Source,
		bfs.WithContext(e.ctx),
		bfs.WithMaxDepth(e.cfg.Search.MaxDepth),
		bfs.WithLogger(e.log.Logger),
	)
	if err != nil {
		return err
	}
	if *dest >= 0 {
		path, err := res.PathTo(*dest)
		if err != nil {
			return err
		}
		fmt.Fprintln(e.out, formatPath(path))
		return nil
	}
	tw := tabwriter.NewWriter(e.out, 0, 4, 1, ' ', 0)
	fmt.Fprintln(tw, "vertex\tlevel\tparent")
	for _, v := range res.Order {
		lvl, _ := res.Level.Get(v)
		p, _ := res.Parent.Get(v)
		fmt.Fprintf(tw, "%d\t%d\t%d\n", v, lvl, p)
	}
	return tw.Flush()
}

func runSSSP(e *cmdEnv, args []string) error {
	fs := flag.NewFlagSet("sssp", flag.ContinueOnError)
	s := &e.cfg.Search
	source := fs.Int("source", s.Source, "Source vertex (0-based)")
	solver := fs.String("solver", s.Solver, "Solver (bellman-ford, dijkstra)")
	maxDist := fs.Float64("max-distance", s.MaxDistance, "Drop vertices farther than this, 0 for none")
	threshold := fs.Float64("inf-threshold", s.InfEdgeThreshold, "Ignore edges weighing at least this, 0 for none")
	dest := fs.Int("path", -1, "Print the path to this vertex instead of the table")
	if err := parseArgs(fs, args, 1); err != nil {
		return err
	}
	s.Source, s.Solver, s.MaxDistance, s.InfEdgeThreshold = *source, *solver, *maxDist, *threshold
	if err := e.cfg.Validate(); err != nil {
		return err
	}
	m, err := e.loadMatrix(fs.Arg(0))
	if err != nil {
		return err
	}

	run := sssp.BellmanFord[float64]
	if s.Solver == "dijkstra" {
		run = sssp.Dijkstra[float64]
	}
	res, err := run(m, s.Source,
		sssp.WithContext(e.ctx),
		sssp.WithReturnPath(),
		sssp.WithMaxDistance(s.DistanceLimit()),
		sssp.WithInfEdgeThreshold(s.EdgeThreshold()),
		sssp.WithLogger(e.log.Logger),
	)
	if err != nil {
		return err
	}
	e.log.Debug("shortest paths", slog.String("solver", s.Solver), slog.Int("reached", res.Dist.Size()), slog.Int("rounds", res.Rounds))
	if *dest >= 0 {
		path, err := res.PathTo(*dest)
		if err != nil {
			return err
		}
		d, _ := res.Dist.Get(*dest)
		fmt.Fprintf(e.out, "%s\t%g\n", formatPath(path), d)
		return nil
	}
	tw := tabwriter.NewWriter(e.out, 0, 4, 1, ' ', 0)
	fmt.Fprintln(tw, "vertex\tdistance\tparent")
	res.Dist.Do(func(v int, d float64) bool {
		p, _ := res.Parent.Get(v)
		fmt.Fprintf(tw, "%d\t%g\t%d\n", v, d, p)
		return true
	})
	return tw.Flush()
}

func runConvert(e *cmdEnv, args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	comp := fs.String("compression", e.cfg.Snapshot.Compression, "Snapshot compression (none, lz4, zstd)")
	transpose := fs.Bool("transpose", false, "Write the transpose")
	if err := parseArgs(fs, args, 2); err != nil {
		return err
	}
	e.cfg.Snapshot.Compression = *comp
	if err := e.cfg.Validate(); err != nil {
		return err
	}
	c, err := codec.ParseCompression(e.cfg.Snapshot.Compression)
	if err != nil {
		return err
	}
	m, err := e.loadMatrix(fs.Arg(0))
	if err != nil {
		return err
	}
	var src core.MatrixRange[float64] = m
	if *transpose {
		src = view.Transpose[float64](m)
	}
	if err := e.saveMatrix(fs.Arg(1), src, c); err != nil {
		return err
	}
	e.log.Info("converted", slog.String("from", fs.Arg(0)), slog.String("to", fs.Arg(1)), slog.Int("nnz", m.Size()))
	return nil
}

func formatPath(path []int) string {
	if len(path) == 0 {
		return ""
	}
	b := fmt.Appendf(nil, "%d", path[0])
	for _, v := range path[1:] {
		b = fmt.Appendf(b, " -> %d", v)
	}
	return string(b)
}
