// SPDX-License-Identifier: MIT

package config

import "math"

// Config is the full command configuration.
type Config struct {
	Log      LogConfig      `koanf:"log"`
	Input    InputConfig    `koanf:"input"`
	Snapshot SnapshotConfig `koanf:"snapshot"`
	Search   SearchConfig   `koanf:"search"`
}

// LogConfig controls the command logger.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=text json"`
	// Color is auto (terminal detection), always or never; text format only.
	Color string `koanf:"color" validate:"oneof=auto always never"`
}

// InputConfig tunes Matrix Market ingestion.
type InputConfig struct {
	ZeroBased bool `koanf:"zero_based"`
	Sort      bool `koanf:"sort"`
}

// SnapshotConfig tunes binary snapshots.
type SnapshotConfig struct {
	Compression string `koanf:"compression" validate:"oneof=none lz4 zstd"`
}

// SearchConfig holds traversal and shortest-path parameters.
type SearchConfig struct {
	Source int `koanf:"source" validate:"gte=0"`
	// MaxDepth bounds BFS levels; 0 means unbounded.
	MaxDepth int    `koanf:"max_depth" validate:"gte=0"`
	Solver   string `koanf:"solver" validate:"oneof=bellman-ford dijkstra"`
	// MaxDistance prunes SSSP results; 0 means unbounded.
	MaxDistance float64 `koanf:"max_distance" validate:"gte=0"`
	// InfEdgeThreshold drops edges at or above it; 0 keeps all.
	InfEdgeThreshold float64 `koanf:"inf_edge_threshold" validate:"gte=0"`
}

func defaultConfig() *Config {
	return &Config{
		Log:      LogConfig{Level: "info", Format: "text", Color: "auto"},
		Snapshot: SnapshotConfig{Compression: "zstd"},
		Search:   SearchConfig{Solver: "bellman-ford"},
	}
}

// Default returns the built-in configuration.
func Default() *Config { return defaultConfig() }

// DistanceLimit returns MaxDistance with 0 mapped to +Inf.
func (s SearchConfig) DistanceLimit() float64 {
	if s.MaxDistance == 0 {
		return math.Inf(1)
	}
	return s.MaxDistance
}

// EdgeThreshold returns InfEdgeThreshold with 0 mapped to +Inf.
func (s SearchConfig) EdgeThreshold() float64 {
	if s.InfEdgeThreshold == 0 {
		return math.Inf(1)
	}
	return s.InfEdgeThreshold
}
