package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// benchOptions are the knobs shared by the bench and render commands.
// Zero values are filled by defaultBenchOptions, not by this struct.
type benchOptions struct {
	// Vertices is the graph size: generator output size, or the vertex
	// universe when loading an edge list from File.
	Vertices int `toml:"vertices"`

	// Degree is the approximate average degree of the synthetic graph.
	Degree int `toml:"degree"`

	// Start is the BFS start vertex.
	Start int `toml:"start"`

	// Seed drives the synthetic generator.
	Seed int64 `toml:"seed"`

	// Iters repeats each traversal; reported times are totals and averages.
	Iters int `toml:"iters"`

	// Workers is the parallel worker count; 0 means GOMAXPROCS.
	Workers int `toml:"workers"`

	// File, when non-empty, loads an undirected "u v" edge list instead of
	// generating a synthetic graph.
	File string `toml:"file"`
}

// defaultBenchOptions mirrors the historical defaults of the benchmark:
// 10000 vertices, average degree 8, start 0, seed 42, one iteration.
func defaultBenchOptions() benchOptions {
	return benchOptions{
		Vertices: 10000,
		Degree:   8,
		Start:    0,
		Seed:     42,
		Iters:    1,
		Workers:  0,
	}
}

// registerBenchFlags binds the shared options onto a flag set using the
// historical flag names (--n, --deg, --start, --seed, --iters, --file).
func registerBenchFlags(fs *pflag.FlagSet, o *benchOptions) {
	fs.IntVar(&o.Vertices, "n", o.Vertices, "number of vertices (synthetic graph)")
	fs.IntVar(&o.Degree, "deg", o.Degree, "approximate average degree (synthetic graph)")
	fs.IntVar(&o.Start, "start", o.Start, "BFS start vertex")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "RNG seed for the synthetic generator")
	fs.IntVar(&o.Iters, "iters", o.Iters, "traversal repetitions per engine")
	fs.IntVar(&o.Workers, "workers", o.Workers, "parallel worker count (0 = GOMAXPROCS)")
	fs.StringVar(&o.File, "file", o.File, "load edge list \"u v\" instead of generating")
}

// mergeConfigFile overlays values from a TOML file onto o for every option
// whose flag was not explicitly set: defaults < file < flags.
func mergeConfigFile(path string, fs *pflag.FlagSet, o *benchOptions) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	fromFile := *o
	if err = toml.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if !fs.Changed("n") {
		o.Vertices = fromFile.Vertices
	}
	if !fs.Changed("deg") {
		o.Degree = fromFile.Degree
	}
	if !fs.Changed("start") {
		o.Start = fromFile.Start
	}
	if !fs.Changed("seed") {
		o.Seed = fromFile.Seed
	}
	if !fs.Changed("iters") {
		o.Iters = fromFile.Iters
	}
	if !fs.Changed("workers") {
		o.Workers = fromFile.Workers
	}
	if !fs.Changed("file") {
		o.File = fromFile.File
	}

	return nil
}

// validate rejects option combinations the engines would only reject
// later, with friendlier messages.
func (o benchOptions) validate() error {
	if o.Vertices < 1 {
		return fmt.Errorf("invalid --n %d: need at least one vertex", o.Vertices)
	}
	if o.Degree < 0 {
		return fmt.Errorf("invalid --deg %d: degree cannot be negative", o.Degree)
	}
	if o.Start < 0 || o.Start >= o.Vertices {
		return fmt.Errorf("invalid --start %d: outside [0, %d)", o.Start, o.Vertices)
	}
	if o.Iters < 1 {
		return fmt.Errorf("invalid --iters %d: need at least one iteration", o.Iters)
	}
	if o.Workers < 0 {
		return fmt.Errorf("invalid --workers %d: cannot be negative", o.Workers)
	}

	return nil
}
