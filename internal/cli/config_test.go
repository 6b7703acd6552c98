package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestMergeConfigFile_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "vertices = 500\ndegree = 3\nseed = 7\n")
	opts := defaultBenchOptions()
	fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
	registerBenchFlags(fs, &opts)

	if err := mergeConfigFile(path, fs, &opts); err != nil {
		t.Fatalf("mergeConfigFile: %v", err)
	}
	if opts.Vertices != 500 || opts.Degree != 3 || opts.Seed != 7 {
		t.Errorf("got n=%d deg=%d seed=%d; want 500 3 7", opts.Vertices, opts.Degree, opts.Seed)
	}
	// untouched fields keep defaults
	if opts.Iters != 1 || opts.Start != 0 {
		t.Errorf("got iters=%d start=%d; want 1 0", opts.Iters, opts.Start)
	}
}

func TestMergeConfigFile_FlagsWinOverFile(t *testing.T) {
	path := writeConfig(t, "vertices = 500\nworkers = 2\n")
	opts := defaultBenchOptions()
	fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
	registerBenchFlags(fs, &opts)
	if err := fs.Parse([]string{"--n", "999"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	if err := mergeConfigFile(path, fs, &opts); err != nil {
		t.Fatalf("mergeConfigFile: %v", err)
	}
	if opts.Vertices != 999 {
		t.Errorf("explicit flag lost: n = %d; want 999", opts.Vertices)
	}
	if opts.Workers != 2 {
		t.Errorf("file value lost: workers = %d; want 2", opts.Workers)
	}
}

func TestMergeConfigFile_Malformed(t *testing.T) {
	path := writeConfig(t, "vertices = [not toml")
	opts := defaultBenchOptions()
	fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
	registerBenchFlags(fs, &opts)

	if err := mergeConfigFile(path, fs, &opts); err == nil {
		t.Error("expected parse error for malformed TOML")
	}
}

func TestBenchOptions_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*benchOptions)
		wantOK bool
	}{
		{"defaults", func(*benchOptions) {}, true},
		{"zero_vertices", func(o *benchOptions) { o.Vertices = 0 }, false},
		{"negative_degree", func(o *benchOptions) { o.Degree = -1 }, false},
		{"start_out_of_range", func(o *benchOptions) { o.Start = 10000 }, false},
		{"zero_iters", func(o *benchOptions) { o.Iters = 0 }, false},
		{"negative_workers", func(o *benchOptions) { o.Workers = -1 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			o := defaultBenchOptions()
			tc.mutate(&o)
			if err := o.validate(); (err == nil) != tc.wantOK {
				t.Errorf("validate() = %v; wantOK = %v", err, tc.wantOK)
			}
		})
	}
}
