package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/frontier/bfs"
)

// TestSequential_Errors verifies that invalid inputs and options are rejected
// before any traversal state is created.
func TestSequential_Errors(t *testing.T) {
	if _, err := bfs.Sequential(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := buildGraph(t, 3, [2]int{0, 1})
	if _, err := bfs.Sequential(g, -1); !errors.Is(err, bfs.ErrStartOutOfRange) {
		t.Errorf("start=-1: want ErrStartOutOfRange, got %v", err)
	}
	if _, err := bfs.Sequential(g, 3); !errors.Is(err, bfs.ErrStartOutOfRange) {
		t.Errorf("start=3: want ErrStartOutOfRange, got %v", err)
	}
	if _, err := bfs.Sequential(g, 0, bfs.WithWorkers(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative workers: want ErrOptionViolation, got %v", err)
	}
}

// TestSequential_SingleVertex covers the trivial one-vertex graph.
func TestSequential_SingleVertex(t *testing.T) {
	g := buildGraph(t, 1)
	res, err := bfs.Sequential(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Levels, want) {
		t.Errorf("Levels = %v; want %v", res.Levels, want)
	}
}

// TestSequential_Levels checks the canonical 4-vertex fixture:
// edges (0,1),(0,2),(1,3), start 0 → levels [0,1,1,2].
func TestSequential_Levels(t *testing.T) {
	g := buildGraph(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 3})
	res, err := bfs.Sequential(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 1, 2}; !reflect.DeepEqual(res.Levels, want) {
		t.Errorf("Levels = %v; want %v", res.Levels, want)
	}
	// sorted adjacency makes the order fully deterministic
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestSequential_NoEdges: only the start vertex is reached.
func TestSequential_NoEdges(t *testing.T) {
	g := buildGraph(t, 3)
	res, err := bfs.Sequential(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, bfs.Unreached, bfs.Unreached}; !reflect.DeepEqual(res.Levels, want) {
		t.Errorf("Levels = %v; want %v", res.Levels, want)
	}
	if want := []int{0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestSequential_Cycle: C4 from vertex 0 → levels [0,1,2,1].
func TestSequential_Cycle(t *testing.T) {
	g := buildGraph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})
	res, err := bfs.Sequential(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2, 1}; !reflect.DeepEqual(res.Levels, want) {
		t.Errorf("Levels = %v; want %v", res.Levels, want)
	}
}

// TestSequential_Disconnected: traversal stays in the start's component.
func TestSequential_Disconnected(t *testing.T) {
	g := buildGraph(t, 4, [2]int{0, 1}, [2]int{2, 3})
	res, err := bfs.Sequential(g, 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{bfs.Unreached, bfs.Unreached, 0, 1}; !reflect.DeepEqual(res.Levels, want) {
		t.Errorf("Levels = %v; want %v", res.Levels, want)
	}
	if res.Reached(0) || !res.Reached(3) {
		t.Errorf("Reached: got (0:%v, 3:%v); want (false, true)", res.Reached(0), res.Reached(3))
	}
}

// TestSequential_WithoutLevels: order intact, level array skipped.
func TestSequential_WithoutLevels(t *testing.T) {
	g := buildGraph(t, 4, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 3})
	res, err := bfs.Sequential(g, 0, bfs.WithoutLevels())
	if err != nil {
		t.Fatal(err)
	}
	if res.Levels != nil {
		t.Errorf("Levels = %v; want nil", res.Levels)
	}
	if want := []int{0, 1, 2, 3}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestSequential_Idempotent: repeated runs on the same inputs are identical.
func TestSequential_Idempotent(t *testing.T) {
	g := randomGraph(t, 500, 4, 42)
	first, err := bfs.Sequential(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		again, err := bfs.Sequential(g, 0)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first.Order, again.Order) {
			t.Fatalf("run %d: Order diverged", i)
		}
		if !reflect.DeepEqual(first.Levels, again.Levels) {
			t.Fatalf("run %d: Levels diverged", i)
		}
	}
}

// TestSequential_Cancellation: a cancelled context halts the traversal.
func TestSequential_Cancellation(t *testing.T) {
	g := buildGraph(t, 2, [2]int{0, 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.Sequential(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancellation: want context.Canceled, got %v", err)
	}
}
