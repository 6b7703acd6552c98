package builder_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/frontier/builder"
)

// TestReadEdgeList_Basic parses a plain "u v" stream.
func TestReadEdgeList_Basic(t *testing.T) {
	in := strings.NewReader("0 1\n0 2\n1 3\n")
	g, err := builder.ReadEdgeList(in, 4)
	if err != nil {
		t.Fatalf("ReadEdgeList: %v", err)
	}
	if g.NumEdges() != 3 {
		t.Errorf("NumEdges = %d; want 3", g.NumEdges())
	}
	if got := g.Neighbors(0); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("Neighbors(0) = %v; want [1 2]", got)
	}
}

// TestReadEdgeList_SkipsInvalidPairs: out-of-range and self-loop pairs are
// ignored, matching lenient loader semantics.
func TestReadEdgeList_SkipsInvalidPairs(t *testing.T) {
	in := strings.NewReader("0 1\n5 2\n-1 0\n2 2\n1 2\n")
	g, err := builder.ReadEdgeList(in, 3)
	if err != nil {
		t.Fatalf("ReadEdgeList: %v", err)
	}
	if g.NumEdges() != 2 {
		t.Errorf("NumEdges = %d; want 2", g.NumEdges())
	}
}

// TestReadEdgeList_Syntax: bad tokens and dangling endpoints are rejected.
func TestReadEdgeList_Syntax(t *testing.T) {
	if _, err := builder.ReadEdgeList(strings.NewReader("0 x\n"), 3); !errors.Is(err, builder.ErrEdgeListSyntax) {
		t.Errorf("bad token: got %v; want ErrEdgeListSyntax", err)
	}
	if _, err := builder.ReadEdgeList(strings.NewReader("0 1 2"), 3); !errors.Is(err, builder.ErrEdgeListSyntax) {
		t.Errorf("dangling endpoint: got %v; want ErrEdgeListSyntax", err)
	}
}

// TestEdgeList_RoundTrip: Write → Read reproduces the adjacency exactly.
func TestEdgeList_RoundTrip(t *testing.T) {
	g, err := builder.Build(100,
		[]builder.BuilderOption{builder.WithSeed(42)},
		builder.RandomAverageDegree(5),
	)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var buf bytes.Buffer
	if err = builder.WriteEdgeList(&buf, g); err != nil {
		t.Fatalf("WriteEdgeList: %v", err)
	}
	back, err := builder.ReadEdgeList(&buf, g.NumVertices())
	if err != nil {
		t.Fatalf("ReadEdgeList: %v", err)
	}

	if back.NumEdges() != g.NumEdges() {
		t.Fatalf("NumEdges = %d; want %d", back.NumEdges(), g.NumEdges())
	}
	for v := 0; v < g.NumVertices(); v++ {
		if !reflect.DeepEqual(g.Neighbors(v), back.Neighbors(v)) {
			t.Fatalf("adjacency diverged at vertex %d", v)
		}
	}
}
