package builder

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/frontier/core"
)

// ReadEdgeList loads an undirected graph on n vertices from a stream of
// whitespace-separated "u v" pairs with 0-based ids. Pairs that are
// out of range or self-loops are silently skipped, so a loader can consume
// dumps that reference a larger vertex universe. A non-integer token or a
// dangling endpoint yields ErrEdgeListSyntax.
// Complexity: O(V + E·log E) including the final Freeze.
func ReadEdgeList(r io.Reader, n int) (*core.Graph, error) {
	b, err := core.NewBuilder(n)
	if err != nil {
		return nil, fmt.Errorf("ReadEdgeList: %w", err)
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	pending := -1 // first endpoint of the pair being read, -1 if none
	for sc.Scan() {
		id, convErr := strconv.Atoi(sc.Text())
		if convErr != nil {
			return nil, fmt.Errorf("%w: token %q", ErrEdgeListSyntax, sc.Text())
		}
		if pending < 0 {
			pending = id
			continue
		}
		u, v := pending, id
		pending = -1
		if u < 0 || u >= n || v < 0 || v >= n || u == v {
			continue // out-of-range or loop: skip the pair, keep reading
		}
		if err = b.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("ReadEdgeList: %w", err)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadEdgeList: %w", err)
	}
	if pending >= 0 {
		return nil, fmt.Errorf("%w: dangling endpoint %d", ErrEdgeListSyntax, pending)
	}

	return b.Freeze(), nil
}

// WriteEdgeList dumps g as "u v" lines with u < v, one undirected edge per
// line, in ascending order. The output round-trips through ReadEdgeList.
// Complexity: O(V + E).
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	for u := 0; u < g.NumVertices(); u++ {
		for _, v := range g.Neighbors(u) {
			if u >= v {
				continue // emit each undirected edge once
			}
			if _, err := fmt.Fprintf(bw, "%d %d\n", u, v); err != nil {
				return fmt.Errorf("WriteEdgeList: %w", err)
			}
		}
	}

	return bw.Flush()
}
