package carve

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// findSeamGraph expresses the vertical seam search as a single source
// shortest path problem and solves it with Dijkstra's algorithm.
//
// The energy grid becomes a layered directed acyclic graph: one node per
// pixel, each connected to its up to three neighbors in the row below with an
// edge weighted by the successor's energy. A synthetic source node feeds
// every first row pixel with the pixel's own energy as weight and every last
// row pixel reaches a synthetic sink through a zero weight edge. The interior
// of the source to sink shortest path visits exactly one pixel per row, which
// is the seam.
//
// The total path cost always equals the one found by dynamic programming;
// the visited columns may differ when several minimal paths exist, since the
// traversal order of equal cost queue entries is unspecified. Should the
// reconstructed path not span every row, the search falls back to the
// dynamic programming strategy so that callers always receive a valid seam.
func findSeamGraph(energy *mat.Dense) []int {
	height, width := energy.Dims()

	source := int64(width * height)
	sink := source + 1
	id := func(x, y int) int64 {
		return int64(y*width + x)
	}

	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for x := 0; x < width; x++ {
		g.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(source),
			T: simple.Node(id(x, 0)),
			W: energy.At(0, x),
		})
		g.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(id(x, height-1)),
			T: simple.Node(sink),
			W: 0,
		})
	}

	for y := 0; y < height-1; y++ {
		for x := 0; x < width; x++ {
			for dx := -1; dx <= 1; dx++ {
				nx := x + dx
				if nx < 0 || nx >= width {
					continue
				}
				g.SetWeightedEdge(simple.WeightedEdge{
					F: simple.Node(id(x, y)),
					T: simple.Node(id(nx, y+1)),
					W: energy.At(y+1, nx),
				})
			}
		}
	}

	shortest := path.DijkstraFrom(simple.Node(source), g)
	nodes, dist := shortest.To(sink)

	// The path must contain one node per row plus the two synthetic endpoints.
	if math.IsInf(dist, 1) || len(nodes) != height+2 {
		return findSeamDP(energy)
	}

	seam := make([]int, height)
	for i, n := range nodes[1 : len(nodes)-1] {
		seam[i] = int(n.ID()) % width
	}
	return seam
}
