package carve

import "github.com/pkg/errors"

// Strategy selects the seam search algorithm used by the carver.
type Strategy int

const (
	// Optimal computes the globally minimal energy seam with dynamic programming.
	Optimal Strategy = iota
	// Greedy walks the energy grid locally, trading seam quality for speed.
	Greedy
	// GraphShortestPath expresses the seam search as a shortest path
	// problem over a layered pixel graph and solves it with Dijkstra.
	GraphShortestPath
)

var strategyNames = map[Strategy]string{
	Optimal:           "optimal",
	Greedy:            "greedy",
	GraphShortestPath: "graph-shortest-path",
}

// ParseStrategy converts the textual strategy selector to a Strategy value.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return Optimal, errors.Errorf("unsupported seam search strategy: %q", name)
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "unknown"
}
