package searcher

import "fmt"

// Analyzer tallies the work done by a single search: nodes visited and the
// deepest ply reached. It is carried through the recursion by reference
// and read back after the search returns; it never influences move
// selection. No state outlives its owning search.
type Analyzer struct {
	nodes    int
	maxDepth int
}

func (a *Analyzer) visit(ply int) {
	a.nodes++
	if ply > a.maxDepth {
		a.maxDepth = ply
	}
}

func (a *Analyzer) reset() {
	a.nodes = 0
	a.maxDepth = 0
}

// Nodes is the number of positions the search visited.
func (a Analyzer) Nodes() int {
	return a.nodes
}

// MaxDepth is the deepest recursion level the search reached.
func (a Analyzer) MaxDepth() int {
	return a.maxDepth
}

func (a Analyzer) String() string {
	return fmt.Sprintf("visited %d nodes, reaching depth %d", a.nodes, a.maxDepth)
}
