package searcher

import "mancala/game"

// IterativeDeepening runs an alpha-beta search at every depth from one up
// to the configured maximum and keeps the deepest completed answer. Each
// level is cheap relative to the next, so the total work stays close to a
// single search at the maximum depth.
type IterativeDeepening struct {
	maxDepth  Depth
	heuristic Heuristic
}

// NewIterativeDeepening deepens up to maxDepth. A nil heuristic falls back
// to Delta.
func NewIterativeDeepening(maxDepth Depth, heuristic Heuristic) *IterativeDeepening {
	if heuristic == nil {
		heuristic = Delta()
	}
	return &IterativeDeepening{
		maxDepth:  maxDepth,
		heuristic: heuristic,
	}
}

// Play returns the best bowl found at the deepest completed level, or
// false when there is no legal move.
func (s *IterativeDeepening) Play(position game.Position) (game.Bowl, bool) {
	var bestBowl game.Bowl
	found := false
	for depth := range Limit(1).To(s.maxDepth) {
		ab := NewAlphaBeta(WithDepth(depth), WithHeuristic(s.heuristic))
		if bowl, ok := ab.Play(position); ok {
			bestBowl = bowl
			found = true
		}
	}
	return bestBowl, found
}
