package searcher

import "mancala/game"

// Option configures an AlphaBeta search.
type Option func(*AlphaBeta)

// WithDepth bounds the search to the given ply budget. A budget of zero
// leaves no ply to pick a move in: Search yields only the heuristic value
// and Play reports no move, so move selection needs Limit(1) or more.
func WithDepth(depth Depth) Option {
	return func(ab *AlphaBeta) {
		ab.depth = depth
	}
}

// WithHeuristic sets the position estimate used at the depth cutoff.
func WithHeuristic(heuristic Heuristic) Option {
	return func(ab *AlphaBeta) {
		if heuristic != nil {
			ab.heuristic = heuristic
		}
	}
}

// AlphaBeta is the minmax search with alpha-beta pruning: once an option is
// proven no better than one already examined, the rest of its subtree is
// skipped. With the default Delta heuristic and an unbounded depth it
// selects the same move and score as MinMax while visiting fewer nodes.
type AlphaBeta struct {
	depth     Depth
	heuristic Heuristic
	analyzer  Analyzer
}

// NewAlphaBeta defaults to an unbounded depth and the Delta heuristic.
func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := &AlphaBeta{
		depth:     Infinite(),
		heuristic: Delta(),
	}
	for _, option := range options {
		option(ab)
	}
	return ab
}

// Play returns the best bowl for the position, or false when there is no
// legal move.
func (ab *AlphaBeta) Play(position game.Position) (game.Bowl, bool) {
	bowl, ok, _ := ab.Search(position)
	return bowl, ok
}

// Search runs the configured search from a root window of (-inf, +inf).
func (ab *AlphaBeta) Search(position game.Position) (game.Bowl, bool, Value) {
	ab.analyzer.reset()
	return ab.search(position, NegativeInfinity(), PositiveInfinity(), ab.depth, 0)
}

// Analyzer reports telemetry for the most recent search.
func (ab *AlphaBeta) Analyzer() Analyzer {
	return ab.analyzer
}

func (ab *AlphaBeta) search(position game.Position, alpha, beta Value, depth Depth, ply int) (game.Bowl, bool, Value) {
	ab.analyzer.visit(ply)

	// A finished position is scored exactly; the heuristic only stands in
	// when the depth budget runs out first.
	if position.Finished() {
		score, _ := position.Score()
		return 0, false, Actual(score)
	}
	if depth.IsZero() {
		return 0, false, ab.heuristic.Evaluate(position)
	}

	var bestBowl game.Bowl
	found := false
	best := NegativeInfinity()
	for _, bowl := range position.Options() {
		next := mustSow(position, bowl)
		var value Value
		if next.Turn() == position.Turn() {
			_, _, value = ab.search(next, alpha, beta, depth.Decrement(), ply+1)
		} else {
			// The mover changed: the child is scored from the opponent's
			// point of view, so the window flips along with the value.
			_, _, value = ab.search(next, beta.Opposite(), alpha.Opposite(), depth.Decrement(), ply+1)
			value = value.Opposite()
		}
		if best.Less(value) {
			best = value
			bestBowl = bowl
			found = true
		}
		if alpha.Less(value) {
			alpha = value
		}
		if !alpha.Less(beta) {
			// The remaining siblings cannot improve the parent's outcome.
			break
		}
	}
	return bestBowl, found, best
}
