package searcher

import "mancala/game"

// Heuristic estimates the value of a position for whoever moves next,
// without full knowledge of the game tree.
type Heuristic interface {
	Evaluate(position game.Position) Value
}

// HeuristicFunc adapts a plain function to the Heuristic interface.
type HeuristicFunc func(position game.Position) Value

func (f HeuristicFunc) Evaluate(position game.Position) Value {
	return f(position)
}

// Delta values a position by the captured-stone difference between the
// mover and the opponent.
func Delta() Heuristic {
	return HeuristicFunc(func(position game.Position) Value {
		return Actual(position.Delta())
	})
}
