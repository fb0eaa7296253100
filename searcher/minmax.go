package searcher

import (
	"fmt"

	"mancala/game"
)

// MinMax picks the option that maximizes the minimum win by searching the
// entire reachable game tree. Scores follow the negamax convention: every
// recursive call evaluates the position for whoever then moves, so a value
// crossing a turn change is negated on the way up.
type MinMax struct {
	analyzer Analyzer
}

func NewMinMax() *MinMax {
	return &MinMax{}
}

// Play returns the best bowl for the position, or false when there is no
// legal move.
func (m *MinMax) Play(position game.Position) (game.Bowl, bool) {
	bowl, ok, _ := m.Search(position)
	return bowl, ok
}

// Search returns the best bowl together with its value. On a finished
// position there is no bowl and the value is the final score.
func (m *MinMax) Search(position game.Position) (game.Bowl, bool, Value) {
	m.analyzer.reset()
	return m.search(position, 0)
}

// Analyzer reports telemetry for the most recent search.
func (m *MinMax) Analyzer() Analyzer {
	return m.analyzer
}

func (m *MinMax) search(position game.Position, ply int) (game.Bowl, bool, Value) {
	m.analyzer.visit(ply)

	if position.Finished() {
		score, _ := position.Score()
		return 0, false, Actual(score)
	}

	var bestBowl game.Bowl
	found := false
	best := NegativeInfinity()
	for _, bowl := range position.Options() {
		next := mustSow(position, bowl)
		_, _, value := m.search(next, ply+1)
		if next.Turn() != position.Turn() {
			value = value.Opposite()
		}
		// Strict comparison: ties keep the lowest bowl index.
		if best.Less(value) {
			best = value
			bestBowl = bowl
			found = true
		}
	}
	return bestBowl, found, best
}

// mustSow plays a bowl the search obtained from Options. A failure here is
// a bug in the search, not bad input.
func mustSow(position game.Position, bowl game.Bowl) game.Position {
	next, err := position.Play(bowl)
	if err != nil {
		panic(fmt.Sprintf("searcher: option %d is not playable: %v", bowl, err))
	}
	return next
}
