// Package strategy defines the move-selection contract and the trivial
// pickers. The searching strategies live in package searcher and satisfy
// the same interface.
package strategy

import "mancala/game"

// Strategy selects a bowl to play for a position. The second return is
// false when the strategy found no legal move, which a correct caller only
// ever sees on a position without options.
type Strategy interface {
	Play(position game.Position) (game.Bowl, bool)
}
