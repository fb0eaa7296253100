package strategy

import "mancala/game"

// First picks the lowest playable bowl. Mainly useful for testing.
type First struct{}

func NewFirst() *First {
	return &First{}
}

func (f *First) Play(position game.Position) (game.Bowl, bool) {
	options := position.Options()
	if len(options) == 0 {
		return 0, false
	}
	return options[0], true
}
