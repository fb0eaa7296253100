package strategy

import (
	"time"

	"golang.org/x/exp/rand"

	"mancala/game"
)

// Random picks a playable bowl uniformly at random.
type Random struct {
	rng *rand.Rand
}

func NewRandom() *Random {
	return NewRandomSeeded(uint64(time.Now().UnixNano()))
}

// NewRandomSeeded creates a Random with a fixed seed, for reproducible
// games.
func NewRandomSeeded(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Play(position game.Position) (game.Bowl, bool) {
	options := position.Options()
	if len(options) == 0 {
		return 0, false
	}
	return options[r.rng.Intn(len(options))], true
}
