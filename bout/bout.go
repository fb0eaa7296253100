// Package bout coordinates a game between two strategies, driving them
// against a Game until it finishes or one of them misbehaves.
package bout

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"mancala/game"
	"mancala/strategy"
)

// ErrRightOutOfTheGate is returned when the bout ends before a single play
// was made.
var ErrRightOutOfTheGate = errors.New("bout: no play was ever made")

// IllegalPlayError reports a strategy whose chosen bowl could not be
// applied. It wraps the underlying game error.
type IllegalPlayError struct {
	Player game.Player
	Bowl   game.Bowl
	Err    error
}

func (e *IllegalPlayError) Error() string {
	return fmt.Sprintf("bout: %s played illegal bowl %d: %v", e.Player, e.Bowl, e.Err)
}

func (e *IllegalPlayError) Unwrap() error {
	return e.Err
}

// NoPlayError reports a strategy that offered no move on an unfinished
// position.
type NoPlayError struct {
	Player game.Player
}

func (e *NoPlayError) Error() string {
	return fmt.Sprintf("bout: %s offered no play", e.Player)
}

// Observer receives every applied play, e.g. for display.
type Observer func(player game.Player, bowl game.Bowl)

type Option func(*Bout)

// WithObserver registers a hook for applied plays.
func WithObserver(observer Observer) Option {
	return func(b *Bout) {
		b.observer = observer
	}
}

// Bout pits the red strategy against the blue one. Red is whoever moves
// first in the game handed to Start.
type Bout struct {
	red      strategy.Strategy
	blue     strategy.Strategy
	observer Observer
}

func New(red, blue strategy.Strategy, options ...Option) *Bout {
	b := &Bout{red: red, blue: blue}
	for _, option := range options {
		option(b)
	}
	return b
}

// Start drives the game to completion, asking the mover's strategy for
// each ply. It returns nil when the game finished normally and a tagged
// error when a strategy offered no play or an illegal one.
func (b *Bout) Start(g *game.Game) error {
	played := false
	for !g.Finished() {
		mover := g.Turn()
		s := b.red
		if mover == game.Blue {
			s = b.blue
		}

		bowl, ok := s.Play(g.Current())
		if !ok {
			return &NoPlayError{Player: mover}
		}
		if err := g.Play(bowl); err != nil {
			return &IllegalPlayError{Player: mover, Bowl: bowl, Err: err}
		}
		played = true
		log.Info().Msgf("%s played bowl %d", mover, bowl)

		if b.observer != nil {
			b.observer(mover, bowl)
		}
	}
	if !played {
		return ErrRightOutOfTheGate
	}
	return nil
}
