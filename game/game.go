package game

// Move records a single applied play.
type Move struct {
	Player Player
	Bowl   Bowl
}

// Game pairs the current position with an append-only history of plays.
type Game struct {
	current Position
	history []Move
}

// GameBuilder configures a fresh game. The defaults give the standard
// board: 6 bowls per side, 4 stones per bowl.
type GameBuilder struct {
	bowls  int
	stones int
}

func NewGameBuilder() *GameBuilder {
	return &GameBuilder{bowls: 6, stones: 4}
}

// Bowls sets the number of bowls per side.
func (b *GameBuilder) Bowls(bowls int) *GameBuilder {
	b.bowls = bowls
	return b
}

// Stones sets the initial number of stones per bowl.
func (b *GameBuilder) Stones(stones int) *GameBuilder {
	b.stones = stones
	return b
}

func (b *GameBuilder) Build() *Game {
	return &Game{current: NewPosition(b.bowls, b.stones)}
}

// Current returns the position to move from.
func (g *Game) Current() Position {
	return g.current
}

// History returns a copy of every play made so far, in order.
func (g *Game) History() []Move {
	history := make([]Move, len(g.history))
	copy(history, g.history)
	return history
}

// Turn identifies whose move it is.
func (g *Game) Turn() Player {
	return g.current.Turn()
}

// Options lists the playable bowls of the current position.
func (g *Game) Options() []Bowl {
	return g.current.Options()
}

// Play applies a bowl to the current position, recording it in the
// history. Fails with ErrNoStonesInBowl when the bowl is empty, leaving the
// game untouched.
func (g *Game) Play(bowl Bowl) error {
	mover := g.current.Turn()
	next, err := g.current.Play(bowl)
	if err != nil {
		return err
	}
	g.history = append(g.history, Move{Player: mover, Bowl: bowl})
	g.current = next
	return nil
}

func (g *Game) Finished() bool {
	return g.current.Finished()
}

// Score reports the finished-game score relative to the current mover.
func (g *Game) Score() (Score, bool) {
	return g.current.Score()
}
