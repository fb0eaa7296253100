package game

import (
	"errors"
	"fmt"
	"strings"
)

// Bowl identifies a playable pit on the current player's side, zero-based.
type Bowl int

// Score is a stone-count difference between the two players.
type Score int

type Player int8

const (
	Red Player = iota
	Blue
)

func (p Player) Opponent() Player {
	if p == Red {
		return Blue
	}
	return Red
}

func (p Player) String() string {
	if p == Red {
		return "Red"
	}
	return "Blue"
}

// ErrNoStonesInBowl is returned when a play targets an empty bowl. It is the
// only illegal-move condition the engine itself detects.
var ErrNoStonesInBowl = errors.New("no stones in bowl")

// Position is an immutable snapshot of the board. Bowls are stored in a
// rotating representation: indices [0,size) always belong to whoever moves
// next, indices [size,2*size) to the opponent. The capture pair follows the
// same convention, so capture[0] is always the current mover's store.
// Every Play returns a fresh Position; no board state is ever mutated.
type Position struct {
	size    int
	bowls   []int
	capture [2]int
	player  Player
}

// NewPosition creates a fresh board with the given number of bowls per side,
// each holding the given number of stones. Red moves first.
func NewPosition(bowls, stones int) Position {
	if bowls < 1 {
		panic("game: a board needs at least one bowl per side")
	}
	if stones < 0 {
		panic("game: negative stone count")
	}
	all := make([]int, 2*bowls)
	for i := range all {
		all[i] = stones
	}
	return Position{size: bowls, bowls: all, player: Red}
}

// PositionFromBowls creates a position from an explicit bowl layout. The
// slice length must be even; the first half is the current mover's side.
// Both stores start empty and Red is to move. Mainly useful for tests and
// fixtures.
func PositionFromBowls(bowls []int) Position {
	if len(bowls) == 0 || len(bowls)%2 != 0 {
		panic("game: bowl layout must have even, non-zero length")
	}
	all := make([]int, len(bowls))
	copy(all, bowls)
	return Position{size: len(bowls) / 2, bowls: all, player: Red}
}

// Size returns the number of bowls per side.
func (p Position) Size() int {
	return p.size
}

// Turn identifies the real-world player behind the rotated board.
func (p Position) Turn() Player {
	return p.player
}

// Bowls returns a copy of the bowl layout, current side first.
func (p Position) Bowls() []int {
	bowls := make([]int, len(p.bowls))
	copy(bowls, p.bowls)
	return bowls
}

// Captures returns the store totals, current mover first.
func (p Position) Captures() (own, opponent int) {
	return p.capture[0], p.capture[1]
}

// Options lists every playable bowl for the current mover, in ascending
// order. A bowl is playable when it holds at least one stone.
func (p Position) Options() []Bowl {
	var options []Bowl
	for i := 0; i < p.size; i++ {
		if p.bowls[i] > 0 {
			options = append(options, Bowl(i))
		}
	}
	return options
}

// Play sows the chosen bowl and returns the resulting position. It fails
// with ErrNoStonesInBowl when the bowl is empty.
func (p Position) Play(bowl Bowl) (Position, error) {
	if bowl < 0 || int(bowl) >= p.size {
		panic(fmt.Sprintf("game: bowl %d out of range [0,%d)", bowl, p.size))
	}
	if p.bowls[bowl] == 0 {
		return Position{}, fmt.Errorf("bowl %d: %w", bowl, ErrNoStonesInBowl)
	}
	return p.sow(bowl), nil
}

// sow distributes the chosen bowl's stones over a tour of 2*size+1 slots:
// every bowl on both sides plus the mover's own store. The opponent's store
// is skipped entirely.
func (p Position) sow(bowl Bowl) Position {
	size := p.size
	tour := 2*size + 1

	bowls := make([]int, len(p.bowls))
	copy(bowls, p.bowls)
	stones := bowls[bowl]
	bowls[bowl] = 0

	// Full laps put one stone in every slot, store included.
	laps := stones / tour
	if laps > 0 {
		for i := range bowls {
			bowls[i] += laps
		}
	}
	gain := laps

	// The remainder trickles into consecutive slots after the sown bowl.
	// Slot numbering is store-inclusive: slot size is the mover's store,
	// slots above it shift the array index by one.
	slot := int(bowl)
	for left := stones % tour; left > 0; left-- {
		slot++
		if slot == tour {
			slot = 0
		}
		switch {
		case slot == size:
			gain++
		case slot < size:
			bowls[slot]++
		default:
			bowls[slot-1]++
		}
	}
	landing := slot

	// Landing the last stone in a previously empty own-side bowl captures
	// the directly opposite bowl.
	if landing < size && bowls[landing] == 1 {
		opposite := 2*size - 1 - landing
		gain += bowls[opposite]
		bowls[opposite] = 0
	}

	capture := p.capture
	capture[0] += gain

	if landing == size {
		// Last stone fell in the mover's own store: the turn is retained
		// and the board keeps its orientation.
		return Position{size: size, bowls: bowls, capture: capture, player: p.player}
	}

	// Turn passes: rotate so the new mover's bowls occupy [0,size) and the
	// capture pair follows.
	rotated := make([]int, len(bowls))
	copy(rotated, bowls[size:])
	copy(rotated[size:], bowls[:size])
	return Position{
		size:    size,
		bowls:   rotated,
		capture: [2]int{capture[1], capture[0]},
		player:  p.player.Opponent(),
	}
}

// Finished reports whether the current mover has run out of stones. Only
// the active side is checked; the opponent may still hold stones.
func (p Position) Finished() bool {
	for i := 0; i < p.size; i++ {
		if p.bowls[i] > 0 {
			return false
		}
	}
	return true
}

// Score returns the finished-game score relative to the current mover:
// mover's stones and store minus the opponent's. The second return is false
// while the game is still in progress. Callers needing an absolute
// red/blue score must consult Turn and negate accordingly.
func (p Position) Score() (Score, bool) {
	if !p.Finished() {
		return 0, false
	}
	own := p.capture[0]
	opponent := p.capture[1]
	for i := 0; i < p.size; i++ {
		own += p.bowls[i]
	}
	for i := p.size; i < 2*p.size; i++ {
		opponent += p.bowls[i]
	}
	return Score(own - opponent), true
}

// Delta is the captured-stone difference, a cheap stand-in for the true
// score before the game ends.
func (p Position) Delta() Score {
	return Score(p.capture[0] - p.capture[1])
}

// String renders the board in two rows: the far side reversed on top, the
// current side below, with store totals at both ends.
func (p Position) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%2d]", p.capture[1])
	for i := 2*p.size - 1; i >= p.size; i-- {
		fmt.Fprintf(&b, " %2d", p.bowls[i])
	}
	b.WriteByte('\n')
	b.WriteString("    ")
	for i := 0; i < p.size; i++ {
		fmt.Fprintf(&b, " %2d", p.bowls[i])
	}
	fmt.Fprintf(&b, " [%2d]", p.capture[0])
	return b.String()
}
