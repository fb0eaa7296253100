package searcher

import (
	"fmt"

	"mancala/game"
)

type valueKind int8

const (
	negativeInfinity valueKind = iota - 1
	actual
	positiveInfinity
)

// Value is a totally ordered position score. Beyond finite scores it has
// two sentinel extremes, so search windows can start outside the reachable
// score range. The zero Value is Actual(0).
type Value struct {
	kind  valueKind
	score game.Score
}

// NegativeInfinity is below every other value.
func NegativeInfinity() Value {
	return Value{kind: negativeInfinity}
}

// PositiveInfinity is above every other value.
func PositiveInfinity() Value {
	return Value{kind: positiveInfinity}
}

// Actual wraps a finite score, or an estimate of one.
func Actual(score game.Score) Value {
	return Value{kind: actual, score: score}
}

// Opposite re-expresses the value from the other player's point of view:
// finite scores negate, the infinities swap. It is its own inverse.
func (v Value) Opposite() Value {
	switch v.kind {
	case negativeInfinity:
		return PositiveInfinity()
	case positiveInfinity:
		return NegativeInfinity()
	default:
		return Actual(-v.score)
	}
}

// Compare orders values: negative infinity < any finite score < positive
// infinity, finite scores by integer comparison.
func (v Value) Compare(other Value) int {
	switch {
	case v.kind != other.kind:
		return int(v.kind - other.kind)
	case v.kind != actual:
		return 0
	case v.score < other.score:
		return -1
	case v.score > other.score:
		return 1
	default:
		return 0
	}
}

func (v Value) Less(other Value) bool {
	return v.Compare(other) < 0
}

// Score returns the finite score and true, or false for an infinity.
func (v Value) Score() (game.Score, bool) {
	if v.kind != actual {
		return 0, false
	}
	return v.score, true
}

func (v Value) String() string {
	switch v.kind {
	case negativeInfinity:
		return "-inf"
	case positiveInfinity:
		return "+inf"
	default:
		return fmt.Sprintf("%d", v.score)
	}
}
