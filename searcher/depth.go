package searcher

import (
	"fmt"
	"iter"
)

// Depth is a remaining-ply budget for tree searches: either unbounded or a
// finite count. The zero Depth is Limit(0).
type Depth struct {
	infinite  bool
	remaining int
}

// Infinite places no limit on the search depth.
func Infinite() Depth {
	return Depth{infinite: true}
}

// Limit bounds the search to n further plies.
func Limit(n int) Depth {
	if n < 0 {
		panic("searcher: negative depth limit")
	}
	return Depth{remaining: n}
}

// IsZero reports whether further recursion is disallowed. An infinite
// depth never reaches zero.
func (d Depth) IsZero() bool {
	return !d.infinite && d.remaining == 0
}

// Decrement spends one ply, saturating at zero.
func (d Depth) Decrement() Depth {
	if d.infinite || d.remaining == 0 {
		return d
	}
	return Depth{remaining: d.remaining - 1}
}

// Increment grants one more ply.
func (d Depth) Increment() Depth {
	if d.infinite {
		return d
	}
	return Depth{remaining: d.remaining + 1}
}

// To iterates every depth from d up to limit, inclusive of both endpoints.
// An infinite limit never ends unless d itself is infinite.
func (d Depth) To(limit Depth) iter.Seq[Depth] {
	return func(yield func(Depth) bool) {
		current := d
		for current.atMost(limit) {
			if !yield(current) || current.infinite {
				return
			}
			current = current.Increment()
		}
	}
}

// atMost treats Infinite as larger than every finite limit.
func (d Depth) atMost(limit Depth) bool {
	if limit.infinite {
		return true
	}
	if d.infinite {
		return false
	}
	return d.remaining <= limit.remaining
}

func (d Depth) String() string {
	if d.infinite {
		return "inf"
	}
	return fmt.Sprintf("%d", d.remaining)
}
