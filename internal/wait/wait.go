// Package wait implements the waiting-pattern model: the five kinds of
// regular waits a single suit's residual shape can present, each tagged
// with the waiting numeral.
package wait

import "fmt"

// Kind enumerates the five ways a single suit's residual tiles can be one
// tile away from completing a group (or, for Pair, the pair itself).
type Kind uint8

const (
	// Pair: the residual is a single tile; the rest of the suit already
	// forms complete groups. Waiting on a second copy of that tile.
	Pair Kind = iota
	// Closed: the hand's pair is already placed and the residual is a
	// second pair, waiting on its third copy to complete a triplet
	// (one half of a shanpon wait).
	Closed
	// Edge: two adjacent tiles at a suit extremity — 1-2 waits on 3,
	// 8-9 waits on 7.
	Edge
	// DoubleClosed: two adjacent interior tiles b,b+1 (1<b<8) waiting on
	// both b-1 and b+2.
	DoubleClosed
	// Clamped: two tiles with a one-tile gap, b and b+2, waiting on b+1
	// (kanchan).
	Clamped
)

func (k Kind) String() string {
	switch k {
	case Pair:
		return "Pair"
	case Closed:
		return "Closed"
	case Edge:
		return "Edge"
	case DoubleClosed:
		return "DoubleClosed"
	case Clamped:
		return "Clamped"
	default:
		return "?"
	}
}

// Pattern is a single (waiting numeral, wait kind) tuple local to one suit.
type Pattern struct {
	Numeral int
	Kind    Kind
}

func (p Pattern) String() string {
	return fmt.Sprintf("%d:%s", p.Numeral, p.Kind)
}

// Less gives the canonical ordering for a sequence of Patterns: ascending
// by waiting numeral, then by kind.
func Less(a, b Pattern) bool {
	if a.Numeral != b.Numeral {
		return a.Numeral < b.Numeral
	}
	return a.Kind < b.Kind
}
