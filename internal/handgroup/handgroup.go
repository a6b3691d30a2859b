// Package handgroup implements the hand-group model: the 55 possible
// three-tile groups (21 runs across the three numeric suits plus 34
// triplets, one per tile kind), with the packed 4-bit single-suit and 6-bit
// full encodings documented in the packed identifier contract.
package handgroup

import (
	"fmt"

	"gomahjong/internal/tile"
)

// Kind distinguishes a run (shuntsu) from a triplet (koutsu).
type Kind uint8

const (
	Koutsu Kind = iota
	Shuntsu
)

// SingleSuitCode is the 4-bit single-suit group encoding: codes 0..8 are
// Koutsu of numeral 1..9 (honors only ever use 0..6), codes 9..15 are
// Shuntsu starting at base numeral 1..7.
type SingleSuitCode uint8

// KoutsuCode returns the 4-bit single-suit code for a koutsu of the given 1-based
// numeral (1..9 for numeric suits, 1..7 for honors).
func KoutsuCode(numeral int) SingleSuitCode { return SingleSuitCode(numeral - 1) }

// ShuntsuCode returns the 4-bit single-suit code for a run starting at the
// given 1-based base numeral (1..7).
func ShuntsuCode(base int) SingleSuitCode { return SingleSuitCode(9 + base - 1) }

// Decode reports the Kind and base/triplet numeral encoded by c.
func (c SingleSuitCode) Decode() (k Kind, numeral int) {
	if c < 9 {
		return Koutsu, int(c) + 1
	}
	return Shuntsu, int(c) - 9 + 1
}

func (c SingleSuitCode) String() string {
	k, n := c.Decode()
	if k == Koutsu {
		return fmt.Sprintf("Koutsu(%d)", n)
	}
	return fmt.Sprintf("Shuntsu(%d,%d,%d)", n, n+1, n+2)
}

// Group is the full (cross-suit) hand-group sum type: a Suit plus the
// single-suit Code of either a Shuntsu (numeric suits only) or a Koutsu.
type Group struct {
	Suit  tile.Suit
	Code  SingleSuitCode
}

// NewShuntsu builds a run group for the given numeric suit and base
// numeral (1..7).
func NewShuntsu(suit tile.Suit, base int) Group {
	return Group{Suit: suit, Code: ShuntsuCode(base)}
}

// NewKoutsu builds a triplet group for the given suit and numeral.
func NewKoutsu(suit tile.Suit, numeral int) Group {
	return Group{Suit: suit, Code: KoutsuCode(numeral)}
}

// Kind reports whether g is a run or a triplet.
func (g Group) Kind() Kind {
	k, _ := g.Code.Decode()
	return k
}

// Tiles returns the three tile kinds making up g.
func (g Group) Tiles() [3]tile.Kind {
	k, n := g.Code.Decode()
	if k == Koutsu {
		t := tile.KindFromSuitNumeral(g.Suit, n)
		return [3]tile.Kind{t, t, t}
	}
	return [3]tile.Kind{
		tile.KindFromSuitNumeral(g.Suit, n),
		tile.KindFromSuitNumeral(g.Suit, n+1),
		tile.KindFromSuitNumeral(g.Suit, n+2),
	}
}

// FullCode packs g into the normative 6-bit full-group encoding: 2 bits
// suit, 4 bits single-suit code.
func (g Group) FullCode() uint8 {
	return uint8(g.Suit)<<4 | uint8(g.Code)
}

// FromFullCode decodes a 6-bit full group code back into a Group.
func FromFullCode(c uint8) Group {
	return Group{Suit: tile.Suit(c >> 4), Code: SingleSuitCode(c & 0xF)}
}

func (g Group) String() string {
	return fmt.Sprintf("%s/%s", g.Suit, g.Code)
}

// Less gives the canonical ordering used to normalize group lists: by
// suit, then by single-suit code.
func Less(a, b Group) bool {
	if a.Suit != b.Suit {
		return a.Suit < b.Suit
	}
	return a.Code < b.Code
}
