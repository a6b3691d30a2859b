// Package tile implements the 37-tile Riichi Mahjong tile model: the 34
// base kinds, the three red-five variants, and conversions to and from the
// Tenhou-style shorthand notation used by the CLI and the Tenhou importer.
package tile

import (
	"fmt"
	"strings"
)

// Suit identifies one of the four tile suits. The three numeric suits
// support runs (shuntsu); the honor suit does not.
type Suit uint8

const (
	Man Suit = iota
	Pin
	Sou
	Honor
)

func (s Suit) String() string {
	switch s {
	case Man:
		return "m"
	case Pin:
		return "p"
	case Sou:
		return "s"
	case Honor:
		return "z"
	default:
		return "?"
	}
}

// Kind is the canonical 6-bit (0..33) encoding of a base tile, per the
// "denser 0..33" option allowed by the packed identifier contract: 0..8 =
// m1..m9, 9..17 = p1..p9, 18..26 = s1..s9, 27..33 = z1..z7. This mapping is
// stable and is the one serializers must mirror.
type Kind uint8

const NumKinds = 34

const (
	M1 Kind = iota
	M2
	M3
	M4
	M5
	M6
	M7
	M8
	M9
	P1
	P2
	P3
	P4
	P5
	P6
	P7
	P8
	P9
	S1
	S2
	S3
	S4
	S5
	S6
	S7
	S8
	S9
	East
	South
	West
	North
	White
	Green
	Red
)

// Suit reports which of the four suits k belongs to.
func (k Kind) Suit() Suit {
	switch {
	case k < 9:
		return Man
	case k < 18:
		return Pin
	case k < 27:
		return Sou
	default:
		return Honor
	}
}

// Numeral reports the 1-based position of k within its suit: 1..9 for
// numeric suits, 1..7 for honors (East=1 .. Red=7).
func (k Kind) Numeral() int {
	switch k.Suit() {
	case Man:
		return int(k) + 1
	case Pin:
		return int(k) - 9 + 1
	case Sou:
		return int(k) - 18 + 1
	default:
		return int(k) - 27 + 1
	}
}

// IsNumeric reports whether k belongs to one of the three numeric suits.
func (k Kind) IsNumeric() bool { return k.Suit() != Honor }

// IsTerminalOrHonor reports whether k is a 1 or 9 of a numeric suit, or any
// honor tile. Used by the Thirteen Orphans check.
func (k Kind) IsTerminalOrHonor() bool {
	if !k.IsNumeric() {
		return true
	}
	n := k.Numeral()
	return n == 1 || n == 9
}

// KindFromSuitNumeral builds a Kind from a suit and 1-based numeral. It
// panics on an out-of-range numeral, which is a programming error, not a
// user-input error (user input is validated earlier in ParseTiles).
func KindFromSuitNumeral(s Suit, numeral int) Kind {
	switch s {
	case Man:
		return Kind(numeral - 1)
	case Pin:
		return Kind(9 + numeral - 1)
	case Sou:
		return Kind(18 + numeral - 1)
	case Honor:
		return Kind(27 + numeral - 1)
	default:
		panic(fmt.Sprintf("tile: invalid suit %d", s))
	}
}

func (k Kind) String() string {
	if k.Suit() == Honor {
		names := [7]string{"East", "South", "West", "North", "White", "Green", "Red"}
		return names[k.Numeral()-1]
	}
	return fmt.Sprintf("%d%s", k.Numeral(), k.Suit())
}

// Tile is a single physical tile: a base Kind plus whether it is the
// cosmetic red-five variant. Red fives collapse to normal fives for every
// combinatorial purpose; Red is tracked only so that scoring layers and the
// Tenhou importer can tell them apart.
type Tile struct {
	Kind Kind
	Red  bool
}

// IsRedFive reports whether t is a red five (m5/p5/s5 variant).
func (t Tile) IsRedFive() bool {
	return t.Red && t.Kind.IsNumeric() && t.Kind.Numeral() == 5
}

func (t Tile) String() string {
	if t.IsRedFive() {
		return "0" + t.Kind.Suit().String()
	}
	return t.Kind.String()
}

// ErrInvalidTile is returned by parsing functions when a shorthand token
// refers to a tile outside the recognized 37.
type ErrInvalidTile struct {
	Token string
}

func (e *ErrInvalidTile) Error() string {
	return fmt.Sprintf("tile: invalid tile token %q", e.Token)
}

// ParseTiles parses Tenhou-style shorthand such as "123m456p789s11z" or
// "0m" for a red five into a slice of Tile. Each run of digits is followed
// by a single suit letter (m, p, s, z); digit 0 denotes the red five of the
// suit it appears in. This is a convenience used by the CLI and the Tenhou
// importer; the decomposer core never parses strings directly.
func ParseTiles(s string) ([]Tile, error) {
	var out []Tile
	var digits []byte

	flush := func(suitByte byte) error {
		if len(digits) == 0 {
			return nil
		}
		var suit Suit
		switch suitByte {
		case 'm':
			suit = Man
		case 'p':
			suit = Pin
		case 's':
			suit = Sou
		case 'z':
			suit = Honor
		default:
			return &ErrInvalidTile{Token: string(suitByte)}
		}
		for _, d := range digits {
			n := int(d - '0')
			if suit == Honor {
				if n < 1 || n > 7 {
					return &ErrInvalidTile{Token: fmt.Sprintf("%d%c", n, suitByte)}
				}
				out = append(out, Tile{Kind: KindFromSuitNumeral(suit, n)})
				continue
			}
			if n == 0 {
				out = append(out, Tile{Kind: KindFromSuitNumeral(suit, 5), Red: true})
				continue
			}
			if n < 1 || n > 9 {
				return &ErrInvalidTile{Token: fmt.Sprintf("%d%c", n, suitByte)}
			}
			out = append(out, Tile{Kind: KindFromSuitNumeral(suit, n)})
		}
		digits = digits[:0]
		return nil
	}

	for _, tok := range strings.Fields(s) {
		for i := 0; i < len(tok); i++ {
			c := tok[i]
			switch {
			case c >= '0' && c <= '9':
				digits = append(digits, c)
			case c == 'm' || c == 'p' || c == 's' || c == 'z':
				if err := flush(c); err != nil {
					return nil, err
				}
			default:
				return nil, &ErrInvalidTile{Token: tok}
			}
		}
		if len(digits) != 0 {
			return nil, &ErrInvalidTile{Token: tok}
		}
	}
	return out, nil
}
