// Package yaku identifies which named hands a completed, decomposed hand
// satisfies. It does not score: fu and han totals are out of scope, only
// set membership.
package yaku

import (
	"gomahjong/decomposer"
	"gomahjong/internal/handgroup"
	"gomahjong/internal/tile"
	"gomahjong/internal/wait"
)

// Name enumerates the yaku this package can recognize. Open-hand
// qualification (e.g. pinfu and most tanyao variants require a closed
// hand in strict rulesets) is not modeled; Context carries only what the
// identification rules in this package actually consult.
type Name int

const (
	Riichi Name = iota
	MenzenTsumo
	Pinfu
	Tanyao
	Yakuhai
	Honitsu
	Chinitsu
	Toitoi
	Chiitoitsu
	Kokushi
)

func (n Name) String() string {
	switch n {
	case Riichi:
		return "riichi"
	case MenzenTsumo:
		return "menzen_tsumo"
	case Pinfu:
		return "pinfu"
	case Tanyao:
		return "tanyao"
	case Yakuhai:
		return "yakuhai"
	case Honitsu:
		return "honitsu"
	case Chinitsu:
		return "chinitsu"
	case Toitoi:
		return "toitoi"
	case Chiitoitsu:
		return "chiitoitsu"
	case Kokushi:
		return "kokushi"
	default:
		return "unknown"
	}
}

// Context carries the information outside the finished hand shape that
// certain yaku need: whether the winning tile was self-drawn, whether the
// player had declared riichi before winning, and which tile kinds count
// as the player's yakuhai (seat wind, round wind, dragons).
type Context struct {
	Tsumo        bool
	Riichi       bool
	YakuhaiKinds []tile.Kind
}

// Set is the collection of yaku a single win satisfies.
type Set []Name

// Has reports whether n is present in the set.
func (s Set) Has(n Name) bool {
	for _, v := range s {
		if v == n {
			return true
		}
	}
	return false
}

// Identify returns every yaku the given completed RegularWait (already
// resolved to its winning tile) satisfies. win is the WaitSet entry the
// player actually completed on; callers pick it from decomposer.WaitSet
// after matching the drawn or claimed tile against Regular[i].WaitingTile.
func Identify(win decomposer.RegularWait, ctx Context) Set {
	var set Set
	if ctx.Riichi {
		set = append(set, Riichi)
	}
	if ctx.Tsumo {
		set = append(set, MenzenTsumo)
	}
	if isTanyao(win) {
		set = append(set, Tanyao)
	}
	if isToitoi(win) {
		set = append(set, Toitoi)
	}
	if isPinfu(win, ctx) {
		set = append(set, Pinfu)
	}
	if hasYakuhai(win, ctx.YakuhaiKinds) {
		set = append(set, Yakuhai)
	}
	switch suitPurity(win) {
	case honitsu:
		set = append(set, Honitsu)
	case chinitsu:
		set = append(set, Chinitsu)
	}
	return set
}

// IdentifyIrregular returns the yaku satisfied by an irregular win
// (seven pairs or thirteen orphans); these never combine with Identify's
// regular-shape analysis.
func IdentifyIrregular(kind decomposer.IrregularKind, ctx Context) Set {
	set := Set{}
	if ctx.Riichi {
		set = append(set, Riichi)
	}
	if ctx.Tsumo {
		set = append(set, MenzenTsumo)
	}
	switch kind {
	case decomposer.SevenPairs:
		set = append(set, Chiitoitsu)
	case decomposer.ThirteenOrphans:
		set = append(set, Kokushi)
	}
	return set
}

func isTanyao(win decomposer.RegularWait) bool {
	if win.PairTile.IsTerminalOrHonor() {
		return false
	}
	for _, g := range win.Groups {
		for _, k := range g.Tiles() {
			if k.IsTerminalOrHonor() {
				return false
			}
		}
	}
	return true
}

func isToitoi(win decomposer.RegularWait) bool {
	for _, g := range win.Groups {
		if g.Kind() != handgroup.Koutsu {
			return false
		}
	}
	return true
}

// isPinfu requires all-shuntsu groups, a non-yakuhai pair, and an open
// (two-sided) wait; it does not verify fu independently since this
// package never computes fu.
func isPinfu(win decomposer.RegularWait, ctx Context) bool {
	if win.WaitKind != wait.DoubleClosed {
		return false
	}
	for _, g := range win.Groups {
		if g.Kind() != handgroup.Shuntsu {
			return false
		}
	}
	for _, k := range ctx.YakuhaiKinds {
		if k == win.PairTile {
			return false
		}
	}
	return true
}

func hasYakuhai(win decomposer.RegularWait, yakuhaiKinds []tile.Kind) bool {
	for _, g := range win.Groups {
		if g.Kind() != handgroup.Koutsu {
			continue
		}
		t := g.Tiles()[0]
		for _, y := range yakuhaiKinds {
			if t == y {
				return true
			}
		}
	}
	return false
}

type purity int

const (
	mixed purity = iota
	honitsu
	chinitsu
)

func suitPurity(win decomposer.RegularWait) purity {
	suits := map[tile.Suit]struct{}{win.PairTile.Suit(): {}}
	for _, g := range win.Groups {
		suits[g.Suit] = struct{}{}
	}
	hasHonor := false
	numeric := map[tile.Suit]struct{}{}
	for s := range suits {
		if s == tile.Honor {
			hasHonor = true
		} else {
			numeric[s] = struct{}{}
		}
	}
	if len(numeric) != 1 {
		return mixed
	}
	if hasHonor {
		return honitsu
	}
	return chinitsu
}
