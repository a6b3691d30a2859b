package decomposer

import (
	"fmt"

	"gomahjong/internal/handgroup"
	"gomahjong/internal/histogram"
	"gomahjong/internal/lut"
	"gomahjong/internal/tile"
	"gomahjong/internal/wait"
)

// ErrInvalidHand reports a histogram this package refuses to decompose:
// anything other than a 13-tile closed hand.
type ErrInvalidHand struct {
	Reason string
}

func (e *ErrInvalidHand) Error() string {
	return fmt.Sprintf("decomposer: %s", e.Reason)
}

var suitsInOrder = [4]tile.Suit{tile.Man, tile.Pin, tile.Sou, tile.Honor}

// Decomposer holds a handle to the process-wide lookup tables. It carries
// no mutable state and is safe to share across goroutines, but by
// convention callers that decompose heavily (an engine evaluating every
// discard) keep one Decomposer per goroutine so future scratch-buffer
// additions don't need to become concurrency-safe.
type Decomposer struct {
	tables *lut.Tables
}

// New builds a Decomposer backed by the given tables.
func New(tables *lut.Tables) *Decomposer {
	return &Decomposer{tables: tables}
}

// Default builds a Decomposer backed by the lazily-initialized package
// singleton tables.
func Default() *Decomposer {
	return New(lut.Get())
}

// Decompose enumerates every regular and irregular wait of a 13-tile
// closed hand. It is a pure function of its input: the same histogram
// always yields an identical WaitSet, with regular waits in ascending
// order by waiting tile, then pair tile, then group ordering.
func (d *Decomposer) Decompose(h histogram.FullHand) (WaitSet, error) {
	if err := h.Validate(13); err != nil {
		return WaitSet{}, &ErrInvalidHand{Reason: err.Error()}
	}

	regular := d.regularWaits(h)
	sortRegular(regular)

	var mask Mask
	for _, w := range regular {
		mask = mask.With(w.WaitingTile)
	}

	irregular := detectIrregular(h)
	if irregular != nil {
		for _, k := range irregular.WaitingTiles {
			mask = mask.With(k)
		}
	}

	return WaitSet{Regular: regular, Irregular: irregular, WaitingTiles: mask}, nil
}

// regularWaits implements Step A/B/C: classify the four per-suit subtotals
// mod 3, join alternatives across suits for whichever shape applies, and
// return every resulting whole-hand wait. A 13-tile hand has regular waits
// only when one suit is 3N+1 (shapeA) or two suits are 3N+2, one holding
// the pair and the other a partial run (shapeB, tried both ways round) or
// a second pair (shapeC).
func (d *Decomposer) regularWaits(h histogram.FullHand) []RegularWait {
	var totals, rem [4]int
	for s := 0; s < 4; s++ {
		totals[s] = h.Suits[s].Total()
		rem[s] = totals[s] % 3
	}

	var rem1Suits, rem2Suits []int
	for s := 0; s < 4; s++ {
		switch rem[s] {
		case 1:
			rem1Suits = append(rem1Suits, s)
		case 2:
			rem2Suits = append(rem2Suits, s)
		}
	}

	switch {
	case len(rem1Suits) == 1 && len(rem2Suits) == 0:
		return d.shapeA(h, rem1Suits[0])
	case len(rem1Suits) == 1 && len(rem2Suits) == 1:
		return d.shapeB(h, rem2Suits[0], rem1Suits[0])
	case len(rem1Suits) == 0 && len(rem2Suits) == 2:
		a, b := rem2Suits[0], rem2Suits[1]
		out := d.shapeC(h, a, b)
		out = append(out, d.shapeB(h, a, b)...)
		return append(out, d.shapeB(h, b, a)...)
	default:
		// No legal regular-wait shape: e.g. two suits both 3N+1. Not an
		// error, just zero regular waits.
		return nil
	}
}

// shapeA handles "wait-suit carries both the wait and (if any) the pair":
// waitSuit is looked up in the W-Table, every other suit must be pure
// complete groups (3N+0).
func (d *Decomposer) shapeA(h histogram.FullHand, waitSuit int) []RegularWait {
	walts := d.tables.Waiting(suitsInOrder[waitSuit], h.Suits[waitSuit])
	if len(walts) == 0 {
		return nil
	}

	others := otherSuits(waitSuit, -1)
	otherCombos, ok := d.pureGroupCombos(h, others)
	if !ok {
		return nil
	}

	var out []RegularWait
	for _, walt := range walts {
		for _, outcome := range walt.Outcomes {
			if outcome.Pattern.Kind != wait.Pair && walt.PairNumeral == 0 {
				// No suit anywhere supplies the hand's pair: not a
				// legal complete hand once the wait resolves.
				continue
			}
			waitingTile := tile.KindFromSuitNumeral(suitsInOrder[waitSuit], outcome.Pattern.Numeral)

			var pairTile tile.Kind
			if outcome.Pattern.Kind == wait.Pair {
				pairTile = waitingTile
			} else {
				pairTile = tile.KindFromSuitNumeral(suitsInOrder[waitSuit], walt.PairNumeral)
			}

			base := groupsForSuit(suitsInOrder[waitSuit], walt.Groups)
			if outcome.Pattern.Kind != wait.Pair {
				base = append(base, handgroup.Group{Suit: suitsInOrder[waitSuit], Code: outcome.CompletedGroup})
			}

			for _, combo := range otherCombos {
				groups := append(append([]handgroup.Group(nil), base...), combo...)
				sortGroups(groups)
				out = append(out, RegularWait{
					WaitingTile: waitingTile,
					WaitKind:    outcome.Pattern.Kind,
					PairTile:    pairTile,
					Groups:      groups,
				})
			}
		}
	}
	return out
}

// shapeB handles "pair-suit and wait-suit are distinct": pairSuit is
// looked up in the C-Table (pair required), waitSuit in the W-Table with
// Pair-kind outcomes and pair-carrying alternatives excluded (the hand's
// one pair already came from pairSuit), and the remaining two suits must
// be pure complete groups.
func (d *Decomposer) shapeB(h histogram.FullHand, pairSuit, waitSuit int) []RegularWait {
	calts := d.tables.Complete(suitsInOrder[pairSuit], h.Suits[pairSuit], true)
	if len(calts) == 0 {
		return nil
	}
	walts := d.tables.Waiting(suitsInOrder[waitSuit], h.Suits[waitSuit])
	if len(walts) == 0 {
		return nil
	}

	others := otherSuits(waitSuit, pairSuit)
	otherCombos, ok := d.pureGroupCombos(h, others)
	if !ok {
		return nil
	}

	var out []RegularWait
	for _, calt := range calts {
		pairTile := tile.KindFromSuitNumeral(suitsInOrder[pairSuit], calt.PairNumeral)
		pairGroups := groupsForSuit(suitsInOrder[pairSuit], calt.Groups)

		for _, walt := range walts {
			if walt.PairNumeral != 0 {
				// This suit would carry a second pair of its own.
				continue
			}
			waitGroups := groupsForSuit(suitsInOrder[waitSuit], walt.Groups)

			for _, outcome := range walt.Outcomes {
				if outcome.Pattern.Kind == wait.Pair {
					// The hand's pair already comes from pairSuit.
					continue
				}
				waitingTile := tile.KindFromSuitNumeral(suitsInOrder[waitSuit], outcome.Pattern.Numeral)
				completed := handgroup.Group{Suit: suitsInOrder[waitSuit], Code: outcome.CompletedGroup}

				for _, combo := range otherCombos {
					groups := make([]handgroup.Group, 0, len(pairGroups)+len(waitGroups)+1+len(combo))
					groups = append(groups, pairGroups...)
					groups = append(groups, waitGroups...)
					groups = append(groups, completed)
					groups = append(groups, combo...)
					sortGroups(groups)
					out = append(out, RegularWait{
						WaitingTile: waitingTile,
						WaitKind:    outcome.Pattern.Kind,
						PairTile:    pairTile,
						Groups:      groups,
					})
				}
			}
		}
	}
	return out
}

// shapeC handles cross-suit shanpon: two suits each sit at 3N+2 with no
// suit at 3N+1. Each such suit's C-Table alternative already isolates its
// pair from its complete groups; the whole-hand join picks one suit's
// pair to stay as the hand's pair and treats the other suit's pair as the
// shanpon candidate completing into a triplet on the winning tile.
func (d *Decomposer) shapeC(h histogram.FullHand, suitA, suitB int) []RegularWait {
	altsA := d.tables.Complete(suitsInOrder[suitA], h.Suits[suitA], true)
	altsB := d.tables.Complete(suitsInOrder[suitB], h.Suits[suitB], true)
	if len(altsA) == 0 || len(altsB) == 0 {
		return nil
	}

	others := otherSuits(suitA, suitB)
	otherCombos, ok := d.pureGroupCombos(h, others)
	if !ok {
		return nil
	}

	var out []RegularWait
	join := func(pairSuit, waitSuit int, pairAlt, waitAlt lut.CAlternative, combo []handgroup.Group) RegularWait {
		pairTile := tile.KindFromSuitNumeral(suitsInOrder[pairSuit], pairAlt.PairNumeral)
		waitingTile := tile.KindFromSuitNumeral(suitsInOrder[waitSuit], waitAlt.PairNumeral)
		completed := handgroup.Group{Suit: suitsInOrder[waitSuit], Code: handgroup.KoutsuCode(waitAlt.PairNumeral)}

		groups := make([]handgroup.Group, 0, len(pairAlt.Groups)+len(waitAlt.Groups)+1+len(combo))
		groups = append(groups, groupsForSuit(suitsInOrder[pairSuit], pairAlt.Groups)...)
		groups = append(groups, groupsForSuit(suitsInOrder[waitSuit], waitAlt.Groups)...)
		groups = append(groups, completed)
		groups = append(groups, combo...)
		sortGroups(groups)

		return RegularWait{WaitingTile: waitingTile, WaitKind: wait.Closed, PairTile: pairTile, Groups: groups}
	}

	for _, a := range altsA {
		for _, b := range altsB {
			for _, combo := range otherCombos {
				out = append(out, join(suitA, suitB, a, b, combo))
				out = append(out, join(suitB, suitA, b, a, combo))
			}
		}
	}
	return out
}

// pureGroupCombos looks up the pair-free pure-groups table for each suit
// index in suits and returns the Cartesian product of their alternatives,
// each already tagged with its suit. ok is false if any suit has no
// pure-groups alternative (making the whole shape unreachable).
func (d *Decomposer) pureGroupCombos(h histogram.FullHand, suits []int) ([][]handgroup.Group, bool) {
	combos := [][]handgroup.Group{{}}
	for _, s := range suits {
		alts := d.tables.Complete(suitsInOrder[s], h.Suits[s], false)
		if len(alts) == 0 {
			return nil, false
		}
		var next [][]handgroup.Group
		for _, prefix := range combos {
			for _, alt := range alts {
				merged := append(append([]handgroup.Group(nil), prefix...), groupsForSuit(suitsInOrder[s], alt.Groups)...)
				next = append(next, merged)
			}
		}
		combos = next
	}
	return combos, true
}

func otherSuits(exclude ...int) []int {
	skip := make(map[int]bool, len(exclude))
	for _, s := range exclude {
		if s >= 0 {
			skip[s] = true
		}
	}
	var out []int
	for s := 0; s < 4; s++ {
		if !skip[s] {
			out = append(out, s)
		}
	}
	return out
}

func groupsForSuit(suit tile.Suit, codes []handgroup.SingleSuitCode) []handgroup.Group {
	out := make([]handgroup.Group, len(codes))
	for i, c := range codes {
		out[i] = handgroup.Group{Suit: suit, Code: c}
	}
	return out
}

func sortGroups(groups []handgroup.Group) {
	for i := 1; i < len(groups); i++ {
		for j := i; j > 0 && handgroup.Less(groups[j], groups[j-1]); j-- {
			groups[j], groups[j-1] = groups[j-1], groups[j]
		}
	}
}
