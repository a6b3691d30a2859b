// Package decomposer composes the per-suit C-Table and W-Table answers
// into whole-hand regular waits, and independently detects the two
// irregular shapes (Seven Pairs, Thirteen Orphans).
package decomposer

import (
	"fmt"
	"sort"

	"gomahjong/internal/handgroup"
	"gomahjong/internal/tile"
	"gomahjong/internal/wait"
)

// Mask is a 34-bit set of waiting tile kinds.
type Mask uint64

// Has reports whether k is set in m.
func (m Mask) Has(k tile.Kind) bool { return m&(1<<uint(k)) != 0 }

// With returns a copy of m with k added.
func (m Mask) With(k tile.Kind) Mask { return m | (1 << uint(k)) }

// Kinds returns the set bits as a sorted slice of tile kinds.
func (m Mask) Kinds() []tile.Kind {
	var out []tile.Kind
	for k := tile.Kind(0); k < tile.NumKinds; k++ {
		if m.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// RegularWait is one whole-hand way the input hand is a single tile away
// from a standard four-groups-plus-pair shape.
type RegularWait struct {
	WaitingTile tile.Kind
	WaitKind    wait.Kind
	PairTile    tile.Kind // meaningful even for WaitKind == Pair, where PairTile == WaitingTile
	Groups      []handgroup.Group
}

func (w RegularWait) String() string {
	return fmt.Sprintf("%s(%s) pair=%s groups=%v", w.WaitingTile, w.WaitKind, w.PairTile, w.Groups)
}

// regularLess gives the canonical ordering for a sequence of waits:
// ascending by waiting tile, then by pair tile, then by lexicographic
// group ordering.
func regularLess(a, b RegularWait) bool {
	if a.WaitingTile != b.WaitingTile {
		return a.WaitingTile < b.WaitingTile
	}
	if a.PairTile != b.PairTile {
		return a.PairTile < b.PairTile
	}
	for i := 0; i < len(a.Groups) && i < len(b.Groups); i++ {
		if a.Groups[i] != b.Groups[i] {
			return handgroup.Less(a.Groups[i], b.Groups[i])
		}
	}
	return len(a.Groups) < len(b.Groups)
}

// IrregularKind distinguishes the two non-standard winning shapes.
type IrregularKind uint8

const (
	SevenPairs IrregularKind = iota
	ThirteenOrphans
)

func (k IrregularKind) String() string {
	if k == SevenPairs {
		return "SevenPairs"
	}
	return "ThirteenOrphans"
}

// IrregularWait reports a Seven Pairs or Thirteen Orphans wait. WaitingTiles
// holds one tile for Seven Pairs and the ordinary Thirteen Orphans case,
// and up to thirteen for the "13-way" Thirteen Orphans wait.
type IrregularWait struct {
	Kind         IrregularKind
	WaitingTiles []tile.Kind
}

// WaitSet is the full result of decomposing a 13-tile hand: every regular
// wait, the irregular wait if any, and the union of every waiting tile.
type WaitSet struct {
	Regular      []RegularWait
	Irregular    *IrregularWait
	WaitingTiles Mask
}

// IsEmpty reports that the hand has no waits at all (not tenpai).
func (ws WaitSet) IsEmpty() bool {
	return len(ws.Regular) == 0 && ws.Irregular == nil
}

func sortRegular(ws []RegularWait) {
	sort.Slice(ws, func(i, j int) bool { return regularLess(ws[i], ws[j]) })
}
