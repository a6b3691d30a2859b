package decomposer

import (
	"gomahjong/internal/histogram"
	"gomahjong/internal/tile"
)

// terminalOrHonorKinds lists the 13 kinds a Thirteen Orphans hand draws
// from, in ascending kind order.
var terminalOrHonorKinds = func() [13]tile.Kind {
	var out [13]tile.Kind
	i := 0
	for k := tile.Kind(0); k < tile.NumKinds; k++ {
		if k.IsTerminalOrHonor() {
			out[i] = k
			i++
		}
	}
	return out
}()

// kindCounts unpacks a FullHand into per-kind tile counts across all 34
// kinds. Red-five overlay bits don't affect count-based grouping.
func kindCounts(h histogram.FullHand) [34]int {
	var out [34]int
	for s, suit := range suitsInOrder {
		counts := h.Suits[s].Counts()
		lanes := 9
		if suit == tile.Honor {
			lanes = 7
		}
		for n := 1; n <= lanes; n++ {
			if c := counts[n-1]; c > 0 {
				out[tile.KindFromSuitNumeral(suit, n)] = c
			}
		}
	}
	return out
}

// detectIrregular implements Step D: Seven Pairs and Thirteen Orphans
// detection, independent of the regular-wait join.
func detectIrregular(h histogram.FullHand) *IrregularWait {
	counts := kindCounts(h)
	if w := detectSevenPairs(counts); w != nil {
		return w
	}
	return detectThirteenOrphans(counts)
}

func detectSevenPairs(counts [34]int) *IrregularWait {
	pairs, singles := 0, -1
	for k := tile.Kind(0); k < tile.NumKinds; k++ {
		switch counts[k] {
		case 0:
		case 1:
			if singles >= 0 {
				return nil
			}
			singles = int(k)
		case 2:
			pairs++
		default:
			return nil
		}
	}
	if pairs == 6 && singles >= 0 {
		return &IrregularWait{Kind: SevenPairs, WaitingTiles: []tile.Kind{tile.Kind(singles)}}
	}
	return nil
}

func detectThirteenOrphans(counts [34]int) *IrregularWait {
	for k := tile.Kind(0); k < tile.NumKinds; k++ {
		if !k.IsTerminalOrHonor() && counts[k] != 0 {
			return nil
		}
	}

	var missing, doubled []tile.Kind
	total := 0
	for _, k := range terminalOrHonorKinds {
		c := counts[k]
		total += c
		switch {
		case c == 0:
			missing = append(missing, k)
		case c == 2:
			doubled = append(doubled, k)
		case c > 2:
			return nil
		}
	}
	if total != 13 {
		return nil
	}

	switch {
	case len(missing) == 0 && len(doubled) == 0:
		// All 13 types present, none doubled yet: any one of them
		// completes the hand's pair, the thirteen-way wait.
		return &IrregularWait{Kind: ThirteenOrphans, WaitingTiles: append([]tile.Kind(nil), terminalOrHonorKinds[:]...)}
	case len(missing) == 1 && len(doubled) == 1:
		return &IrregularWait{Kind: ThirteenOrphans, WaitingTiles: []tile.Kind{missing[0]}}
	default:
		return nil
	}
}
