package lut

import (
	"gomahjong/internal/histogram"
	"gomahjong/internal/tile"
)

// Complete looks up the pair-bearing C-Table (pairRequired true) or the
// pair-free pure-groups table (pairRequired false) for the given suit and
// packed key. The generator is exhaustive over every legal total, so a
// miss simply means zero alternatives exist for that histogram; callers
// treat a nil result as "no alternatives under this suit assignment"
// rather than as an error.
func (t *Tables) Complete(suit tile.Suit, key histogram.Packed, pairRequired bool) []CAlternative {
	if suit == tile.Honor {
		if pairRequired {
			return t.CHonor[key]
		}
		return t.GHonor[key]
	}
	if pairRequired {
		return t.CNumeric[key]
	}
	return t.GNumeric[key]
}

// Waiting looks up the W-Table for the given suit and packed key.
func (t *Tables) Waiting(suit tile.Suit, key histogram.Packed) []WAlternative {
	if suit == tile.Honor {
		return t.WHonor[key]
	}
	return t.WNumeric[key]
}
