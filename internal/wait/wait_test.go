package wait

import "testing"

func TestLessNumeralThenKind(t *testing.T) {
	a := Pattern{Numeral: 3, Kind: Pair}
	b := Pattern{Numeral: 3, Kind: Edge}
	if !Less(a, b) {
		t.Error("expected Pair to sort before Edge at the same numeral")
	}

	c := Pattern{Numeral: 2, Kind: Clamped}
	d := Pattern{Numeral: 5, Kind: Pair}
	if !Less(c, d) {
		t.Error("expected lower numeral to sort first regardless of kind")
	}
}

func TestKindStrings(t *testing.T) {
	kinds := []Kind{Pair, Closed, Edge, DoubleClosed, Clamped}
	seen := map[string]bool{}
	for _, k := range kinds {
		s := k.String()
		if s == "?" || seen[s] {
			t.Errorf("unexpected or duplicate String() for kind %d: %q", k, s)
		}
		seen[s] = true
	}
}
