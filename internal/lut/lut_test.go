package lut

import (
	"testing"

	"gomahjong/internal/histogram"
	"gomahjong/internal/tile"
	"gomahjong/internal/wait"
)

func key(t *testing.T, counts []int) histogram.Packed {
	t.Helper()
	p, err := histogram.FromCounts(counts)
	if err != nil {
		t.Fatalf("FromCounts: %v", err)
	}
	return p
}

func TestGetIsLazyAndStable(t *testing.T) {
	a := Get()
	b := Get()
	if a != b {
		t.Fatal("Get() should return the same singleton instance on every call")
	}
}

func TestNewTablesMatchesSingleton(t *testing.T) {
	fresh := NewTables()
	singleton := Get()
	k := key(t, []int{3, 0, 0, 0, 0, 0, 0, 0, 0})
	a := fresh.Complete(tile.Man, k, false)
	b := singleton.Complete(tile.Man, k, false)
	if len(a) != len(b) || len(a) == 0 {
		t.Fatalf("got %v and %v, expected matching non-empty results", a, b)
	}
}

func TestPureTripletHasOneAlternative(t *testing.T) {
	tables := Get()
	k := key(t, []int{3, 0, 0, 0, 0, 0, 0, 0, 0})
	alts := tables.Complete(tile.Man, k, false)
	if len(alts) != 1 {
		t.Fatalf("got %d alternatives, want 1", len(alts))
	}
	if len(alts[0].Groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(alts[0].Groups))
	}
}

func TestAmbiguousTripletOrRunShape(t *testing.T) {
	// 111222333 decomposes either as three koutsu (111/222/333) or as three
	// parallel shuntsu (123/123/123): two structurally distinct alternatives
	// for the same multiset, bounded at four per the generator's cap.
	tables := Get()
	k := key(t, []int{3, 3, 3, 0, 0, 0, 0, 0, 0})
	alts := tables.Complete(tile.Pin, k, false)
	if len(alts) != 2 {
		t.Fatalf("got %d alternatives, want 2: %+v", len(alts), alts)
	}
	for _, alt := range alts {
		if alt.PairNumeral != 0 {
			t.Errorf("pure-groups alternative carries a pair: %+v", alt)
		}
	}
}

func TestWaitingTankiSingleTile(t *testing.T) {
	tables := Get()
	k := key(t, []int{1, 0, 0, 0, 0, 0, 0, 0, 0})
	alts := tables.Waiting(tile.Man, k)
	if len(alts) != 1 {
		t.Fatalf("got %d alternatives, want 1", len(alts))
	}
	if len(alts[0].Outcomes) != 1 || alts[0].Outcomes[0].Pattern.Kind != wait.Pair || alts[0].Outcomes[0].Pattern.Numeral != 1 {
		t.Fatalf("got %+v, want a tanki wait on numeral 1", alts[0])
	}
}

func TestWaitingEdgeAtExtremity(t *testing.T) {
	tables := Get()
	k := key(t, []int{1, 1, 0, 0, 0, 0, 0, 0, 0})
	alts := tables.Waiting(tile.Sou, k)
	found := false
	for _, alt := range alts {
		for _, o := range alt.Outcomes {
			if o.Pattern.Kind == wait.Edge && o.Pattern.Numeral == 3 {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("expected an edge wait on 3 among %+v", alts)
	}
}

func TestWaitingDoubleClosedYieldsTwoOutcomes(t *testing.T) {
	tables := Get()
	// A 3-4 shape in the middle of the suit waits on both 2 and 5.
	k := key(t, []int{0, 0, 1, 1, 0, 0, 0, 0, 0})
	alts := tables.Waiting(tile.Pin, k)
	found := false
	for _, alt := range alts {
		for _, o := range alt.Outcomes {
			if o.Pattern.Kind != wait.DoubleClosed {
				continue
			}
			if len(alt.Outcomes) != 2 {
				t.Fatalf("double-closed alternative has %d outcomes, want 2: %+v", len(alt.Outcomes), alt)
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a double-closed wait among %+v", alts)
	}
}

func TestWaitingClampedKanchan(t *testing.T) {
	tables := Get()
	k := key(t, []int{1, 0, 1, 0, 0, 0, 0, 0, 0})
	alts := tables.Waiting(tile.Man, k)
	found := false
	for _, alt := range alts {
		for _, o := range alt.Outcomes {
			if o.Pattern.Kind == wait.Clamped && o.Pattern.Numeral == 2 {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("expected a clamped wait on 2 among %+v", alts)
	}
}

func TestHonorTablesHaveNoRunPeels(t *testing.T) {
	tables := Get()
	// Two distinct honor singles never combine into a waiting structure at
	// all: no pair, no triplet candidate, and honors admit no runs.
	k := key(t, []int{1, 1, 0, 0, 0, 0, 0})
	alts := tables.Waiting(tile.Honor, k)
	if len(alts) != 0 {
		t.Fatalf("got %+v, want no waiting alternatives for two distinct honor singles", alts)
	}
}

func TestHonorCompleteTriplet(t *testing.T) {
	tables := Get()
	k := key(t, []int{3, 0, 0, 0, 0, 0, 0})
	alts := tables.Complete(tile.Honor, k, false)
	if len(alts) != 1 || len(alts[0].Groups) != 1 {
		t.Fatalf("got %+v, want a single one-triplet alternative", alts)
	}
}
