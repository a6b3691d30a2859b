package engine

import (
	"testing"

	"gomahjong/decomposer"
	"gomahjong/internal/tile"
)

// seekTestHand pairs 123456m 789p with a doubled 5s: discarding one of the
// two 5s leaves the 13-tile tanki hand 123456m789p1235s, which decomposer's
// own tests confirm waits solely on S5.
func seekTestHand(t *testing.T) []tile.Tile {
	t.Helper()
	hand, err := tile.ParseTiles("123456m789p12355s")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(hand) != 14 {
		t.Fatalf("got %d tiles, want 14", len(hand))
	}
	return hand
}

func TestSeekCandidatesFindsWaitingDiscards(t *testing.T) {
	s := NewSearcher(decomposer.Default(), nil)
	candidates, err := s.SeekCandidates(seekTestHand(t), nil)
	if err != nil {
		t.Fatalf("SeekCandidates: %v", err)
	}

	var s5 *Candidate
	for i := range candidates {
		if candidates[i].Discard.Kind == tile.S5 {
			s5 = &candidates[i]
		}
	}
	if s5 == nil {
		t.Fatalf("expected a candidate discarding S5, got %+v", candidates)
	}
	if !s5.Waits.WaitingTiles.Has(tile.S5) {
		t.Errorf("expected discarding S5 to leave a wait on S5, got %v", s5.Waits.WaitingTiles.Kinds())
	}
	if s5.Ukeire != 4 {
		t.Errorf("got ukeire %d with nothing visible, want 4", s5.Ukeire)
	}
}

func TestSeekCandidatesSubtractsVisibleFromUkeire(t *testing.T) {
	s := NewSearcher(decomposer.Default(), nil)
	var visible [tile.NumKinds]int
	visible[tile.S5] = 2 // two more copies of S5 visible on the table
	candidates, err := s.SeekCandidates(seekTestHand(t), &visible)
	if err != nil {
		t.Fatalf("SeekCandidates: %v", err)
	}

	var s5 *Candidate
	for i := range candidates {
		if candidates[i].Discard.Kind == tile.S5 {
			s5 = &candidates[i]
		}
	}
	if s5 == nil {
		t.Fatalf("expected a candidate discarding S5, got %+v", candidates)
	}
	if s5.Ukeire != 2 {
		t.Errorf("got ukeire %d, want 2 (4 total minus 2 visible)", s5.Ukeire)
	}
}
