package histogram

import (
	"testing"

	"gomahjong/internal/tile"
)

func TestPackedGetSet(t *testing.T) {
	var p Packed
	p = p.Set(1, 3)
	p = p.Set(9, 2)
	if p.Get(1) != 3 {
		t.Errorf("lane 1: got %d, want 3", p.Get(1))
	}
	if p.Get(9) != 2 {
		t.Errorf("lane 9: got %d, want 2", p.Get(9))
	}
	if p.Get(5) != 0 {
		t.Errorf("lane 5: got %d, want 0", p.Get(5))
	}
	if p.Total() != 5 {
		t.Errorf("total: got %d, want 5", p.Total())
	}
}

func TestFromCountsRoundTrip(t *testing.T) {
	counts := []int{1, 0, 2, 0, 0, 4, 0, 0, 3}
	p, err := FromCounts(counts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := p.Counts()
	for i, c := range counts {
		if got[i] != c {
			t.Errorf("lane %d: got %d, want %d", i+1, got[i], c)
		}
	}
}

func TestFromCountsOverflow(t *testing.T) {
	if _, err := FromCounts([]int{5}); err != ErrCountOverflow {
		t.Fatalf("expected ErrCountOverflow, got %v", err)
	}
}

func TestFullHandValidate(t *testing.T) {
	h, err := FromTiles(mustParse(t, "123m456p789s11z22z"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := h.Validate(13); err != nil {
		t.Fatalf("unexpected validate error: %v", err)
	}
	if err := h.Validate(14); err == nil {
		t.Fatal("expected validate error for wrong total")
	}
}

func TestFromTilesRejectsFiveOfAKind(t *testing.T) {
	tiles := mustParse(t, "1111m")
	tiles = append(tiles, mustParse(t, "1m")...)
	if _, err := FromTiles(tiles); err == nil {
		t.Fatal("expected error for a fifth copy of the same tile")
	}
}

func mustParse(t *testing.T, s string) []tile.Tile {
	t.Helper()
	tiles, err := tile.ParseTiles(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return tiles
}
