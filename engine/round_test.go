package engine

import (
	"context"
	"testing"

	"gomahjong/decomposer"
	"gomahjong/internal/tile"
)

func TestNewRoundGeneratesIDWhenEmpty(t *testing.T) {
	var seats [4]*Seat
	for i := range seats {
		seats[i] = NewSeat(i, "p", 25000)
	}
	a := NewRound("", seats, dealOnlyWall(t), 0, decomposer.Default(), nil, nil)
	b := NewRound("", seats, dealOnlyWall(t), 0, decomposer.Default(), nil, nil)
	if a.ID == "" || b.ID == "" {
		t.Fatal("expected a generated round ID, got an empty string")
	}
	if a.ID == b.ID {
		t.Fatalf("expected two generated IDs to differ, both were %q", a.ID)
	}

	explicit := NewRound("explicit-id", seats, dealOnlyWall(t), 0, decomposer.Default(), nil, nil)
	if explicit.ID != "explicit-id" {
		t.Fatalf("got ID %q, want the caller-supplied explicit-id", explicit.ID)
	}
}

func dealOnlyWall(t *testing.T) []tile.Tile {
	t.Helper()
	hand, err := tile.ParseTiles("1112223334445m")
	if err != nil {
		t.Fatalf("parse hand: %v", err)
	}
	if len(hand) != 13 {
		t.Fatalf("got %d tiles, want 13", len(hand))
	}
	wall := make([]tile.Tile, 52)
	for i := 0; i < 13; i++ {
		for s := 0; s < 4; s++ {
			wall[i*4+s] = hand[i]
		}
	}
	return wall
}

func newTestRound(t *testing.T) *Round {
	t.Helper()
	var seats [4]*Seat
	for i := range seats {
		seats[i] = NewSeat(i, "p", 25000)
	}
	return NewRound("round-test", seats, dealOnlyWall(t), 0, decomposer.Default(), nil, nil)
}

func TestRoundDealDistributesThirteenTilesPerSeat(t *testing.T) {
	r := newTestRound(t)
	if err := r.Deal(); err != nil {
		t.Fatalf("Deal: %v", err)
	}
	for i, seat := range r.Seats {
		if len(seat.Concealed) != 13 {
			t.Errorf("seat %d: got %d concealed tiles, want 13", i, len(seat.Concealed))
		}
	}
	if r.wallPos != 52 {
		t.Fatalf("got wallPos %d, want 52", r.wallPos)
	}
}

func TestRoundDealRejectsShortWall(t *testing.T) {
	var seats [4]*Seat
	for i := range seats {
		seats[i] = NewSeat(i, "p", 25000)
	}
	r := NewRound("short", seats, make([]tile.Tile, 10), 0, decomposer.Default(), nil, nil)
	if err := r.Deal(); err == nil {
		t.Fatal("expected an error dealing from a wall shorter than 52 tiles")
	}
}

func TestRoundRunEndsInRyuukyokuWhenWallExhaustedAfterDeal(t *testing.T) {
	r := newTestRound(t)
	if err := r.Deal(); err != nil {
		t.Fatalf("Deal: %v", err)
	}
	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != OutcomeRyuukyoku {
		t.Fatalf("got outcome %v, want ryuukyoku", res.Outcome)
	}
	if res.LoserSeat != -1 {
		t.Fatalf("got loser seat %d, want -1", res.LoserSeat)
	}
}

func TestRoundRunRespectsCancellation(t *testing.T) {
	r := newTestRound(t)
	if err := r.Deal(); err != nil {
		t.Fatalf("Deal: %v", err)
	}
	r.wall = append(r.wall, tile.Tile{Kind: tile.M1}) // leave one more draw available
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Run(ctx); err == nil {
		t.Fatal("expected Run to return an error for an already-cancelled context")
	}
}
