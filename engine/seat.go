package engine

import (
	"gomahjong/internal/tile"
)

// Seat tracks one player's visible and concealed state across a round:
// their concealed tiles, discards, and riichi status.
type Seat struct {
	Index          int
	UserID         string
	Concealed      []tile.Tile
	Discards       []tile.Tile
	discardedKinds map[tile.Kind]struct{}
	Riichi         bool
	Points         int
}

// NewSeat builds an empty seat with the given starting point total.
func NewSeat(index int, userID string, startingPoints int) *Seat {
	return &Seat{
		Index:          index,
		UserID:         userID,
		Concealed:      make([]tile.Tile, 0, 14),
		Discards:       make([]tile.Tile, 0, 24),
		discardedKinds: make(map[tile.Kind]struct{}),
		Points:         startingPoints,
	}
}

// Draw appends t to the seat's concealed hand.
func (s *Seat) Draw(t tile.Tile) {
	s.Concealed = append(s.Concealed, t)
}

// Discard removes the tile at index i from the concealed hand, records it
// in the discard pile, and marks its kind for furiten checks.
func (s *Seat) Discard(i int) tile.Tile {
	t := s.Concealed[i]
	s.Concealed = append(s.Concealed[:i], s.Concealed[i+1:]...)
	s.Discards = append(s.Discards, t)
	s.discardedKinds[t.Kind] = struct{}{}
	return t
}

// HasDiscarded reports whether the seat has ever discarded k, the
// furiten precondition: a seat may not ron on a tile it has discarded.
func (s *Seat) HasDiscarded(k tile.Kind) bool {
	_, ok := s.discardedKinds[k]
	return ok
}

// Declare marks the seat as having declared riichi.
func (s *Seat) Declare() { s.Riichi = true }

// AdjustPoints applies a signed point delta (win gains, deal-in losses).
func (s *Seat) AdjustPoints(delta int) { s.Points += delta }
