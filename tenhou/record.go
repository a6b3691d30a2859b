// Package tenhou imports and archives Tenhou mjlog game records, and
// builds a deterministic wall from a record's seed. That wall is this
// package's own shuffle, not a reproduction of Tenhou's.
package tenhou

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"gomahjong/internal/tile"
)

// Record is one imported Tenhou game log, flattened to the rounds and
// events this module cares about: each round's seed, its draw and
// discard events, and its result, not hand state or the full scoring
// detail Tenhou's own format carries.
type Record struct {
	ID        primitive.ObjectID `bson:"_id"`
	LogID     string             `bson:"log_id"` // Tenhou's own log identifier
	Rule      string             `bson:"rule"`
	Players   [4]string          `bson:"players"`
	Rounds    []Round            `bson:"rounds"`
	ImportedAt time.Time         `bson:"imported_at"`
}

// Round is one hand within a Tenhou log.
type Round struct {
	RoundWind   string      `bson:"round_wind"`
	RoundNumber int         `bson:"round_number"`
	Honba       int         `bson:"honba"`
	DealerIndex int         `bson:"dealer_index"`
	Seed        WallSeed    `bson:"seed"`
	Events      []RoundEvent `bson:"events"`
	Result      RoundResult `bson:"round_result"`
}

// RoundEvent mirrors a single draw or discard entry from the log; calls
// are not recorded.
type RoundEvent struct {
	Sequence  int        `bson:"sequence"`
	Type      string     `bson:"type"`
	SeatIndex int        `bson:"seat_index"`
	Tile      *tile.Tile `bson:"tile,omitempty"`
}

// RoundResult records how a Tenhou hand ended, kept for cross-checking
// the decomposer's win detection against what Tenhou itself recorded.
type RoundResult struct {
	EndType    string `bson:"end_type"` // "ron", "tsumo", "ryuukyoku"
	WinnerSeat int    `bson:"winner_seat"`
	LoserSeat  int    `bson:"loser_seat"`
	Yaku       []string `bson:"yaku"`
}

// NewRecord builds an empty record ready to receive imported rounds.
func NewRecord(logID, rule string, players [4]string) *Record {
	return &Record{
		ID:      primitive.NewObjectID(),
		LogID:   logID,
		Rule:    rule,
		Players: players,
	}
}
