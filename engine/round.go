package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gomahjong/decomposer"
	"gomahjong/internal/histogram"
	"gomahjong/internal/mjlog"
	"gomahjong/internal/tile"
	"gomahjong/yaku"
)

// DiscardPolicy chooses which tile a seat discards from its current
// 14-tile hand. Round has no opinion on strategy; callers that want
// competent play supply their own policy built on Searcher's candidates.
// The policy this package ships (LastDrawPolicy) is a placeholder for
// driving the state machine end to end, not a playing strategy.
type DiscardPolicy interface {
	ChooseDiscard(seat *Seat) int
}

// LastDrawPolicy always discards the tile most recently drawn.
type LastDrawPolicy struct{}

func (LastDrawPolicy) ChooseDiscard(seat *Seat) int { return len(seat.Concealed) - 1 }

// Outcome names how a round ended.
type Outcome string

const (
	OutcomeTsumo     Outcome = "tsumo"
	OutcomeRon       Outcome = "ron"
	OutcomeRyuukyoku Outcome = "ryuukyoku"
)

// WinResult records one seat's winning hand.
type WinResult struct {
	Seat int
	Tile tile.Tile
	Yaku yaku.Set
}

// Result is the final outcome of a round.
type Result struct {
	Outcome     Outcome
	Wins        []WinResult // one entry for tsumo, one or more for (multi-)ron
	LoserSeat   int         // -1 for tsumo or ryuukyoku
	TenpaiSeats []int       // populated only for ryuukyoku
}

// Round runs a single hand of four-player mahjong to completion: deal,
// turn loop, win detection, and exhaustive draw detection. It does not
// declare riichi itself; it only reads each Seat's Riichi flag. It holds no network or persistence concerns of its own;
// EventBus and Spectator, if set, are told about every step so a
// separate transport or archival layer can react.
type Round struct {
	ID    string
	Seats [4]*Seat

	wall    []tile.Tile
	wallPos int

	dealer  int
	current int
	seq     int

	dec       *decomposer.Decomposer
	bus       *EventBus
	spectator *Spectator
	policy    DiscardPolicy
}

// NewRoundID generates a fresh round identifier for callers that don't
// need a caller-chosen one (tests and replays commonly do).
func NewRoundID() string { return uuid.NewString() }

// NewRound builds a round over a pre-shuffled wall (136 tiles, already in
// draw order) seating players in seats[0..3]. dealer is the seat index
// that plays first. bus and spectator may both be nil. An empty id is
// replaced with a generated one.
func NewRound(id string, seats [4]*Seat, wall []tile.Tile, dealer int, dec *decomposer.Decomposer, bus *EventBus, spectator *Spectator) *Round {
	if id == "" {
		id = NewRoundID()
	}
	return &Round{
		ID:        id,
		Seats:     seats,
		wall:      wall,
		dealer:    dealer,
		current:   dealer,
		dec:       dec,
		bus:       bus,
		spectator: spectator,
		policy:    LastDrawPolicy{},
	}
}

// SetPolicy overrides the default discard policy.
func (r *Round) SetPolicy(p DiscardPolicy) { r.policy = p }

// Deal deals thirteen tiles to each seat from the front of the wall.
func (r *Round) Deal() error {
	need := 13 * 4
	if len(r.wall) < need {
		return fmt.Errorf("engine: wall has %d tiles, need at least %d to deal", len(r.wall), need)
	}
	for i := 0; i < 13; i++ {
		for s := 0; s < 4; s++ {
			r.Seats[s].Draw(r.wall[r.wallPos])
			r.wallPos++
		}
	}
	r.emit(Event{Type: EventRoundStart, Seat: r.dealer})
	return nil
}

// Run drives the turn loop (draw, check tsumo, discard, check ron,
// advance) until a win or exhaustive draw ends the round.
func (r *Round) Run(ctx context.Context) (*Result, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if r.wallPos >= len(r.wall) {
			return r.ryuukyoku()
		}

		drawn := r.wall[r.wallPos]
		r.wallPos++
		seat := r.Seats[r.current]
		seat.Draw(drawn)
		r.emit(Event{Type: EventDraw, Seat: r.current, Tile: &drawn})

		if win, ok, err := r.checkTsumo(seat, drawn); err != nil {
			return nil, err
		} else if ok {
			r.emit(Event{Type: EventTsumo, Seat: r.current, Tile: &drawn})
			return r.finish(Result{Outcome: OutcomeTsumo, Wins: []WinResult{win}, LoserSeat: -1})
		}

		discardIdx := r.policy.ChooseDiscard(seat)
		discarded := seat.Discard(discardIdx)
		r.emit(Event{Type: EventDiscard, Seat: r.current, Tile: &discarded})

		if wins, err := r.checkRon(r.current, discarded); err != nil {
			return nil, err
		} else if len(wins) > 0 {
			for _, w := range wins {
				r.emit(Event{Type: EventRon, Seat: w.Seat, Tile: &discarded})
			}
			return r.finish(Result{Outcome: OutcomeRon, Wins: wins, LoserSeat: r.current})
		}

		r.current = (r.current + 1) % 4
		r.seq++
	}
}

// checkTsumo tests whether seat's 14-tile hand (the 13 concealed tiles
// before drawn, plus drawn) is complete, either regularly or as one of
// the two irregular shapes.
func (r *Round) checkTsumo(seat *Seat, drawn tile.Tile) (WinResult, bool, error) {
	residual := seat.Concealed[:len(seat.Concealed)-1]
	h, err := histogram.FromTiles(residual)
	if err != nil {
		return WinResult{}, false, fmt.Errorf("engine: tsumo check histogram: %w", err)
	}
	ws, err := r.dec.Decompose(h)
	if err != nil {
		return WinResult{}, false, fmt.Errorf("engine: tsumo check decompose: %w", err)
	}
	if !ws.WaitingTiles.Has(drawn.Kind) {
		return WinResult{}, false, nil
	}

	ctx := yaku.Context{Tsumo: true, Riichi: seat.Riichi}
	if reg := matchRegular(ws, drawn.Kind); reg != nil {
		return WinResult{Seat: seat.Index, Tile: drawn, Yaku: yaku.Identify(*reg, ctx)}, true, nil
	}
	if ws.Irregular != nil {
		return WinResult{Seat: seat.Index, Tile: drawn, Yaku: yaku.IdentifyIrregular(ws.Irregular.Kind, ctx)}, true, nil
	}
	return WinResult{}, false, nil
}

// checkRon tests every seat other than discarder for a ron on discarded,
// respecting furiten: a seat may not ron on a tile kind it has itself
// discarded this round.
func (r *Round) checkRon(discarder int, discarded tile.Tile) ([]WinResult, error) {
	var wins []WinResult
	for offset := 1; offset <= 3; offset++ {
		s := (discarder + offset) % 4
		seat := r.Seats[s]
		if seat.HasDiscarded(discarded.Kind) {
			continue
		}
		h, err := histogram.FromTiles(seat.Concealed)
		if err != nil {
			return nil, fmt.Errorf("engine: ron check histogram: %w", err)
		}
		ws, err := r.dec.Decompose(h)
		if err != nil {
			return nil, fmt.Errorf("engine: ron check decompose: %w", err)
		}
		if !ws.WaitingTiles.Has(discarded.Kind) {
			continue
		}
		ctx := yaku.Context{Tsumo: false, Riichi: seat.Riichi}
		if reg := matchRegular(ws, discarded.Kind); reg != nil {
			wins = append(wins, WinResult{Seat: s, Tile: discarded, Yaku: yaku.Identify(*reg, ctx)})
		} else if ws.Irregular != nil {
			wins = append(wins, WinResult{Seat: s, Tile: discarded, Yaku: yaku.IdentifyIrregular(ws.Irregular.Kind, ctx)})
		}
	}
	return wins, nil
}

func matchRegular(ws decomposer.WaitSet, k tile.Kind) *decomposer.RegularWait {
	for i := range ws.Regular {
		if ws.Regular[i].WaitingTile == k {
			return &ws.Regular[i]
		}
	}
	return nil
}

// ryuukyoku ends the round by exhaustive draw, recording which seats
// were tenpai (their 13-tile hand has at least one wait).
func (r *Round) ryuukyoku() (*Result, error) {
	var tenpai []int
	for s := 0; s < 4; s++ {
		h, err := histogram.FromTiles(r.Seats[s].Concealed)
		if err != nil {
			return nil, fmt.Errorf("engine: ryuukyoku tenpai check: %w", err)
		}
		ws, err := r.dec.Decompose(h)
		if err != nil {
			return nil, fmt.Errorf("engine: ryuukyoku tenpai check: %w", err)
		}
		if !ws.IsEmpty() {
			tenpai = append(tenpai, s)
		}
	}
	r.emit(Event{Type: EventRyuukyoku})
	return r.finish(Result{Outcome: OutcomeRyuukyoku, LoserSeat: -1, TenpaiSeats: tenpai})
}

func (r *Round) finish(res Result) (*Result, error) {
	r.emit(Event{Type: EventRoundEnd, Data: map[string]any{"outcome": string(res.Outcome)}})
	mjlog.Info("round finished", "round", r.ID, "outcome", res.Outcome)
	return &res, nil
}

func (r *Round) emit(ev Event) {
	ev.Sequence = r.seq
	ev.Timestamp = time.Now().Unix()
	if r.bus != nil {
		r.bus.Publish(r.ID, ev)
	}
	if r.spectator != nil {
		r.spectator.Broadcast(ev)
	}
}
