package tenhou

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gomahjong/internal/tile"
)

// Importer parses a Tenhou mjlog XML document into a Record. No example
// repository in this corpus imports a third-party XML library, so this
// parses with the standard library's encoding/xml rather than reaching
// for an unfamiliar dependency for a single, narrow use.
type Importer struct{}

// NewImporter builds an Importer.
func NewImporter() *Importer { return &Importer{} }

// rawLog mirrors just the elements this importer understands; Tenhou logs
// carry many more (DORA, REACH, BYE, scoring detail) that scoring-layer
// consumers would need but this package, which only identifies waits and
// yaku, does not.
type rawLog struct {
	XMLName xml.Name   `xml:"mjloggm"`
	Items   []rawItem  `xml:",any"`
}

type rawItem struct {
	XMLName xml.Name
	Seed    string `xml:"seed,attr"`
	Oya     string `xml:"oya,attr"`
	Hai0    string `xml:"hai0,attr"`
	Hai1    string `xml:"hai1,attr"`
	Hai2    string `xml:"hai2,attr"`
	Hai3    string `xml:"hai3,attr"`
	Who     string `xml:"who,attr"` // AGARI/RYUUKYOKU attribute
	FromWho string `xml:"fromWho,attr"`
	Yaku    string `xml:"yaku,attr"`
}

// Import reads a full Tenhou mjlog XML document from r and returns the
// rounds it contains. logID and rule are supplied by the caller (the
// Tenhou log ID is usually embedded in the filename or the request URL
// used to fetch the log, not the document body).
func (imp *Importer) Import(r io.Reader, logID, rule string, players [4]string) (*Record, error) {
	var raw rawLog
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("tenhou: decode mjlog xml: %w", err)
	}

	rec := NewRecord(logID, rule, players)
	var cur *Round
	roundNumber := 0

	flush := func() {
		if cur != nil {
			rec.Rounds = append(rec.Rounds, *cur)
			cur = nil
		}
	}

	for _, item := range raw.Items {
		switch item.XMLName.Local {
		case "INIT":
			flush()
			roundNumber++
			oya, _ := strconv.Atoi(item.Oya)
			seed, err := parseSeed(item.Seed)
			if err != nil {
				return nil, fmt.Errorf("tenhou: round %d: %w", roundNumber, err)
			}
			cur = &Round{RoundNumber: roundNumber, DealerIndex: oya, Seed: seed}
		case "AGARI":
			if cur == nil {
				continue
			}
			who, _ := strconv.Atoi(item.Who)
			fromWho, _ := strconv.Atoi(item.FromWho)
			result := RoundResult{WinnerSeat: who, LoserSeat: fromWho}
			if who == fromWho {
				result.EndType = "tsumo"
				result.LoserSeat = -1
			} else {
				result.EndType = "ron"
			}
			if item.Yaku != "" {
				result.Yaku = strings.Split(item.Yaku, ",")
			}
			cur.Result = result
		case "RYUUKYOKU":
			if cur == nil {
				continue
			}
			cur.Result = RoundResult{EndType: "ryuukyoku", WinnerSeat: -1, LoserSeat: -1}
		default:
			if cur == nil {
				continue
			}
			if ev, ok := parseDrawDiscard(item.XMLName.Local); ok {
				cur.Events = append(cur.Events, ev)
			}
		}
	}
	flush()
	return rec, nil
}

// parseDrawDiscard recognizes Tenhou's single-letter-plus-ID draw/discard
// tags: T/U/V/W for seat 0..3 drawing, D/E/F/G for seat 0..3 discarding.
func parseDrawDiscard(tag string) (RoundEvent, bool) {
	if len(tag) < 2 {
		return RoundEvent{}, false
	}
	var seat int
	var kind string
	switch tag[0] {
	case 'T':
		seat, kind = 0, "draw"
	case 'U':
		seat, kind = 1, "draw"
	case 'V':
		seat, kind = 2, "draw"
	case 'W':
		seat, kind = 3, "draw"
	case 'D':
		seat, kind = 0, "discard"
	case 'E':
		seat, kind = 1, "discard"
	case 'F':
		seat, kind = 2, "discard"
	case 'G':
		seat, kind = 3, "discard"
	default:
		return RoundEvent{}, false
	}
	id, err := strconv.Atoi(tag[1:])
	if err != nil {
		return RoundEvent{}, false
	}
	t := tileFromTenhouID(id)
	return RoundEvent{Type: kind, SeatIndex: seat, Tile: &t}, true
}

// tileFromTenhouID converts a Tenhou 0..135 tile ID to our Tile. Tenhou
// groups IDs in fours per kind (id/4 is the 0..33 kind index, which
// matches this package's own m/p/s/z ordering exactly); the id%4==0 copy
// (by Tenhou convention the first physical copy, shown as 0m/0p/0s) is
// the red five for the three numeral-5 kinds.
func tileFromTenhouID(id int) tile.Tile {
	kind := tile.Kind(id / 4)
	red := id%4 == 0 && kind.IsNumeric() && kind.Numeral() == 5
	return tile.Tile{Kind: kind, Red: red}
}

func parseSeed(s string) (WallSeed, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 6 {
		return WallSeed{}, fmt.Errorf("malformed seed attribute %q", s)
	}
	ints := make([]int, 6)
	for i, p := range parts[:6] {
		v, err := strconv.Atoi(p)
		if err != nil {
			return WallSeed{}, fmt.Errorf("malformed seed field %q: %w", p, err)
		}
		ints[i] = v
	}
	return WallSeed{
		RoundWindValue: ints[0],
		HonbaCount:     ints[1],
		RiichiSticks:   ints[2],
		Dice1:          ints[3],
		Dice2:          ints[4],
		DoraIndicator:  ints[5],
	}, nil
}
