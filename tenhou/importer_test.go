package tenhou

import (
	"strings"
	"testing"

	"gomahjong/internal/tile"
)

const sampleLog = `<mjloggm>
<INIT seed="0,0,0,3,4,20" oya="1" hai0="0,4,8,12,16,20,24,28,32,36,40,44,48" hai1="1,5,9,13,17,21,25,29,33,37,41,45,49" hai2="2,6,10,14,18,22,26,30,34,38,42,46,50" hai3="3,7,11,15,19,23,27,31,35,39,43,47,51"/>
<T52/>
<D0/>
<U53/>
<E1/>
<AGARI who="1" fromWho="1" yaku="1,2"/>
<INIT seed="0,1,0,2,5,9" oya="2"/>
<RYUUKYOKU/>
</mjloggm>`

func TestImportParsesRoundsEventsAndResults(t *testing.T) {
	imp := NewImporter()
	rec, err := imp.Import(strings.NewReader(sampleLog), "log123", "houou", [4]string{"a", "b", "c", "d"})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if rec.LogID != "log123" || rec.Rule != "houou" {
		t.Fatalf("unexpected record header: %+v", rec)
	}
	if len(rec.Rounds) != 2 {
		t.Fatalf("got %d rounds, want 2", len(rec.Rounds))
	}

	first := rec.Rounds[0]
	if first.DealerIndex != 1 {
		t.Errorf("got dealer %d, want 1", first.DealerIndex)
	}
	if first.Seed.Dice1 != 3 || first.Seed.Dice2 != 4 || first.Seed.DoraIndicator != 20 {
		t.Errorf("unexpected seed: %+v", first.Seed)
	}
	if len(first.Events) != 4 {
		t.Fatalf("got %d events, want 4: %+v", len(first.Events), first.Events)
	}
	if first.Events[0].Type != "draw" || first.Events[0].SeatIndex != 0 {
		t.Errorf("unexpected first event: %+v", first.Events[0])
	}
	if first.Events[1].Type != "discard" || first.Events[1].SeatIndex != 0 {
		t.Errorf("unexpected second event: %+v", first.Events[1])
	}
	if first.Result.EndType != "tsumo" || first.Result.WinnerSeat != 1 || first.Result.LoserSeat != -1 {
		t.Errorf("unexpected result: %+v", first.Result)
	}
	if len(first.Result.Yaku) != 2 {
		t.Errorf("got %d yaku entries, want 2: %v", len(first.Result.Yaku), first.Result.Yaku)
	}

	second := rec.Rounds[1]
	if second.Result.EndType != "ryuukyoku" || second.Result.WinnerSeat != -1 {
		t.Errorf("unexpected ryuukyoku result: %+v", second.Result)
	}
}

func TestParseDrawDiscardRecognizesAllSeats(t *testing.T) {
	cases := []struct {
		tag       string
		seat      int
		kind      string
	}{
		{"T0", 0, "draw"},
		{"U4", 1, "draw"},
		{"V8", 2, "draw"},
		{"W12", 3, "draw"},
		{"D0", 0, "discard"},
		{"E4", 1, "discard"},
		{"F8", 2, "discard"},
		{"G12", 3, "discard"},
	}
	for _, c := range cases {
		ev, ok := parseDrawDiscard(c.tag)
		if !ok {
			t.Fatalf("tag %q: expected ok", c.tag)
		}
		if ev.SeatIndex != c.seat || ev.Type != c.kind {
			t.Errorf("tag %q: got %+v, want seat %d kind %s", c.tag, ev, c.seat, c.kind)
		}
	}
	if _, ok := parseDrawDiscard("X"); ok {
		t.Error("expected a single-character tag to be rejected")
	}
	if _, ok := parseDrawDiscard("Z5"); ok {
		t.Error("expected an unrecognized leading letter to be rejected")
	}
}

func TestTileFromTenhouIDMarksRedFives(t *testing.T) {
	red := tileFromTenhouID(int(tile.M5) * 4)
	if red.Kind != tile.M5 || !red.Red {
		t.Errorf("got %+v, want red M5", red)
	}
	plain := tileFromTenhouID(int(tile.M5)*4 + 1)
	if plain.Kind != tile.M5 || plain.Red {
		t.Errorf("got %+v, want plain M5", plain)
	}
}

func TestParseSeedRejectsMalformedInput(t *testing.T) {
	if _, err := parseSeed("0,1,2"); err == nil {
		t.Error("expected an error for a seed with too few fields")
	}
	if _, err := parseSeed("0,1,2,3,4,x"); err == nil {
		t.Error("expected an error for a non-numeric seed field")
	}
}
