package tenhou

import (
	"hash/fnv"
	"math/rand"

	"gomahjong/internal/tile"
)

// WallSeed carries the six comma-separated fields of a Tenhou INIT
// element's seed attribute: round wind value, honba count, riichi stick
// count, two dice values, and the first dora indicator's tile ID.
type WallSeed struct {
	RoundWindValue int
	HonbaCount     int
	RiichiSticks   int
	Dice1          int
	Dice2          int
	DoraIndicator  int
}

// BuildWall deterministically reproduces a 136-tile wall from seed: same
// seed always yields the same wall, in the same draw order. This is not
// a reproduction of Tenhou's own shuffle algorithm (Tenhou's internal PRNG
// is undocumented and out of scope here) — it exists so that replaying an
// imported log against this package's engine is reproducible run to run,
// not so that it reconstructs the exact physical wall Tenhou dealt.
func BuildWall(seed WallSeed) []tile.Tile {
	wall := make([]tile.Tile, 0, 136)
	for k := tile.Kind(0); k < tile.NumKinds; k++ {
		for copyIdx := 0; copyIdx < 4; copyIdx++ {
			red := copyIdx == 0 && k.IsNumeric() && k.Numeral() == 5
			wall = append(wall, tile.Tile{Kind: k, Red: red})
		}
	}

	r := rand.New(rand.NewSource(seedToInt64(seed)))
	r.Shuffle(len(wall), func(i, j int) { wall[i], wall[j] = wall[j], wall[i] })
	return wall
}

func seedToInt64(seed WallSeed) int64 {
	h := fnv.New64a()
	for _, v := range []int{seed.RoundWindValue, seed.HonbaCount, seed.RiichiSticks, seed.Dice1, seed.Dice2, seed.DoraIndicator} {
		var b [8]byte
		for i := range b {
			b[i] = byte(v >> (8 * i))
		}
		h.Write(b[:])
	}
	return int64(h.Sum64())
}
