package engine

import (
	"fmt"

	"gomahjong/decomposer"
	"gomahjong/internal/histogram"
	"gomahjong/internal/mjcache"
	"gomahjong/internal/tile"
)

// Candidate is one legal discard from a 14-tile hand and the wait it
// leaves behind.
type Candidate struct {
	Discard tile.Tile
	Waits   decomposer.WaitSet
	Ukeire  int
}

// Searcher evaluates every discard from a 14-tile hand, caching each
// 13-tile residual's WaitSet so that repeated evaluations of the same
// shape (common across seats holding similar hands, or across repeated
// calls while a player hesitates over a discard) skip recomputation.
type Searcher struct {
	dec   *decomposer.Decomposer
	cache *mjcache.Local
}

// NewSearcher builds a Searcher over dec, caching WaitSets in cache.
// cache may be nil, in which case every call decomposes from scratch.
func NewSearcher(dec *decomposer.Decomposer, cache *mjcache.Local) *Searcher {
	return &Searcher{dec: dec, cache: cache}
}

// SeekCandidates enumerates, for each distinct tile kind in a 14-tile
// hand, the WaitSet and ukeire left behind after discarding one copy of
// that kind. visible, if non-nil, holds the count of each tile kind
// already visible on the table (discards, melds, dora indicators) and is
// subtracted from the theoretical four-of-a-kind ceiling when computing
// ukeire. Discards that leave a hand with no wait are omitted.
func (s *Searcher) SeekCandidates(hand14 []tile.Tile, visible *[tile.NumKinds]int) ([]Candidate, error) {
	seen := map[tile.Kind]tile.Tile{}
	for _, t := range hand14 {
		if _, ok := seen[t.Kind]; !ok {
			seen[t.Kind] = t
		}
	}

	var out []Candidate
	for k, discardTile := range seen {
		residual := removeOne(hand14, k)
		h, err := histogram.FromTiles(residual)
		if err != nil {
			return nil, fmt.Errorf("engine: build residual histogram: %w", err)
		}
		ws, err := s.waitsFor(h)
		if err != nil {
			return nil, err
		}
		if ws.IsEmpty() {
			continue
		}
		out = append(out, Candidate{
			Discard: discardTile,
			Waits:   ws,
			Ukeire:  ukeire(ws, visible),
		})
	}
	return out, nil
}

// waitsFor decomposes h, consulting the cache first when one is set.
func (s *Searcher) waitsFor(h histogram.FullHand) (decomposer.WaitSet, error) {
	key := cacheKey(h)
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			return v.(decomposer.WaitSet), nil
		}
	}
	ws, err := s.dec.Decompose(h)
	if err != nil {
		return decomposer.WaitSet{}, err
	}
	if s.cache != nil {
		s.cache.Set(key, ws, 1)
	}
	return ws, nil
}

func cacheKey(h histogram.FullHand) string {
	return fmt.Sprintf("%08x:%08x:%08x:%08x", h.Suits[0], h.Suits[1], h.Suits[2], h.Suits[3])
}

func removeOne(hand []tile.Tile, k tile.Kind) []tile.Tile {
	out := make([]tile.Tile, 0, len(hand)-1)
	removed := false
	for _, t := range hand {
		if !removed && t.Kind == k {
			removed = true
			continue
		}
		out = append(out, t)
	}
	return out
}

// ukeire sums, over every waiting tile kind, the copies still available
// to be drawn: four minus what's already visible.
func ukeire(ws decomposer.WaitSet, visible *[tile.NumKinds]int) int {
	total := 0
	for _, k := range ws.WaitingTiles.Kinds() {
		avail := 4
		if visible != nil {
			avail -= visible[k]
		}
		if avail > 0 {
			total += avail
		}
	}
	return total
}
