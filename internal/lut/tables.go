// Package lut implements the C-Table and W-Table: precomputed maps from a
// packed single-suit histogram to every alternative structural
// decomposition, built once by pure combinatorial enumeration and shared
// read-only thereafter.
package lut

import (
	"sync"

	"gomahjong/internal/histogram"
)

// Tables holds every precomputed single-suit lookup table. Numeric and
// honor suits get separate maps because the same packed key means
// different things in each: a numeric suit admits runs, an honor suit
// never does.
type Tables struct {
	CNumeric map[histogram.Packed][]CAlternative
	CHonor   map[histogram.Packed][]CAlternative
	GNumeric map[histogram.Packed][]CAlternative // pure groups, no pair (3N total)
	GHonor   map[histogram.Packed][]CAlternative
	WNumeric map[histogram.Packed][]WAlternative
	WHonor   map[histogram.Packed][]WAlternative
}

// maxHandTotal bounds the generation: no single suit within a 14-tile hand
// can hold more tiles than the hand itself.
const maxHandTotal = 14

// allCountVectors enumerates every length-lane vector with each entry in
// 0..4 summing to exactly total.
func allCountVectors(lanes, total int) [][]int {
	var out [][]int
	current := make([]int, lanes)
	var rec func(idx, remaining int)
	rec = func(idx, remaining int) {
		if idx == lanes {
			if remaining == 0 {
				out = append(out, append([]int(nil), current...))
			}
			return
		}
		remainingLanes := lanes - idx - 1
		maxHere := remaining
		if maxHere > 4 {
			maxHere = 4
		}
		for c := 0; c <= maxHere; c++ {
			if remaining-c > remainingLanes*4 {
				continue
			}
			current[idx] = c
			rec(idx+1, remaining-c)
		}
		current[idx] = 0
	}
	rec(0, total)
	return out
}

func buildComplete(lanes int, isHonor, pairRequired bool) map[histogram.Packed][]CAlternative {
	out := make(map[histogram.Packed][]CAlternative)
	mod := 2
	if !pairRequired {
		mod = 0
	}
	for n := 0; n <= 4; n++ {
		total := 3*n + mod
		if total > maxHandTotal {
			continue
		}
		for _, counts := range allCountVectors(lanes, total) {
			key := packFrom(counts)
			alts := decomposeComplete(counts, isHonor, pairRequired)
			if len(alts) > 0 {
				out[key] = alts
			}
		}
	}
	return out
}

// buildWaiting covers 3N+1 totals (every single-suit wait) and 3N+2 totals
// (the pair-free two-tile partial runs a suit holds when another suit
// carries the hand's pair).
func buildWaiting(lanes int, isHonor bool) map[histogram.Packed][]WAlternative {
	out := make(map[histogram.Packed][]WAlternative)
	for total := 1; total <= maxHandTotal; total++ {
		if total%3 == 0 {
			continue
		}
		for _, counts := range allCountVectors(lanes, total) {
			key := packFrom(counts)
			alts := decomposeWaiting(counts, isHonor)
			if len(alts) > 0 {
				out[key] = alts
			}
		}
	}
	return out
}

func packFrom(counts []int) histogram.Packed {
	full := make([]int, 9)
	copy(full, counts)
	p, err := histogram.FromCounts(full)
	if err != nil {
		panic("lut: generator produced an invalid histogram: " + err.Error())
	}
	return p
}

// NewTables builds a fresh, fully populated Tables value. It is pure and
// deterministic; callers who want explicit control over when generation
// happens call this directly instead of relying on the lazily-initialized
// package singleton.
func NewTables() *Tables {
	return &Tables{
		CNumeric: buildComplete(9, false, true),
		CHonor:   buildComplete(7, true, true),
		GNumeric: buildComplete(9, false, false),
		GHonor:   buildComplete(7, true, false),
		WNumeric: buildWaiting(9, false),
		WHonor:   buildWaiting(7, true),
	}
}

var (
	once     sync.Once
	instance *Tables
)

// Get returns the process-wide lazily-initialized Tables singleton,
// building it on first call. The build is guarded by sync.Once: the first
// caller generates the tables, concurrent callers block until it is
// ready, and every read afterward is lock-free and safe to call from
// multiple goroutines concurrently.
func Get() *Tables {
	once.Do(func() {
		instance = NewTables()
	})
	return instance
}
