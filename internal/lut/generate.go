// This file implements the pure combinatorial enumeration that populates
// the C-Table and W-Table: a recursive structural peel over a single
// suit's tile counts, exploring every way to split the suit into complete
// groups, an optional pair, and (for waiting hands) exactly one incomplete
// structure.
package lut

import (
	"sort"

	"gomahjong/internal/handgroup"
	"gomahjong/internal/wait"
)

// CAlternative is one way to split a 3N+2 single-suit histogram into a
// pair plus up to four groups.
type CAlternative struct {
	PairNumeral int // 1-based
	Groups      []handgroup.SingleSuitCode
}

// WaitOutcome is one way the incomplete structure can resolve: the Pattern
// a caller matches against the winning tile, and the group that tile forms
// (CompletedGroup is meaningless for Pattern.Kind == wait.Pair, since
// drawing that tile completes the hand's pair, not a group).
type WaitOutcome struct {
	Pattern        wait.Pattern
	CompletedGroup handgroup.SingleSuitCode
}

// WAlternative is one way to split a 3N+1 single-suit histogram (or, for a
// pair-free Edge, DoubleClosed or Clamped wait, a 3N+2 one) into zero
// or more complete groups, an optional pair (present only for Closed,
// Edge, DoubleClosed and Clamped waits when this suit also happens to
// carry the hand's pair), and exactly one incomplete structure producing
// one or two WaitOutcomes.
type WAlternative struct {
	Outcomes    []WaitOutcome // 1 entry, except DoubleClosed which yields 2
	PairNumeral int           // 0 if this suit does not carry the hand's pair
	Groups      []handgroup.SingleSuitCode
}

type incomplete struct {
	kind     wait.Kind
	outcomes []WaitOutcome
}

// suitLen returns how many lanes are meaningful for the suit: 9 for
// numeric suits, 7 for honors.
func suitLen(isHonor bool) int {
	if isHonor {
		return 7
	}
	return 9
}

// generationMode selects which table a recursive search is populating.
type generationMode uint8

const (
	modeCompletePair generationMode = iota // C-Table: exactly one pair placed, groups only otherwise
	modeCompleteBare                       // pure-groups table: no pair, groups only
	modeWaiting                            // W-Table: optional pair, exactly one incomplete structure
)

// searchState carries the mutable recursion state; counts is mutated and
// restored in place (classic backtracking) to avoid per-call allocation.
type searchState struct {
	counts      []int
	isHonor     bool
	mode        generationMode
	groups      []handgroup.SingleSuitCode
	pairPlaced  bool
	pairNumeral int
	incompl     *incomplete

	completeOut *[]CAlternative
	wareOut     *[]WAlternative
}

func leftmostNonEmpty(counts []int) int {
	for i, c := range counts {
		if c > 0 {
			return i
		}
	}
	return -1
}

func cloneGroups(g []handgroup.SingleSuitCode) []handgroup.SingleSuitCode {
	out := make([]handgroup.SingleSuitCode, len(g))
	copy(out, g)
	return out
}

// emit records a terminal (fully-consumed) state according to the active
// mode.
func (s *searchState) emit() {
	switch s.mode {
	case modeCompletePair:
		if s.pairPlaced && s.incompl == nil {
			groups := cloneGroups(s.groups)
			sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })
			*s.completeOut = append(*s.completeOut, CAlternative{PairNumeral: s.pairNumeral, Groups: groups})
		}
	case modeCompleteBare:
		if !s.pairPlaced && s.incompl == nil {
			groups := cloneGroups(s.groups)
			sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })
			*s.completeOut = append(*s.completeOut, CAlternative{PairNumeral: 0, Groups: groups})
		}
	case modeWaiting:
		if s.incompl == nil {
			return
		}
		pairNumeral := 0
		switch s.incompl.kind {
		case wait.Pair:
			if s.pairPlaced {
				return
			}
		case wait.Closed:
			if !s.pairPlaced {
				return
			}
			pairNumeral = s.pairNumeral
		default: // Edge, DoubleClosed, Clamped
			if s.pairPlaced {
				pairNumeral = s.pairNumeral
			}
		}
		groups := cloneGroups(s.groups)
		sort.Slice(groups, func(i, j int) bool { return groups[i] < groups[j] })
		outcomes := append([]WaitOutcome(nil), s.incompl.outcomes...)
		sort.Slice(outcomes, func(i, j int) bool { return wait.Less(outcomes[i].Pattern, outcomes[j].Pattern) })
		*s.wareOut = append(*s.wareOut, WAlternative{Outcomes: outcomes, PairNumeral: pairNumeral, Groups: groups})
	}
}

// recurse explores every applicable peel at the leftmost nonempty lane.
func (s *searchState) recurse() {
	i := leftmostNonEmpty(s.counts)
	if i == -1 {
		s.emit()
		return
	}
	numeral := i + 1

	// Koutsu.
	if s.counts[i] >= 3 {
		s.counts[i] -= 3
		s.groups = append(s.groups, handgroup.KoutsuCode(numeral))
		s.recurse()
		s.groups = s.groups[:len(s.groups)-1]
		s.counts[i] += 3
	}

	// Shuntsu (numeric only).
	if !s.isHonor && i <= 6 && s.counts[i] >= 1 && s.counts[i+1] >= 1 && s.counts[i+2] >= 1 {
		s.counts[i]--
		s.counts[i+1]--
		s.counts[i+2]--
		s.groups = append(s.groups, handgroup.ShuntsuCode(numeral))
		s.recurse()
		s.groups = s.groups[:len(s.groups)-1]
		s.counts[i]++
		s.counts[i+1]++
		s.counts[i+2]++
	}

	// Pair (the hand's pair), at most once, available in every mode.
	if s.counts[i] >= 2 && !s.pairPlaced {
		s.counts[i] -= 2
		s.pairPlaced = true
		s.pairNumeral = numeral
		s.recurse()
		s.pairPlaced = false
		s.pairNumeral = 0
		s.counts[i] += 2
	}

	if s.mode != modeWaiting || s.incompl != nil {
		return
	}

	// Closed (shanpon half): this lane's pair becomes the waiting
	// triplet candidate instead of the hand's pair.
	if s.counts[i] >= 2 {
		s.counts[i] -= 2
		s.incompl = &incomplete{kind: wait.Closed, outcomes: []WaitOutcome{
			{Pattern: wait.Pattern{Numeral: numeral, Kind: wait.Closed}, CompletedGroup: handgroup.KoutsuCode(numeral)},
		}}
		s.recurse()
		s.incompl = nil
		s.counts[i] += 2
	}

	// Tanki: a single leftover tile becomes the pair on completion.
	if s.counts[i] == 1 {
		s.counts[i]--
		s.incompl = &incomplete{kind: wait.Pair, outcomes: []WaitOutcome{
			{Pattern: wait.Pattern{Numeral: numeral, Kind: wait.Pair}},
		}}
		s.recurse()
		s.incompl = nil
		s.counts[i]++
	}

	if s.isHonor {
		return
	}

	// Two adjacent tiles (b, b+1): edge wait at the two suit extremities,
	// double-closed wait everywhere else.
	if i <= 7 && s.counts[i] >= 1 && s.counts[i+1] >= 1 {
		s.counts[i]--
		s.counts[i+1]--
		switch numeral {
		case 1:
			s.incompl = &incomplete{kind: wait.Edge, outcomes: []WaitOutcome{
				{Pattern: wait.Pattern{Numeral: 3, Kind: wait.Edge}, CompletedGroup: handgroup.ShuntsuCode(1)},
			}}
		case 8:
			s.incompl = &incomplete{kind: wait.Edge, outcomes: []WaitOutcome{
				{Pattern: wait.Pattern{Numeral: 7, Kind: wait.Edge}, CompletedGroup: handgroup.ShuntsuCode(7)},
			}}
		default:
			s.incompl = &incomplete{kind: wait.DoubleClosed, outcomes: []WaitOutcome{
				{Pattern: wait.Pattern{Numeral: numeral - 1, Kind: wait.DoubleClosed}, CompletedGroup: handgroup.ShuntsuCode(numeral - 1)},
				{Pattern: wait.Pattern{Numeral: numeral + 2, Kind: wait.DoubleClosed}, CompletedGroup: handgroup.ShuntsuCode(numeral)},
			}}
		}
		s.recurse()
		s.incompl = nil
		s.counts[i]++
		s.counts[i+1]++
	}

	// Two tiles with a one-gap (b, b+2): clamped (kanchan) wait on b+1.
	if i <= 6 && s.counts[i] >= 1 && s.counts[i+2] >= 1 {
		s.counts[i]--
		s.counts[i+2]--
		s.incompl = &incomplete{kind: wait.Clamped, outcomes: []WaitOutcome{
			{Pattern: wait.Pattern{Numeral: numeral + 1, Kind: wait.Clamped}, CompletedGroup: handgroup.ShuntsuCode(numeral)},
		}}
		s.recurse()
		s.incompl = nil
		s.counts[i]++
		s.counts[i+2]++
	}
}

// dedupComplete removes exact-duplicate alternatives (same pair numeral,
// same sorted group list) that different peel orders can reach, and caps
// at 4 entries as the C-Table's proven upper bound requires.
func dedupComplete(in []CAlternative) []CAlternative {
	seen := make(map[string]bool, len(in))
	var out []CAlternative
	for _, alt := range in {
		key := altKey(alt)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, alt)
	}
	if len(out) > 4 {
		out = out[:4]
	}
	return out
}

func altKey(alt CAlternative) string {
	b := make([]byte, 0, len(alt.Groups)+1)
	b = append(b, byte(alt.PairNumeral))
	for _, g := range alt.Groups {
		b = append(b, byte(g))
	}
	return string(b)
}

func dedupWaiting(in []WAlternative) []WAlternative {
	seen := make(map[string]bool, len(in))
	var out []WAlternative
	for _, alt := range in {
		key := waitAltKey(alt)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, alt)
	}
	return out
}

func waitAltKey(alt WAlternative) string {
	b := make([]byte, 0, len(alt.Groups)+len(alt.Outcomes)*3+1)
	b = append(b, byte(alt.PairNumeral))
	for _, o := range alt.Outcomes {
		b = append(b, byte(o.Pattern.Numeral), byte(o.Pattern.Kind), byte(o.CompletedGroup))
	}
	for _, g := range alt.Groups {
		b = append(b, byte(g))
	}
	return string(b)
}

// decomposeComplete enumerates every (pair + groups) alternative for a
// single suit whose total is 3N+2, or every pure-groups alternative for a
// total that is 3N.
func decomposeComplete(counts []int, isHonor bool, pairRequired bool) []CAlternative {
	mode := modeCompleteBare
	if pairRequired {
		mode = modeCompletePair
	}
	var out []CAlternative
	s := &searchState{counts: append([]int(nil), counts...), isHonor: isHonor, mode: mode, completeOut: &out}
	s.recurse()
	return dedupComplete(out)
}

// decomposeWaiting enumerates every waiting alternative for a single suit
// whose total is 3N+1 or 3N+2.
func decomposeWaiting(counts []int, isHonor bool) []WAlternative {
	var out []WAlternative
	s := &searchState{counts: append([]int(nil), counts...), isHonor: isHonor, mode: modeWaiting, wareOut: &out}
	s.recurse()
	return dedupWaiting(out)
}
