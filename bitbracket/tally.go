/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bitbracket

import (
	"sort"
)

// Tally counts how often each Bitbracket occurred across simulations.
type Tally map[Bitbracket]int

// Count is one entry of a Tally.
type Count struct {
	Bitbracket Bitbracket
	N          int
}

// ChampionCount is the number of simulated tournaments won by the team at
// Index of the field.
type ChampionCount struct {
	Index int
	N     int
}

func (t Tally) Add(bb Bitbracket) {
	t[bb]++
}

// Merge adds every count in other to t.
func (t Tally) Merge(other Tally) {
	for bb, n := range other {
		t[bb] += n
	}
}

// Total returns the number of simulations recorded.
func (t Tally) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// MostCommon returns the k most frequent bitbrackets, most frequent first
// with ties broken by the smaller Bitbracket. k <= 0 returns every entry.
func (t Tally) MostCommon(k int) []Count {
	counts := make([]Count, 0, len(t))
	for bb, n := range t {
		counts = append(counts, Count{Bitbracket: bb, N: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].N != counts[j].N {
			return counts[i].N > counts[j].N
		}
		return counts[i].Bitbracket < counts[j].Bitbracket
	})

	if k > 0 && k < len(counts) {
		counts = counts[:k]
	}
	return counts
}

// Champions aggregates the tally by tournament winner for a field of
// numTeams, most frequent champion first with ties broken by index.
func (t Tally) Champions(numTeams int) ([]ChampionCount, error) {
	field := make([]int, numTeams)
	for i := range field {
		field[i] = i
	}
	if err := ValidateTeams(field); err != nil {
		return nil, err
	}

	byIndex := make(map[int]int)
	for bb, n := range t {
		byIndex[translate(bb, field).Champion()] += n
	}

	counts := make([]ChampionCount, 0, len(byIndex))
	for idx, n := range byIndex {
		counts = append(counts, ChampionCount{Index: idx, N: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].N != counts[j].N {
			return counts[i].N > counts[j].N
		}
		return counts[i].Index < counts[j].Index
	})

	return counts, nil
}
