/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package bitbracket encodes the outcome of a single-elimination tournament
// among a power-of-two field as a single integer, one bit per match.
//
// Matches are resolved round by round, left to right within a round. Bit i
// of a Bitbracket (counting from the least significant bit) records the
// winner of the i-th resolved match: 0 when the lower-indexed competitor of
// the pair advances, 1 when the higher-indexed one does. The winner of a
// pair takes the earlier of the two slots, so adjacent survivors meet in the
// next round.
package bitbracket

import (
	"fmt"
	"strconv"
	"strings"
)

// Bitbracket is the packed result of every match in a tournament. A field
// of T competitors uses the low T-1 bits.
type Bitbracket uint64

const (
	// MaxTeams is the largest field whose results fit in a Bitbracket.
	MaxTeams = 64

	// DefaultN is the conventional number of simulated tournaments.
	DefaultN = 1000
)

// Parse reads a bitbracket written in decimal or with a 0b, 0o or 0x
// prefix.
func Parse(s string) (Bitbracket, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bitbracket should be an integer, got %q",
			ErrType, s)
	}
	return Bitbracket(v), nil
}

// Bracket lists the surviving competitors after each round, first to last.
// Bracket[0] is the full field and the final round holds only the champion.
type Bracket[T any] [][]T

// Champion returns the sole competitor of the final round.
func (b Bracket[T]) Champion() T {
	last := b[len(b)-1]
	return last[0]
}

// decider picks the winner of the match-th resolved match between a and b:
// 0 when a advances, 1 when b does.
type decider[T any] func(match int, a, b T) (int, error)

// knockout runs the halving procedure over a private working copy of teams.
// Every operation in this package that walks a tournament goes through here
// so that encoding and decoding consume matches in exactly the same order.
// onRound, if non-nil, receives each completed round.
func knockout[T any](teams []T, decide decider[T], onRound func([]T)) error {
	cur := append([]T(nil), teams...)
	match := 0

	for len(cur) > 1 {
		pairs := len(cur) / 2
		for i := 0; i < pairs; i++ {
			winner, err := decide(match, cur[i], cur[i+1])
			if err != nil {
				return err
			}
			if winner != 0 && winner != 1 {
				return fmt.Errorf("%w: match %v resolved to %v; want 0 or 1",
					ErrValue, match, winner)
			}
			// the loser leaves the buffer so the next pair starts at i+1
			cur = removeIndex(cur, i+1-winner)
			match++
		}
		if onRound != nil {
			onRound(append([]T(nil), cur...))
		}
	}

	return nil
}

func removeIndex[T any](s []T, i int) []T {
	return append(s[:i], s[i+1:]...)
}

// bitDecider replays the matches recorded in bb. Bits beyond the 64th read
// as 0, same as any other exhausted high bit.
func bitDecider[T any](bb Bitbracket) decider[T] {
	return func(match int, _, _ T) (int, error) {
		if match >= 64 {
			return 0, nil
		}
		return int((bb >> match) & 1), nil
	}
}

// Translate decodes bb into the rounds of a tournament among teams. The
// caller's slice is never modified.
//
// bb is not range checked: bits above the T-1 that a field of T teams
// consumes are ignored, and a bitbracket with fewer meaningful bits reads
// as though the missing matches were won by the lower-indexed competitor.
func Translate[T any](bb Bitbracket, teams []T) (Bracket[T], error) {
	if err := ValidateTeams(teams); err != nil {
		return nil, err
	}

	return translate(bb, teams), nil
}

func translate[T any](bb Bitbracket, teams []T) Bracket[T] {
	bracket := Bracket[T]{append([]T(nil), teams...)}
	// bitDecider never fails, so neither does knockout
	_ = knockout(teams, bitDecider[T](bb), func(round []T) {
		bracket = append(bracket, round)
	})

	return bracket
}

// Champion returns the winner of the tournament among teams recorded by bb.
func Champion[T any](bb Bitbracket, teams []T) (T, error) {
	bracket, err := Translate(bb, teams)
	if err != nil {
		var zero T
		return zero, err
	}

	return bracket.Champion(), nil
}

// Encode is the inverse of Translate: it reads off which member of each pair
// survived and packs the results into a Bitbracket. A pair whose members
// compare equal records the lower-indexed competitor as the winner.
func Encode[T comparable](bracket Bracket[T]) (Bitbracket, error) {
	if len(bracket) == 0 {
		return 0, fmt.Errorf("%w: empty bracket", ErrValue)
	}
	if err := ValidateTeams(bracket[0]); err != nil {
		return 0, err
	}
	rounds := roundsFor(len(bracket[0]))
	if len(bracket) != rounds+1 {
		return 0, fmt.Errorf("%w: bracket of %v teams has %v rounds; want %v",
			ErrValue, len(bracket[0]), len(bracket), rounds+1)
	}
	for r := 1; r < len(bracket); r++ {
		if len(bracket[r]) != len(bracket[r-1])/2 {
			return 0, fmt.Errorf("%w: round %v has %v teams; want %v",
				ErrValue, r, len(bracket[r]), len(bracket[r-1])/2)
		}
	}

	if err := validateComparable(bracket); err != nil {
		return 0, err
	}

	var bb Bitbracket
	round, slot := 1, 0
	err := knockout(bracket[0], func(match int, a, b T) (int, error) {
		if slot == len(bracket[round]) {
			round++
			slot = 0
		}
		survivor := bracket[round][slot]
		slot++

		switch survivor {
		case a:
			return 0, nil
		case b:
			bb |= 1 << match
			return 1, nil
		}
		return 0, fmt.Errorf("%w: round %v survivor %v is not a member of pair %v vs %v",
			ErrValue, round, survivor, a, b)
	}, nil)
	if err != nil {
		return 0, err
	}

	return bb, nil
}

// roundsFor returns log2(numTeams) for a power-of-two field.
func roundsFor(numTeams int) int {
	r := 0
	for numTeams > 1 {
		numTeams /= 2
		r++
	}
	return r
}

// Matches returns the number of matches played by a field of numTeams.
func Matches(numTeams int) int {
	return numTeams - 1
}
