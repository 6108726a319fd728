/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bitbracket

import (
	"fmt"
	"math"
	"reflect"
)

// ValidateTeams ensures teams is a field this package can play out: a power
// of two between 2 and MaxTeams. When T is an interface type every element
// must also carry the same dynamic type.
func ValidateTeams[T any](teams []T) error {
	numTeams := len(teams)
	if numTeams < 2 || numTeams&(numTeams-1) != 0 {
		return fmt.Errorf("%w: invalid number of teams %v; want a power of two >= 2",
			ErrValue, numTeams)
	}
	if numTeams > MaxTeams {
		return fmt.Errorf("%w: %v teams exceeds the maximum of %v",
			ErrValue, numTeams, MaxTeams)
	}

	if reflect.TypeFor[T]().Kind() != reflect.Interface {
		return nil
	}
	first := reflect.TypeOf(any(teams[0]))
	for i := 1; i < numTeams; i++ {
		if t := reflect.TypeOf(any(teams[i])); t != first {
			return fmt.Errorf("%w: team %v is a %v but team 0 is a %v; team objects must all be the same type",
				ErrType, i, t, first)
		}
	}

	return nil
}

// validateComparable rejects brackets holding values that would panic when
// compared with ==. Only an interface T can carry such values.
func validateComparable[T comparable](bracket Bracket[T]) (err error) {
	if reflect.TypeFor[T]().Kind() != reflect.Interface {
		return nil
	}
	for r, round := range bracket {
		for _, team := range round {
			if typ := reflect.TypeOf(any(team)); typ != nil && !typ.Comparable() {
				return fmt.Errorf("%w: round %v holds a %v, which cannot be compared",
					ErrType, r, typ)
			}
		}
	}

	// comparable types such as [1]any can still hold uncomparable values
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: bracket values cannot be compared: %v",
				ErrType, r)
		}
	}()
	for _, round := range bracket {
		for _, team := range round {
			_ = team == team
		}
	}

	return nil
}

// ValidateN ensures n is a usable number of simulations.
func ValidateN(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: n must be >= 1, got %v", ErrValue, n)
	}
	return nil
}

// probeMatchup invokes matchup on the first two teams to catch a broken
// outcome source before any simulation runs.
func probeMatchup[T any](teams []T, matchup Matchup[T]) (err error) {
	if matchup == nil {
		return fmt.Errorf("%w: matchup must be a function", ErrType)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: matchup must take two team objects: %v",
				ErrValue, r)
		}
	}()
	winner := matchup(teams[0], teams[1])
	if winner != 0 && winner != 1 {
		return fmt.Errorf("%w: matchup returned %v; want 0 or 1", ErrValue,
			winner)
	}

	return nil
}

// probeWinProb is the probabilistic counterpart of probeMatchup. Values
// outside [0,1] are tolerated; they only bias the draw.
func probeWinProb[T any](teams []T, p WinProb[T]) (err error) {
	if p == nil {
		return fmt.Errorf("%w: win probability must be a function", ErrType)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: win probability must take two team objects: %v",
				ErrValue, r)
		}
	}()
	if prob := p(teams[0], teams[1]); math.IsNaN(prob) {
		return fmt.Errorf("%w: win probability returned NaN", ErrValue)
	}

	return nil
}
