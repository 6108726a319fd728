/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package field

import (
	"github.com/mikeb26/bitbracket/bitbracket"
	"github.com/mikeb26/bitbracket/uschess"
)

// UnratedRating stands in for entrants with no rating when computing win
// probabilities.
const UnratedRating = 1000

func effectiveRating(e Entrant) float64 {
	if e.Rating <= 0 {
		return UnratedRating
	}
	return float64(e.Rating)
}

// EloWinProb estimates each game from the players' ratings with the US Chess
// expected score formula. Knockout games are replayed until decisive, so
// the expected score is taken as the probability of advancing.
func EloWinProb() bitbracket.WinProb[Entrant] {
	return func(a, b Entrant) float64 {
		return uschess.ExpectedScore(effectiveRating(a), effectiveRating(b))
	}
}

// HigherRated always advances the higher rated entrant, the first listed on
// equal ratings.
func HigherRated() bitbracket.Matchup[Entrant] {
	return func(a, b Entrant) int {
		if effectiveRating(b) > effectiveRating(a) {
			return 1
		}
		return 0
	}
}
