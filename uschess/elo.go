/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

package uschess

import "math"

// ExpectedScore returns the expected score of a player rated myRating
// against one rated oppRating, per the US Chess rating system:
//
//	1/(exp(ln(10)*((opp-my)/400))+1) == 1/(10^((opp-my)/400)+1)
//
// In a knockout with no draws this is the probability that the first player
// advances.
func ExpectedScore(myRating float64, oppRating float64) float64 {
	exp := math.Pow(10, (oppRating-myRating)/400.0)
	return 1.0 / (exp + 1.0)
}
