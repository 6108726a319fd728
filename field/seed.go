/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package field

// StandardBracketSeeds returns the seed assignments for each slot in a standard
// single-elimination bracket: 1 meets bracketSize in the first round, and the
// top two seeds can only meet in the final.
func StandardBracketSeeds(bracketSize int) []int {
	seeds := make([]int, bracketSize)
	seeds[0] = 1
	for size := 2; size <= bracketSize; size *= 2 {
		temp := make([]int, size)
		for i := 0; i < size/2; i++ {
			temp[i*2] = seeds[i]
			temp[i*2+1] = size + 1 - seeds[i]
		}
		copy(seeds, temp)
	}
	return seeds
}

// Seed places entrants into standard bracket order by rating. The field
// must be a power of two.
func Seed(entrants []Entrant) ([]Entrant, error) {
	if err := validate(entrants); err != nil {
		return nil, err
	}

	ranked := ByRating(entrants)
	seeded := make([]Entrant, len(ranked))
	for slot, seed := range StandardBracketSeeds(len(ranked)) {
		seeded[slot] = ranked[seed-1]
	}

	return seeded, nil
}
