/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bcc

import (
	"sort"
	"strconv"
	"strings"
)

// RatingFromString parses a registration rating such as "1559", "559/24"
// (rating/games for provisional players) or "unrated". Anything unparseable
// is treated as unrated (0).
func RatingFromString(rating string) int {
	r := 0
	if rating != "" {
		if idx := strings.Index(rating, "/"); idx != -1 {
			rating = rating[:idx]
		}
		if v, err := strconv.Atoi(strings.TrimSpace(rating)); err == nil {
			r = v
		}
	}

	return r
}

// SectionSorter implements sort.Interface for custom section ordering
// Order: "Open" first, then "Championship", then U<Number> sections descending
// by number, then others lexicographically
type SectionSorter []string

func (s SectionSorter) Len() int { return len(s) }

func (s SectionSorter) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s SectionSorter) Less(i, j int) bool {
	a, b := s[i], s[j]
	for _, first := range []string{"Open", "Championship"} {
		if a == first && b != first {
			return true
		}
		if b == first && a != first {
			return false
		}
	}
	ua, ub := strings.HasPrefix(a, "U"), strings.HasPrefix(b, "U")
	if ua && ub {
		ai, errA := strconv.Atoi(strings.TrimPrefix(a, "U"))
		bi, errB := strconv.Atoi(strings.TrimPrefix(b, "U"))
		if errA == nil && errB == nil {
			return ai > bi
		}
	}
	// U-sections before everything else
	if ua != ub {
		return ua
	}
	return a < b
}

func SortSections(sections []string) {
	sort.Sort(SectionSorter(sections))
}
