/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// NormalizeName title-cases each word of a player name ("SMITH, JOHN" style
// registrations included) and collapses runs of whitespace.
func NormalizeName(s string) string {
	s = strings.TrimSpace(s)
	if first, last, ok := strings.Cut(s, ","); ok {
		s = strings.TrimSpace(last) + " " + strings.TrimSpace(first)
	}

	parts := strings.Fields(s)
	for i, p := range parts {
		r := []rune(strings.ToLower(p))
		r[0] = unicode.ToUpper(r[0])
		parts[i] = string(r)
	}

	return strings.Join(parts, " ")
}
