/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bitbracket

import (
	"errors"
	"reflect"
	"testing"
)

func TestTally_MostCommon(t *testing.T) {
	tally := Tally{0b101: 3, 0b000: 7, 0b111: 3, 0b010: 1}

	got := tally.MostCommon(3)
	want := []Count{{0b000, 7}, {0b101, 3}, {0b111, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MostCommon(3) = %v; want %v", got, want)
	}

	if all := tally.MostCommon(0); len(all) != 4 {
		t.Errorf("MostCommon(0) returned %v entries; want 4", len(all))
	}
	if all := tally.MostCommon(10); len(all) != 4 {
		t.Errorf("MostCommon(10) returned %v entries; want 4", len(all))
	}
}

func TestTally_MergeAndTotal(t *testing.T) {
	a := Tally{1: 2, 2: 3}
	b := Tally{2: 1, 3: 4}
	a.Merge(b)
	a.Add(1)

	want := Tally{1: 3, 2: 4, 3: 4}
	if !reflect.DeepEqual(a, want) {
		t.Errorf("got %v want %v", a, want)
	}
	if a.Total() != 11 {
		t.Errorf("Total() = %v; want 11", a.Total())
	}
}

func TestTally_Champions(t *testing.T) {
	// 0b000 -> team 0, 0b111 -> team 3, 0b100 -> team 2, 0b001 -> team 1
	tally := Tally{0b000: 5, 0b111: 2, 0b100: 2, 0b001: 1, 0b011: 1}

	got, err := tally.Champions(4)
	if err != nil {
		t.Fatalf("Champions returned error: %v", err)
	}
	// 0b011: team 1 beats 0, team 3 beats 2, then 1 beats 3
	want := []ChampionCount{{0, 5}, {1, 2}, {2, 2}, {3, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Champions(4) = %v; want %v", got, want)
	}

	if _, err := tally.Champions(3); !errors.Is(err, ErrValue) {
		t.Errorf("expected ErrValue, got %v", err)
	}
}
