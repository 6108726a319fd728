/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package report renders brackets and simulation tallies as plain text
// suitable for a terminal or a chat message.
package report

import (
	"fmt"
	"strings"

	"github.com/mikeb26/bitbracket/bitbracket"
	"github.com/mikeb26/bitbracket/field"
)

// RoundName returns the conventional name of round r (1-based) of a
// tournament with numRounds rounds.
func RoundName(r, numRounds int) string {
	switch numRounds - r {
	case 0:
		return "Final"
	case 1:
		return "Semifinals"
	case 2:
		return "Quarterfinals"
	}
	return fmt.Sprintf("Round %d", r)
}

// indexField returns []int{0, 1, ..., numTeams-1}. Decoding a bitbracket over
// indices lets the renderers tell winners from losers without requiring
// comparable competitors.
func indexField(numTeams int) []int {
	field := make([]int, numTeams)
	for i := range field {
		field[i] = i
	}
	return field
}

// BuildBracketOutput lists every match of the tournament recorded by bb,
// round by round, followed by the champion.
func BuildBracketOutput[T any](bb bitbracket.Bitbracket, teams []T) (string,
	error) {

	rounds, err := bitbracket.Translate(bb, indexField(len(teams)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	numRounds := len(rounds) - 1
	for r := 1; r <= numRounds; r++ {
		prev, next := rounds[r-1], rounds[r]
		sb.WriteString(fmt.Sprintf("%s\n", RoundName(r, numRounds)))

		rows := make([][]string, 0, len(next))
		for i, winner := range next {
			loser := prev[2*i]
			if loser == winner {
				loser = prev[2*i+1]
			}
			rows = append(rows, []string{fmt.Sprint(teams[winner]), "def.",
				fmt.Sprint(teams[loser])})
		}
		writeTable(&sb, "  ", nil, rows)
	}
	sb.WriteString(fmt.Sprintf("Champion: %v\n", teams[rounds.Champion()]))

	return sb.String(), nil
}

// BuildTopOutput lists the k most common bitbrackets of tally with their
// share of all simulations and their champion.
func BuildTopOutput[T any](tally bitbracket.Tally, teams []T, k int) (string,
	error) {

	field := indexField(len(teams))
	if err := bitbracket.ValidateTeams(field); err != nil {
		return "", err
	}

	total := tally.Total()
	var rows [][]string
	for i, c := range tally.MostCommon(k) {
		champion, err := bitbracket.Champion(c.Bitbracket, field)
		if err != nil {
			return "", err
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", c.Bitbracket),
			fmt.Sprintf("%d", c.N),
			share(c.N, total),
			fmt.Sprint(teams[champion]),
		})
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Most common brackets (%d simulations, %d distinct):\n",
		total, len(tally)))
	writeTable(&sb, "", []string{"#", "Bitbracket", "Count", "Share",
		"Champion"}, rows)

	return sb.String(), nil
}

// BuildChampionOddsOutput lists every entrant that won at least one
// simulated tournament with its share of titles.
func BuildChampionOddsOutput[T any](tally bitbracket.Tally, teams []T) (string,
	error) {

	champions, err := tally.Champions(len(teams))
	if err != nil {
		return "", err
	}

	total := tally.Total()
	rows := make([][]string, 0, len(champions))
	for _, c := range champions {
		rows = append(rows, []string{fmt.Sprint(teams[c.Index]),
			fmt.Sprintf("%d", c.N), share(c.N, total)})
	}

	var sb strings.Builder
	sb.WriteString("Championship odds:\n")
	writeTable(&sb, "", []string{"Player", "Titles", "Share"}, rows)

	return sb.String(), nil
}

// BuildFieldOutput lists entrants in bracket order; slots 1 and 2 meet in
// the first round, then 3 and 4, and so on.
func BuildFieldOutput(entrants []field.Entrant) string {
	rows := make([][]string, 0, len(entrants))
	for i, e := range entrants {
		rating := "unrated"
		if e.Rating > 0 {
			rating = fmt.Sprintf("%d", e.Rating)
		}
		rows = append(rows, []string{fmt.Sprintf("%d", i+1), e.Name, rating,
			e.Section})
	}

	var sb strings.Builder
	writeTable(&sb, "", []string{"Slot", "Name", "Rating", "Section"}, rows)

	return sb.String()
}

func share(n, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(n)/float64(total))
}

// writeTable writes rows as left-aligned columns separated by two spaces.
func writeTable(sb *strings.Builder, indent string, header []string,
	rows [][]string) {

	var widths []int
	measure := func(row []string) {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if l := len(cell); l > widths[i] {
				widths[i] = l
			}
		}
	}
	if header != nil {
		measure(header)
	}
	for _, row := range rows {
		measure(row)
	}

	write := func(row []string) {
		sb.WriteString(indent)
		for i, cell := range row {
			if i == len(row)-1 {
				sb.WriteString(cell)
			} else {
				sb.WriteString(fmt.Sprintf("%-*s  ", widths[i], cell))
			}
		}
		sb.WriteString("\n")
	}
	if header != nil {
		write(header)
	}
	for _, row := range rows {
		write(row)
	}
}
