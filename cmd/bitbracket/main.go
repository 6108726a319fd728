/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mikeb26/bitbracket/bcc"
	"github.com/mikeb26/bitbracket/bitbracket"
	"github.com/mikeb26/bitbracket/field"
	"github.com/mikeb26/bitbracket/report"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":      handleHelp,
	"events":    handleEvents,
	"field":     handleField,
	"simulate":  handleSimulate,
	"translate": handleTranslate,
	"champion":  handleChampion,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

func handleEvents(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	days := fs.Int("days", 14, "Number of days to retrieve (1-60)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	// enforce bounds
	if *days < 1 {
		*days = 1
	} else if *days > 60 {
		*days = 60
	}

	now := time.Now()
	events, err := bcc.NewClient(ctx).GetEvents(ctx)
	if err != nil {
		log.Fatalf("Error fetching events: %v", err)
	}
	upcoming := bcc.EventsBetween(events, now, now.AddDate(0, 0, *days))
	if len(upcoming) == 0 {
		fmt.Printf("No events found in the next %d days.\n", *days)
		return
	}

	lastDate := ""
	for _, ev := range upcoming {
		if d := ev.Date.Format("2006-01-02"); d != lastDate {
			fmt.Println(d)
			lastDate = d
		}
		fmt.Printf("  - %s (EventID:%d)\n", ev.Title, ev.EventID)
	}
	fmt.Printf("\nRun '%s field --eventid <EventID> --section <Section>' to see an event's field\n",
		os.Args[0])
}

func handleField(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("field", flag.ExitOnError)
	sel := addFieldFlags(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	entrants, err := sel.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fs.Usage()
		os.Exit(1)
	}
	fmt.Print(report.BuildFieldOutput(entrants))
}

func handleSimulate(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	sel := addFieldFlags(fs)
	n := fs.Int("n", bitbracket.DefaultN, "Number of tournaments to simulate")
	workers := fs.Int("workers", 0, "Concurrent simulation workers (default GOMAXPROCS)")
	seed := fs.Uint64("seed", 0, "Random seed for a reproducible run (default random)")
	show := fs.Int("show", 5, "Number of most common brackets to show")
	chalk := fs.Bool("chalk", false, "Higher rated player always wins instead of Elo odds")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	entrants, err := sel.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fs.Usage()
		os.Exit(1)
	}

	var tally bitbracket.Tally
	if *chalk {
		tally, err = bitbracket.Simulate(entrants, field.HigherRated(), *n)
	} else {
		opts := []bitbracket.Option{bitbracket.WithWorkers(*workers)}
		if isFlagSet(fs, "seed") {
			opts = append(opts, bitbracket.WithSeed(*seed))
		}
		tally, err = bitbracket.SimulateProb(ctx, entrants, field.EloWinProb(),
			*n, opts...)
	}
	if err != nil {
		log.Fatalf("Error simulating tournament: %v", err)
	}

	fmt.Print(report.BuildFieldOutput(entrants))
	fmt.Println()
	odds, err := report.BuildChampionOddsOutput(tally, entrants)
	if err != nil {
		log.Fatalf("Error building odds: %v", err)
	}
	fmt.Print(odds)
	fmt.Println()
	top, err := report.BuildTopOutput(tally, entrants, *show)
	if err != nil {
		log.Fatalf("Error building top brackets: %v", err)
	}
	fmt.Print(top)

	if best := tally.MostCommon(1); len(best) == 1 {
		out, err := report.BuildBracketOutput(best[0].Bitbracket, entrants)
		if err != nil {
			log.Fatalf("Error building bracket: %v", err)
		}
		fmt.Printf("\nMost likely bracket (%d):\n%s", best[0].Bitbracket, out)
	}
	fmt.Printf("\nRun '%s translate --bb <Bitbracket>' with the same field options to view another bracket\n",
		os.Args[0])
}

func handleTranslate(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("translate", flag.ExitOnError)
	sel := addFieldFlags(fs)
	bbText := fs.String("bb", "", "Bitbracket to decode (decimal, 0b or 0x prefixed)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	bb, entrants := loadBracketArgs(ctx, fs, sel, *bbText)
	out, err := report.BuildBracketOutput(bb, entrants)
	if err != nil {
		log.Fatalf("Error translating bitbracket %v: %v", bb, err)
	}
	fmt.Print(out)
}

func handleChampion(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("champion", flag.ExitOnError)
	sel := addFieldFlags(fs)
	bbText := fs.String("bb", "", "Bitbracket to decode (decimal, 0b or 0x prefixed)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	bb, entrants := loadBracketArgs(ctx, fs, sel, *bbText)
	champion, err := bitbracket.Champion(bb, entrants)
	if err != nil {
		log.Fatalf("Error decoding bitbracket %v: %v", bb, err)
	}
	fmt.Println(champion)
}

func loadBracketArgs(ctx context.Context, fs *flag.FlagSet, sel *fieldFlags,
	bbText string) (bitbracket.Bitbracket, []field.Entrant) {

	if bbText == "" {
		fmt.Fprintln(os.Stderr, "Please provide a --bb bitbracket.")
		fs.Usage()
		os.Exit(1)
	}
	bb, err := bitbracket.Parse(bbText)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	entrants, err := sel.load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		fs.Usage()
		os.Exit(1)
	}

	return bb, entrants
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
