/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/mikeb26/bitbracket/bcc"
	"github.com/mikeb26/bitbracket/field"
	"github.com/mikeb26/bitbracket/uschess"
)

// this program exists just to seed the http cache with the ratings of the
// entrants of upcoming events

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %v <eventid> [eventid...]\n", os.Args[0])
		os.Exit(1)
	}

	ctx := context.Background()
	bccClient := bcc.NewClient(ctx)
	uscfClient := uschess.NewClient(ctx)

	for _, arg := range os.Args[1:] {
		eventID, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			log.Printf("cacheseed: skipping invalid event id %q", arg)
			continue
		}
		entries, err := bccClient.GetEntries(ctx, eventID)
		if err != nil {
			// best effort
			log.Printf("cacheseed: event %v: %v", eventID, err)
			continue
		}

		for _, e := range field.FromEntries(entries, "") {
			if e.UscfID == 0 {
				continue
			}
			player, err := uscfClient.FetchPlayer(ctx, e.UscfID)
			time.Sleep(2 * time.Second) // avoid pegging uschess.org
			if err != nil {
				// best effort
				continue
			}

			fmt.Printf("seeded %v player data\n", player.Name)
		}
		fmt.Printf("seeded ev:%v\n", eventID)
	}
}
