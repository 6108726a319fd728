/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/mikeb26/bitbracket/bcc"
	"github.com/mikeb26/bitbracket/bitbracket"
	"github.com/mikeb26/bitbracket/field"
	"github.com/mikeb26/bitbracket/uschess"
)

// fieldFlags selects the competitors shared by every command.
type fieldFlags struct {
	file      *string
	teams     *string
	eventID   *int
	section   *string
	top       *int
	refresh   *bool
	keepOrder *bool
}

func addFieldFlags(fs *flag.FlagSet) *fieldFlags {
	return &fieldFlags{
		file:      fs.String("file", "", "JSON or YAML file listing the entrants"),
		teams:     fs.String("teams", "", "Comma separated entrants, e.g. \"Hoy:2210,Brown:1559\""),
		eventID:   fs.Int("eventid", 0, "Boylston Chess Club event whose entrants form the field"),
		section:   fs.String("section", "", "Section of --eventid to use"),
		top:       fs.Int("top", 0, "Keep only the N highest rated entrants"),
		refresh:   fs.Bool("refresh", false, "Replace ratings with current USCF regular ratings"),
		keepOrder: fs.Bool("keep-order", false, "Use the listed order instead of seeding by rating"),
	}
}

var errNoField = errors.New("exactly one of --file, --teams or --eventid is required")

// load builds the field in bracket order.
func (ff *fieldFlags) load(ctx context.Context) ([]field.Entrant, error) {
	sources := 0
	for _, set := range []bool{*ff.file != "", *ff.teams != "", *ff.eventID > 0} {
		if set {
			sources++
		}
	}
	if sources != 1 {
		return nil, errNoField
	}

	var entrants []field.Entrant
	var err error
	switch {
	case *ff.file != "":
		entrants, err = field.LoadFile(*ff.file)
	case *ff.teams != "":
		entrants, err = field.ParseList(*ff.teams)
	default:
		entrants, err = field.FromEvent(ctx, bcc.NewClient(ctx),
			int64(*ff.eventID), *ff.section)
	}
	if err != nil {
		return nil, err
	}

	if *ff.refresh {
		entrants, err = field.RefreshRatings(ctx, uschess.NewClient(ctx), entrants)
		if err != nil {
			return nil, err
		}
	}

	if *ff.keepOrder {
		entrants = field.TopInOrder(entrants, *ff.top)
		if err := bitbracket.ValidateTeams(entrants); err != nil {
			return nil, fmt.Errorf("invalid field: %w", err)
		}
		return entrants, nil
	}

	return field.Seed(field.Top(entrants, *ff.top))
}
