/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bcc

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mikeb26/bitbracket/internal"
)

// GetEntries returns the current registrations for eventID. The JSON api is
// preferred; when it fails the public entries page is scraped instead.
func (c *Client) GetEntries(ctx context.Context, eventID int64) ([]Entry,
	error) {

	detail, apiErr := c.GetEventDetail(ctx, eventID)
	if apiErr == nil && len(detail.Entries) > 0 {
		return detail.Entries, nil
	}

	entries, webErr := c.getEntriesViaWeb(ctx, eventID)
	if webErr != nil {
		if apiErr != nil {
			return nil, apiErr
		}
		return nil, webErr
	}
	if apiErr != nil {
		log.Printf("bcc.entries: api failed for event %v, using website: %v",
			eventID, apiErr)
	}

	return entries, nil
}

func (c *Client) getEntriesViaWeb(ctx context.Context, eventID int64) ([]Entry,
	error) {

	url := fmt.Sprintf("%v/tournament/entries/%d", webBase, eventID)
	doc, err := c.fetchDoc(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch entries page: %w", err)
	}

	entries := parseEntries(doc)
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries found at %v", url)
	}

	return entries, nil
}

// entryColumns locates the entries table columns. The default layout is
// "#, Name, Rating, USCF ID" with no section column.
type entryColumns struct {
	name, rating, uscfID, section int
}

func parseEntryColumns(doc *goquery.Document) entryColumns {
	cols := entryColumns{name: 1, rating: 2, uscfID: 3, section: -1}

	doc.Find("table#members thead th").Each(func(i int, s *goquery.Selection) {
		switch strings.ToLower(strings.TrimSpace(s.Text())) {
		case "name", "player":
			cols.name = i
		case "rating":
			cols.rating = i
		case "uscf id", "uscf":
			cols.uscfID = i
		case "section":
			cols.section = i
		}
	})

	return cols
}

// parseEntries extracts Entry rows from the members table in the document.
func parseEntries(doc *goquery.Document) []Entry {
	cols := parseEntryColumns(doc)
	minCells := max(cols.name, cols.rating, cols.uscfID, cols.section) + 1

	var entries []Entry
	doc.Find("table#members tbody tr").Each(func(_ int, s *goquery.Selection) {
		cells := s.Find("td")
		if cells.Length() < minCells {
			return
		}

		name := internal.NormalizeName(cells.Eq(cols.name).Text())
		if name == "" {
			return
		}
		e := Entry{
			PrimaryRating: strings.TrimSpace(cells.Eq(cols.rating).Text()),
		}
		e.UscfID, _ = strconv.Atoi(strings.TrimSpace(cells.Eq(cols.uscfID).Text()))
		if cols.section >= 0 {
			e.SectionName = strings.TrimSpace(cells.Eq(cols.section).Text())
		}
		parts := strings.Fields(name)
		e.FirstName = parts[0]
		if len(parts) > 1 {
			e.LastName = strings.Join(parts[1:], " ")
		}

		entries = append(entries, e)
	})

	return entries
}

// Sections returns the distinct section names among entries in display order.
func Sections(entries []Entry) []string {
	seen := make(map[string]bool)
	var sections []string
	for _, e := range entries {
		if !seen[e.SectionName] {
			seen[e.SectionName] = true
			sections = append(sections, e.SectionName)
		}
	}
	SortSections(sections)

	return sections
}
