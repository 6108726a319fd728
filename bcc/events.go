/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bcc

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/mikeb26/bitbracket/internal"
)

// vended by https://beta.boylstonchess.org/api/events
// Event represents a summary of an event on the club calendar
type Event struct {
	EventID     int64     `json:"eventId"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	DayOfWeek   string    `json:"dayOfWeek"`
	DateDisplay string    `json:"dateDisplay"`
}

// GetEvents fetches the club calendar.
func (c *Client) GetEvents(ctx context.Context) ([]Event, error) {
	resp, err := c.get(ctx, apiBase+"/events")
	if err != nil {
		return nil, fmt.Errorf("unable to fetch bcc events: %w", err)
	}
	defer resp.Body.Close()

	var events []Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("unable to parse bcc events: %w", err)
	}

	return events, nil
}

// EventsBetween returns the events dated within [start, end] ordered by
// date.
func EventsBetween(events []Event, start, end time.Time) []Event {
	var selected []Event
	for _, ev := range events {
		if ev.Date.Before(start) || ev.Date.After(end) {
			continue
		}
		selected = append(selected, ev)
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Date.Before(selected[j].Date)
	})

	return selected
}

// Custom unmarshaller to handle non-RFC3339 timestamps, "null", and empty strings.
func (e *Event) UnmarshalJSON(data []byte) error {
	type Alias Event
	aux := &struct {
		Date string `json:"date"`
		*Alias
	}{
		Alias: (*Alias)(e),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("Event unmarshal: %w", err)
	}
	var err error
	e.Date, err = internal.ParseDateOrZero(aux.Date)
	if err != nil {
		return fmt.Errorf("parsing Event.Date: %w", err)
	}
	return nil
}
