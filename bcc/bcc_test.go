/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bcc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"
	"time"
)

type rewriteHostRoundTripper struct {
	base *url.URL
	up   http.RoundTripper
}

func (rt rewriteHostRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	u := *req.URL
	u.Scheme = rt.base.Scheme
	u.Host = rt.base.Host
	req2.URL = &u
	return rt.up.RoundTrip(req2)
}

const eventJSON = `{
	"eventId": 1312,
	"title": "Big Money Swiss",
	"startDate": "2025-06-14T10:00:00",
	"endDate": "null",
	"sections": ["Open", "U1800"],
	"numEntries": 3,
	"entries": [
		{"firstName":"Andrew","lastName":"Hoy","uscfId":12846607,"sectionName":"Open","primaryRating":"2210","registrationDate":"2025-06-01T08:00:00"},
		{"firstName":"Michael","lastName":"Brown","uscfId":12689073,"sectionName":"U1800","primaryRating":"1559/24","registrationDate":""},
		{"firstName":"New","lastName":"Player","uscfId":0,"sectionName":"U1800","primaryRating":"unrated"}
	]
}`

const eventsJSON = `[
	{"eventId": 1320, "title": "Thursday Night Blitz", "date": "2025-06-19T19:00:00", "dayOfWeek": "Thursday"},
	{"eventId": 1312, "title": "Big Money Swiss", "date": "2025-06-14T10:00:00", "dayOfWeek": "Saturday"},
	{"eventId": 1290, "title": "Spring Knockout", "date": "null"}
]`

const entriesHTML = `<html><body>
<table id="members">
<thead><tr><th>#</th><th>Name</th><th>Rating</th><th>USCF ID</th><th>Section</th></tr></thead>
<tbody>
<tr><td>1</td><td>ANDREW HOY</td><td>2210</td><td>12846607</td><td>Open</td></tr>
<tr><td>2</td><td>jane q public</td><td>1840</td><td>30000001</td><td>Open</td></tr>
<tr><td>3</td><td></td><td></td><td></td><td></td></tr>
<tr><td>4</td><td>short row</td></tr>
</tbody>
</table>
</body></html>`

func newTestClient(t *testing.T) *Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/event/1312", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(eventJSON))
	})
	mux.HandleFunc("/api/events", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(eventsJSON))
	})
	mux.HandleFunc("/api/event/77", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/tournament/entries/77", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(entriesHTML))
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	base, err := url.Parse(ts.URL)
	if err != nil {
		t.Fatalf("parsing test server url: %v", err)
	}
	return NewClientWithHTTP(&http.Client{
		Transport: rewriteHostRoundTripper{base: base, up: http.DefaultTransport},
	})
}

func TestGetEventDetail(t *testing.T) {
	client := newTestClient(t)

	detail, err := client.GetEventDetail(context.Background(), 1312)
	if err != nil {
		t.Fatalf("GetEventDetail returned error: %v", err)
	}
	if detail.EventID != 1312 || detail.Title != "Big Money Swiss" {
		t.Errorf("unexpected detail %+v", detail)
	}
	if detail.StartDate.IsZero() {
		t.Error("expected StartDate to be non-zero")
	}
	if !detail.EndDate.IsZero() {
		t.Error("expected EndDate to be zero")
	}
	if len(detail.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %v", len(detail.Entries))
	}
	if detail.Entries[0].RegistrationDate.IsZero() {
		t.Error("expected RegistrationDate to be parsed")
	}
	if detail.Entries[1].DisplayName() != "Michael Brown" {
		t.Errorf("unexpected display name %q", detail.Entries[1].DisplayName())
	}
}

func TestGetEntries_API(t *testing.T) {
	client := newTestClient(t)

	entries, err := client.GetEntries(context.Background(), 1312)
	if err != nil {
		t.Fatalf("GetEntries returned error: %v", err)
	}
	if len(entries) != 3 || entries[0].UscfID != 12846607 {
		t.Errorf("unexpected entries %+v", entries)
	}
}

func TestGetEntries_WebsiteFallback(t *testing.T) {
	client := newTestClient(t)

	entries, err := client.GetEntries(context.Background(), 77)
	if err != nil {
		t.Fatalf("GetEntries returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %+v", entries)
	}
	want := Entry{FirstName: "Andrew", LastName: "Hoy", UscfID: 12846607,
		SectionName: "Open", PrimaryRating: "2210"}
	if !reflect.DeepEqual(entries[0], want) {
		t.Errorf("got %+v want %+v", entries[0], want)
	}
	if entries[1].DisplayName() != "Jane Q Public" {
		t.Errorf("unexpected display name %q", entries[1].DisplayName())
	}
}

func TestGetEntries_NotFound(t *testing.T) {
	client := newTestClient(t)

	if _, err := client.GetEntries(context.Background(), 5); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRatingFromString(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1559", 1559},
		{"559/24", 559},
		{" 2210 ", 2210},
		{"unrated", 0},
		{"", 0},
		{"abc/123", 0},
	}
	for _, c := range cases {
		if got := RatingFromString(c.in); got != c.want {
			t.Errorf("RatingFromString(%q) = %v; want %v", c.in, got, c.want)
		}
	}
}

func TestSections(t *testing.T) {
	entries := []Entry{
		{SectionName: "U1200"}, {SectionName: "Reserve"}, {SectionName: "Open"},
		{SectionName: "U1800"}, {SectionName: "Championship"}, {SectionName: "Open"},
	}
	got := Sections(entries)
	want := []string{"Open", "Championship", "U1800", "U1200", "Reserve"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sections() = %v; want %v", got, want)
	}
}

func TestGetEvents(t *testing.T) {
	client := newTestClient(t)

	events, err := client.GetEvents(context.Background())
	if err != nil {
		t.Fatalf("GetEvents returned error: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %+v", events)
	}
	if events[0].EventID != 1320 || events[0].Date.IsZero() {
		t.Errorf("unexpected first event %+v", events[0])
	}
	if !events[2].Date.IsZero() {
		t.Errorf("expected a zero date for null, got %v", events[2].Date)
	}

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	got := EventsBetween(events, start, end)
	if len(got) != 2 || got[0].EventID != 1312 || got[1].EventID != 1320 {
		t.Errorf("unexpected events between %v and %v: %+v", start, end, got)
	}
}
