/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package uschess

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

type rewriteHostRoundTripper struct {
	base *url.URL
	up   http.RoundTripper
}

func (rt rewriteHostRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone request and rewrite the destination to the test server.
	req2 := req.Clone(req.Context())
	u := *req.URL
	u.Scheme = rt.base.Scheme
	u.Host = rt.base.Host
	req2.URL = &u
	return rt.up.RoundTrip(req2)
}

func newTestClient(t *testing.T, members map[string]string) *Client {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/v1/members/")
		body, ok := members[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)

	base, err := url.Parse(ts.URL)
	if err != nil {
		t.Fatalf("parsing test server url: %v", err)
	}
	return NewClientWithHTTP(&http.Client{
		Transport: rewriteHostRoundTripper{base: base, up: http.DefaultTransport},
	})
}

var testMembers = map[string]string{
	"1": `{"id":"1","firstName":"ANDREW","lastName":"HOY",
		"ratings":[{"rating":2210,"ratingSystem":"R"},{"rating":2150,"ratingSystem":"Q"},{"rating":0,"ratingSystem":"B"}]}`,
	"2": `{"id":"2","firstName":"b","lastName":"opp",
		"ratings":[{"rating":1500,"ratingSystem":"R"}]}`,
	"3": `{"id":"3","firstName":"New","lastName":"Player",
		"ratings":[{"rating":0,"ratingSystem":"R"}]}`,
}

func TestFetchPlayer(t *testing.T) {
	client := newTestClient(t, testMembers)

	p, err := client.FetchPlayer(context.Background(), 1)
	if err != nil {
		t.Fatalf("FetchPlayer returned error: %v", err)
	}
	if p.Name != "Andrew Hoy" {
		t.Errorf("expected name 'Andrew Hoy', got %q", p.Name)
	}
	if r, ok := p.Rating(Regular); !ok || r != 2210 {
		t.Errorf("expected regular rating 2210, got %v (%v)", r, ok)
	}
	if r, ok := p.Rating(Quick); !ok || r != 2150 {
		t.Errorf("expected quick rating 2150, got %v (%v)", r, ok)
	}
	if _, ok := p.Rating(Blitz); ok {
		t.Errorf("expected no blitz rating")
	}
}

func TestFetchPlayer_NotFound(t *testing.T) {
	client := newTestClient(t, testMembers)

	if _, err := client.FetchPlayer(context.Background(), 99); err == nil {
		t.Fatalf("expected error")
	}
}

func TestFetchRatings(t *testing.T) {
	client := newTestClient(t, testMembers)

	ratings, err := client.FetchRatings(context.Background(), []MemID{1, 2, 3},
		Regular)
	if err != nil {
		t.Fatalf("FetchRatings returned error: %v", err)
	}
	if len(ratings) != 2 || ratings[1] != 2210 || ratings[2] != 1500 {
		t.Errorf("unexpected ratings %v", ratings)
	}

	if _, err := client.FetchRatings(context.Background(), []MemID{1, 42},
		Regular); err == nil {
		t.Errorf("expected error for unknown member")
	}
}

func TestExpectedScore(t *testing.T) {
	if got := ExpectedScore(1500, 1500); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("equal ratings: got %v want 0.5", got)
	}
	// 400 points is a 10:1 edge
	if got := ExpectedScore(1900, 1500); math.Abs(got-10.0/11.0) > 1e-12 {
		t.Errorf("400 point edge: got %v want %v", got, 10.0/11.0)
	}
	a, b := ExpectedScore(2210, 1830), ExpectedScore(1830, 2210)
	if math.Abs(a+b-1) > 1e-12 {
		t.Errorf("expected scores should sum to 1, got %v + %v", a, b)
	}
}
