/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package uschess

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/bitbracket/internal"
)

type MemID int

type RatingSystem string

const (
	Regular RatingSystem = "R"
	Quick   RatingSystem = "Q"
	Blitz   RatingSystem = "B"
)

// Player holds the published ratings of a USCF member. Systems in which the
// member is unrated are absent from Ratings.
type Player struct {
	MemberID MemID
	Name     string
	Ratings  map[RatingSystem]int
}

// Rating returns the member's rating in sys and whether one exists.
func (p *Player) Rating(sys RatingSystem) (int, bool) {
	r, ok := p.Ratings[sys]
	return r, ok
}

// apiMemberResponse represents the JSON response from the member API endpoint
type apiMemberResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Ratings   []struct {
		Rating       int    `json:"rating"`
		RatingSystem string `json:"ratingSystem"`
	} `json:"ratings"`
}

// FetchPlayer retrieves the member profile for memberID from the ratings api.
func (client *Client) FetchPlayer(ctx context.Context,
	memberID MemID) (*Player, error) {

	url := fmt.Sprintf("%v/members/%v", ratingsAPI, memberID)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating profile request: %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing profile HTTP GET: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected profile status %d for member %v: %s",
			resp.StatusCode, memberID, string(body))
	}

	var memberData apiMemberResponse
	if err := json.NewDecoder(resp.Body).Decode(&memberData); err != nil {
		return nil, fmt.Errorf("decoding profile JSON for member %v: %w",
			memberID, err)
	}

	player := &Player{
		MemberID: memberID,
		Name: internal.NormalizeName(memberData.FirstName + " " +
			memberData.LastName),
		Ratings: make(map[RatingSystem]int),
	}
	for _, rating := range memberData.Ratings {
		// the api reports unrated systems as 0
		if rating.Rating == 0 {
			continue
		}
		player.Ratings[RatingSystem(rating.RatingSystem)] = rating.Rating
	}

	return player, nil
}

// FetchRatings looks up every member in memberIDs concurrently and returns
// their current rating in sys. Members unrated in sys are omitted from the
// result; any failed lookup fails the whole call.
func (client *Client) FetchRatings(ctx context.Context, memberIDs []MemID,
	sys RatingSystem) (map[MemID]int, error) {

	var mu sync.Mutex
	ratings := make(map[MemID]int)

	g, ctx := errgroup.WithContext(ctx)
	// be polite to uschess.org
	g.SetLimit(8)

	for _, id := range memberIDs {
		g.Go(func() error {
			p, err := client.FetchPlayer(ctx, id)
			if err != nil {
				return err
			}
			if r, ok := p.Rating(sys); ok {
				mu.Lock()
				ratings[id] = r
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ratings, nil
}
