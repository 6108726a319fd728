/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bcc

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mikeb26/bitbracket/internal"
)

const (
	apiBase = "https://beta.boylstonchess.org/api"
	webBase = "https://boylstonchess.org"
)

// Client fetches event registrations from the Boylston Chess Club.
type Client struct {
	httpClient *http.Client
}

// NewClient returns a Client whose responses are cached briefly; entries
// keep changing right up to the start of an event.
func NewClient(ctx context.Context) *Client {
	return &Client{
		httpClient: internal.NewCachedHttpClient(ctx, 10*time.Minute),
	}
}

// NewClientWithHTTP returns a Client using hc for every request.
func NewClientWithHTTP(hc *http.Client) *Client {
	return &Client{httpClient: hc}
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("status %d fetching %s", resp.StatusCode, url)
	}

	return resp, nil
}

// fetchDoc gets the HTML document at the given URL.
func (c *Client) fetchDoc(ctx context.Context, url string) (*goquery.Document,
	error) {

	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return goquery.NewDocumentFromReader(resp.Body)
}
