/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package uschess

import (
	"context"
	"net/http"
	"time"

	"github.com/mikeb26/bitbracket/internal"
)

const ratingsAPI = "https://ratings-api.uschess.org/api/v1"

// Client talks to the US Chess ratings api through an S3-backed http cache.
// Member profiles change at most once per rating supplement, so a day of
// staleness is acceptable.
type Client struct {
	httpClient *http.Client
}

func NewClient(ctx context.Context) *Client {
	return &Client{
		httpClient: internal.NewCachedHttpClient(ctx, 24*time.Hour),
	}
}

// NewClientWithHTTP returns a Client using hc for every request.
func NewClientWithHTTP(hc *http.Client) *Client {
	return &Client{httpClient: hc}
}
