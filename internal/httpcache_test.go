/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gregjones/httpcache"
)

func TestCachedClient_EnforcesTTL(t *testing.T) {
	var hits atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		// origin tries to disable caching
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Pragma", "no-cache")
		_, _ = w.Write([]byte(`{"rating":1500}`))
	}))
	defer ts.Close()

	client := newCachedClient(httpcache.NewMemoryCache(), http.DefaultTransport,
		time.Hour)

	for i := 0; i < 3; i++ {
		req, err := http.NewRequest("GET", ts.URL+"/api/v1/members/1", nil)
		if err != nil {
			t.Fatalf("NewRequest: %v", err)
		}
		req.Header.Set("User-Agent", UserAgent)
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("Do: %v", err)
		}
		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatalf("failed to read response body: %v", err)
		}
		if string(data) != `{"rating":1500}` {
			t.Errorf("unexpected body %q", data)
		}
		if i > 0 && resp.Header.Get(httpcache.XFromCache) != "1" {
			t.Errorf("request %v: object not cached", i)
		}
	}

	if hits.Load() != 1 {
		t.Errorf("expected 1 origin hit, got %v", hits.Load())
	}
}

func TestHeaderOverrideTransport_RequestHook(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.Header.Get("User-Agent")))
	}))
	defer ts.Close()

	rt := &HeaderOverrideTransport{
		wrappedRT: http.DefaultTransport,
		Request: func(req *http.Request) {
			req.Header.Set("User-Agent", UserAgent)
		},
	}
	orig, err := http.NewRequest("GET", ts.URL, nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	resp, err := rt.RoundTrip(orig)
	if err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	if string(data) != UserAgent {
		t.Errorf("expected user agent %q, got %q", UserAgent, data)
	}
	if orig.Header.Get("User-Agent") != "" {
		t.Errorf("caller's request was modified")
	}
}
