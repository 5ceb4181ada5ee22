package sitecheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRobotsDisallowsAll(t *testing.T) {
	tests := []struct {
		name   string
		robots string
		want   bool
	}{
		{"empty", "", false},
		{"blanket disallow", "User-agent: *\nDisallow: /", true},
		{"case insensitive directives", "USER-AGENT: *\nDISALLOW: /", true},
		{"partial disallow", "User-agent: *\nDisallow: /admin", false},
		{"disallow for one bot only", "User-agent: GPTBot\nDisallow: /", false},
		{"wildcard group after specific one", "User-agent: GPTBot\nDisallow: /private\n\nUser-agent: *\nDisallow: /", true},
		{"comment stripped", "User-agent: *\nDisallow: / # block everything", true},
		{"allow all", "User-agent: *\nDisallow:", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, robotsDisallowsAll(tt.robots))
		})
	}
}

func TestHasStructuredData(t *testing.T) {
	withJSONLD := `<html><head><script type="application/ld+json">{"@type":"Organization"}</script></head></html>`
	assert.True(t, hasStructuredData(withJSONLD))

	assert.False(t, hasStructuredData(`<html><head><script src="app.js"></script></head></html>`))
	assert.False(t, hasStructuredData(""))
}

func TestLatencyBucket(t *testing.T) {
	assert.Equal(t, latencyFast, latencyBucket(100*time.Millisecond, true))
	assert.Equal(t, latencyModerate, latencyBucket(900*time.Millisecond, true))
	assert.Equal(t, latencySlow, latencyBucket(3*time.Second, true))
	assert.Empty(t, latencyBucket(100*time.Millisecond, false))
}

func TestNormalizeURL(t *testing.T) {
	base, err := normalizeURL("example.com/pricing?utm=1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/", base.String())

	base, err = normalizeURL("http://example.com")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/", base.String())

	_, err = normalizeURL("://bad")
	assert.Error(t, err)
}

func TestCheck_DerivesSignalsFromLiveServer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head><script type="application/ld+json">{}</script></head></html>`))
	})
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("User-agent: *\nDisallow: /admin\n"))
	})
	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	result, err := NewChecker().Check(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.True(t, result.Homepage)
	assert.True(t, result.RobotsFound)
	assert.False(t, result.Sitemap)
	assert.True(t, result.Signals.CrawlerAccessible)
	assert.True(t, result.Signals.StructuredDataPresent)
	assert.Equal(t, latencyFast, result.Signals.ResponseLatency)
}

func TestCheck_BlockedSiteIsNotCrawlerAccessible(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html></html>"))
	})
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("User-agent: *\nDisallow: /\n"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	result, err := NewChecker().Check(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.True(t, result.Homepage)
	assert.False(t, result.Signals.CrawlerAccessible)
	assert.False(t, result.Signals.StructuredDataPresent)
}

func TestCheck_UnreachableHostDegradesSignals(t *testing.T) {
	// A host that refuses connections yields empty signals, not an error.
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	result, err := NewChecker().Check(context.Background(), url)

	require.NoError(t, err)
	assert.False(t, result.Homepage)
	assert.False(t, result.Signals.CrawlerAccessible)
	assert.Empty(t, result.Signals.ResponseLatency)
}
