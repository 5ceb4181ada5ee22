// Package sitecheck probes a customer site to prefill technical signals. The
// probe is best-effort: it measures what a static crawler would see, so no
// browser rendering is involved.
package sitecheck

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/visiblehq/visibility-insights/internal/types"
	"golang.org/x/sync/errgroup"
)

// Latency buckets derived from the homepage response time.
const (
	latencyFast     = "fast"
	latencyModerate = "moderate"
	latencySlow     = "slow"
)

// Result holds the probe outcome alongside the derived signals.
type Result struct {
	Signals     types.TechnicalData `json:"signals"`
	Homepage    bool                `json:"homepage_reachable"`
	RobotsFound bool                `json:"robots_found"`
	Sitemap     bool                `json:"sitemap_found"`
	LatencyMS   int64               `json:"latency_ms"`
}

// Checker probes customer sites.
type Checker struct {
	client *http.Client
}

// NewChecker creates a checker with a bounded HTTP client.
func NewChecker() *Checker {
	return &Checker{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Check fetches the homepage, robots.txt, and sitemap.xml concurrently and
// derives crawler accessibility, structured-data presence, and a latency
// bucket. Individual fetch failures degrade the signals instead of failing
// the probe; only an unusable URL is an error.
func (c *Checker) Check(ctx context.Context, rawURL string) (*Result, error) {
	base, err := normalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	var (
		homepageBody    string
		homepageLatency time.Duration
		homepageOK      bool
		robotsBody      string
		robotsOK        bool
		sitemapOK       bool
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		start := time.Now()
		body, ok := c.fetch(gCtx, base.String())
		homepageLatency = time.Since(start)
		homepageBody, homepageOK = body, ok
		return nil
	})
	g.Go(func() error {
		robotsBody, robotsOK = c.fetch(gCtx, base.ResolveReference(&url.URL{Path: "/robots.txt"}).String())
		return nil
	})
	g.Go(func() error {
		_, sitemapOK = c.fetch(gCtx, base.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String())
		return nil
	})
	_ = g.Wait() // goroutines only record results; no fetch error aborts the probe

	result := &Result{
		Homepage:    homepageOK,
		RobotsFound: robotsOK,
		Sitemap:     sitemapOK,
		LatencyMS:   homepageLatency.Milliseconds(),
	}
	result.Signals = types.TechnicalData{
		CrawlerAccessible:     homepageOK && !robotsDisallowsAll(robotsBody),
		StructuredDataPresent: hasStructuredData(homepageBody),
		ResponseLatency:       latencyBucket(homepageLatency, homepageOK),
	}
	return result, nil
}

// fetch returns the body and whether the request succeeded with a 2xx status.
func (c *Checker) fetch(ctx context.Context, target string) (string, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", false
	}
	req.Header.Set("User-Agent", "visibility-insights-sitecheck/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", false
	}

	// Cap the read; homepages can be arbitrarily large.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return "", false
	}
	return string(body), true
}

func normalizeURL(rawURL string) (*url.URL, error) {
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}
	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid site URL %q: %w", rawURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid site URL %q (must have scheme and host)", rawURL)
	}
	base.Path = "/"
	base.RawQuery = ""
	base.Fragment = ""
	return base, nil
}

// hasStructuredData reports whether the HTML carries JSON-LD structured data.
func hasStructuredData(htmlContent string) bool {
	if htmlContent == "" {
		return false
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return false
	}
	return doc.Find(`script[type="application/ld+json"]`).Length() > 0
}

// robotsDisallowsAll reports whether robots.txt blocks all paths for all
// agents. Only the blanket "User-agent: *" / "Disallow: /" form counts; a
// missing or partial robots.txt leaves the site accessible.
func robotsDisallowsAll(robotsBody string) bool {
	inWildcardGroup := false
	for _, line := range strings.Split(robotsBody, "\n") {
		line = strings.TrimSpace(line)
		if idx := strings.Index(line, "#"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
		}
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "user-agent:"):
			agent := strings.TrimSpace(line[len("user-agent:"):])
			inWildcardGroup = agent == "*"
		case strings.HasPrefix(lower, "disallow:") && inWildcardGroup:
			path := strings.TrimSpace(line[len("disallow:"):])
			if path == "/" {
				return true
			}
		}
	}
	return false
}

func latencyBucket(d time.Duration, reachable bool) string {
	if !reachable {
		return ""
	}
	switch {
	case d < 500*time.Millisecond:
		return latencyFast
	case d < 1500*time.Millisecond:
		return latencyModerate
	default:
		return latencySlow
	}
}
