package tgju

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/SscSPs/price_tracker_app/internal/core/ports/sources"
)

const (
	DefaultURL       = "https://www.tgju.org/"
	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Targets maps internal currency codes to the data-market-row key of the
// matching row on the TGJU front page.
var Targets = map[string]string{
	"usd":          "price_dollar_rl",
	"gold_18":      "geram18",
	"gold_24":      "geram24",
	"coin_half":    "retail_nim",
	"coin_quarter": "retail_rob",
	"coin_gerami":  "retail_gerami",
}

// Client scrapes current prices from the TGJU market page.
type Client struct {
	http      *http.Client
	url       string
	userAgent string
	targets   map[string]string
	logger    *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithURL overrides the page URL.
func WithURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.url = url
		}
	}
}

// WithUserAgent overrides the User-Agent header sent upstream.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger used for per-row parse diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a TGJU client. A non-positive timeout uses DefaultTimeout.
func NewClient(timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	c := &Client{
		http:      &http.Client{Timeout: timeout, Transport: transport},
		url:       DefaultURL,
		userAgent: DefaultUserAgent,
		targets:   Targets,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ sources.PriceSource = (*Client)(nil)

// Name returns the source name.
func (c *Client) Name() string { return "tgju" }

// Fetch performs a single GET and returns the price of every target whose
// row could be parsed. Rows that are missing or malformed are skipped.
func (c *Client) Fetch(ctx context.Context) (map[string]int64, error) {
	doc, err := c.fetchPage(ctx)
	if err != nil {
		return nil, err
	}

	prices := make(map[string]int64, len(c.targets))
	for code, rowKey := range c.targets {
		cell := doc.Find(fmt.Sprintf(`tr[data-market-row=%q]`, rowKey)).First().Find("td.nf").First()
		if cell.Length() == 0 {
			c.logger.Debug("TGJU row not found", slog.String("code", code), slog.String("row", rowKey))
			continue
		}
		price, ok := parsePrice(cell.Text())
		if !ok {
			c.logger.Debug("TGJU price cell not numeric", slog.String("code", code), slog.String("text", cell.Text()))
			continue
		}
		prices[code] = price
	}
	return prices, nil
}

func (c *Client) fetchPage(ctx context.Context) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", sources.ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sources.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", sources.ErrFetchFailed, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: parse HTML: %v", sources.ErrFetchFailed, err)
	}
	return doc, nil
}

// parsePrice accepts digits only, after dropping thousands separators and
// surrounding whitespace.
func parsePrice(text string) (int64, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(text, ",", ""))
	if cleaned == "" {
		return 0, false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
