package gtfsrt

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// Client fetches GTFS-RT protobuf payloads over HTTP or from local files
type Client struct {
	httpClient *http.Client
}

// NewClient creates a client whose requests time out after timeout.
// A zero timeout means no limit.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch returns the raw bytes at src, an http(s) URL or a file path.
// Returns nil if src is empty.
func (c *Client) Fetch(ctx context.Context, src string) ([]byte, error) {
	if src == "" {
		return nil, nil
	}
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		return os.ReadFile(src)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", src, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, src)
	}
	return io.ReadAll(resp.Body)
}

// Load fetches both feeds and decodes them. Empty sources are skipped.
func (c *Client) Load(ctx context.Context, tripUpdatesSrc, alertsSrc string, at int64) (*Disruptions, error) {
	tu, err := c.Fetch(ctx, tripUpdatesSrc)
	if err != nil {
		return nil, fmt.Errorf("trip updates: %w", err)
	}
	sa, err := c.Fetch(ctx, alertsSrc)
	if err != nil {
		return nil, fmt.Errorf("service alerts: %w", err)
	}
	return Decode(tu, sa, at)
}
