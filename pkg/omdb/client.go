// Package omdb wraps the OMDb title lookup used to seed the movie catalog.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"moviebuzz/pkg/utils"

	"go.uber.org/zap"
)

// Result is the subset of the OMDb payload the catalog cares about.
type Result struct {
	Title    string `json:"Title"`
	Genre    string `json:"Genre"`
	Runtime  string `json:"Runtime"`
	Poster   string `json:"Poster"`
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(config utils.OMDBConfig, log *zap.Logger) *Client {
	timeout := time.Duration(config.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		baseURL: config.BaseURL,
		apiKey:  config.APIKey,
		http:    &http.Client{Timeout: timeout},
		log:     log.With(zap.String("client", "omdb")),
	}
}

// FindByTitle looks up a single movie by exact title. A title OMDb does not
// know returns (nil, nil).
func (c *Client) FindByTitle(ctx context.Context, title string) (*Result, error) {
	query := url.Values{}
	query.Set("t", title)
	query.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build omdb request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("OMDb request failed", zap.Error(err), zap.String("title", title))
		return nil, fmt.Errorf("omdb lookup %s: %w", title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("OMDb returned non-OK status",
			zap.Int("status", resp.StatusCode),
			zap.String("title", title),
		)
		return nil, fmt.Errorf("omdb lookup %s: unexpected status %d", title, resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode omdb response: %w", err)
	}

	// OMDb reports misses inside a 200 body
	if result.Response == "False" {
		c.log.Info("OMDb has no match",
			zap.String("title", title),
			zap.String("reason", result.Error),
		)
		return nil, nil
	}

	return &result, nil
}
