// Package assets resolves free-text queries to deck-ready images through an
// external search capability, with query fallback, in-flight coalescing and a
// content-addressed on-disk cache. Resolution failures never abort document
// generation - the worst outcome is a text-only slide.
package assets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"sbc/config"
	"sbc/misc"
)

// Hit is one usable search result.
type Hit struct {
	BinaryURL  string
	Title      string
	PageURL    string
	Author     string
	LicenseURL string
}

// Provider is the external search capability: find one asset for a query and
// fetch its payload. Implementations must treat "nothing found" as (nil, nil).
type Provider interface {
	Name() string
	Search(ctx context.Context, query string, orientation config.Orientation) (*Hit, error)
	Fetch(ctx context.Context, binaryURL string) ([]byte, error)
}

// maxFetchSize bounds a single asset payload.
const maxFetchSize = 20 << 20

// openverse implements Provider on top of the Openverse REST API.
// Every request is a single bounded attempt, no retries - a failing provider
// should cost one timeout, not many.
type openverse struct {
	endpoint string
	apiKey   config.SecretString
	client   *http.Client
}

// NewOpenverse creates the default search provider from configuration.
func NewOpenverse(cfg *config.SearchConfig) Provider {
	return &openverse{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		client:   &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second},
	}
}

func (p *openverse) Name() string {
	return "openverse"
}

type openverseResult struct {
	Results []struct {
		URL               string `json:"url"`
		Title             string `json:"title"`
		ForeignLandingURL string `json:"foreign_landing_url"`
		Creator           string `json:"creator"`
		License           string `json:"license"`
		LicenseURL        string `json:"license_url"`
	} `json:"results"`
}

func (p *openverse) Search(ctx context.Context, query string, orientation config.Orientation) (*Hit, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("page_size", "1")
	switch orientation {
	case config.OrientationLandscape:
		q.Set("aspect_ratio", "wide")
	case config.OrientationPortrait:
		q.Set("aspect_ratio", "tall")
	case config.OrientationSquare:
		q.Set("aspect_ratio", "square")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", misc.GetAppName()+"/"+misc.GetVersion())
	if key := p.apiKey.Value(); key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %s", resp.Status)
	}

	var out openverseResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return nil, fmt.Errorf("unable to decode search response: %w", err)
	}
	if len(out.Results) == 0 || out.Results[0].URL == "" {
		return nil, nil
	}

	r := out.Results[0]
	hit := &Hit{
		BinaryURL:  r.URL,
		Title:      r.Title,
		PageURL:    r.ForeignLandingURL,
		Author:     r.Creator,
		LicenseURL: r.LicenseURL,
	}
	if hit.LicenseURL == "" && r.License != "" {
		hit.LicenseURL = "https://creativecommons.org/licenses/" + r.License + "/"
	}
	return hit, nil
}

func (p *openverse) Fetch(ctx context.Context, binaryURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, binaryURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", misc.GetAppName()+"/"+misc.GetVersion())

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch returned status %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxFetchSize))
}
