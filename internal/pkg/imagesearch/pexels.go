package imagesearch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const requestTimeout = 10 * time.Second

const defaultFallbackURL = "https://placehold.co/800x600?text=Lentera"

// Client resolves a text descriptor to one displayable image URL through a
// Pexels-style search API. Resolve never fails: any error yields the
// fallback URL.
type Client struct {
	apiKey      string
	baseURL     string
	fallbackURL string
	httpClient  *http.Client
}

func NewClient(apiKey, baseURL, fallbackURL string) *Client {
	if baseURL == "" {
		baseURL = "https://api.pexels.com"
	}
	if fallbackURL == "" {
		fallbackURL = defaultFallbackURL
	}
	return &Client{
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		fallbackURL: fallbackURL,
		httpClient:  &http.Client{Timeout: requestTimeout},
	}
}

type searchResponse struct {
	Photos []struct {
		Src struct {
			Large string `json:"large"`
		} `json:"src"`
	} `json:"photos"`
}

func (c *Client) Resolve(ctx context.Context, query string) string {
	u, err := c.search(ctx, query)
	if err != nil || u == "" {
		return c.fallbackURL
	}
	return u
}

func (c *Client) search(ctx context.Context, query string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("image api key not configured")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("per_page", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/search?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create image request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image unexpected status code: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read image response: %w", err)
	}

	var parsed searchResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("parse image response: %w", err)
	}
	if len(parsed.Photos) == 0 {
		return "", fmt.Errorf("no photos for query")
	}

	return parsed.Photos[0].Src.Large, nil
}
