package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
)

// Client fetches category-filtered product lists from the remote catalog
// endpoint. Any failure is recovered locally by serving the built-in
// fallback list, so callers never see an error from FetchProducts.
type Client struct {
	base   *url.URL
	http   *http.Client
	logger *log.Logger
}

func NewClient(baseURL string, httpClient *http.Client, logger *log.Logger) *Client {
	u, err := url.Parse(baseURL)
	if err != nil {
		// Fail fast: config error
		panic(fmt.Sprintf("invalid catalog base url %q: %v", baseURL, err))
	}
	return &Client{base: u, http: httpClient, logger: logger}
}

// FetchProducts returns the normalized product list for the given category.
// On network errors, non-2xx responses or malformed payloads it logs and
// substitutes the fallback catalog. No retry or backoff.
func (c *Client) FetchProducts(ctx context.Context, category string) []Product {
	if category == "" {
		category = CategoryAll
	}

	products, err := c.fetch(ctx, category)
	if err != nil {
		c.logger.Printf("catalog fetch failed for category %q, serving fallback: %v", category, err)
		return Fallback()
	}
	return products
}

func (c *Client) fetch(ctx context.Context, category string) ([]Product, error) {
	u := *c.base
	q := u.Query()
	q.Set("category", category)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog responded %d", resp.StatusCode)
	}

	var records []map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	products := make([]Product, 0, len(records))
	for _, rec := range records {
		products = append(products, NormalizeRecord(rec))
	}
	return products, nil
}
