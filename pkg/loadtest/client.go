package loadtest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a thin HTTP client for the catalog API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the API at baseURL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is required")
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

// apiError is a non-2xx response, carrying the server's message body.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Status, e.Message)
}

// CreateListing posts a listing to the category endpoint named by path
// (e.g. "sale/residential/villa") and returns the assigned id.
func (c *Client) CreateListing(ctx context.Context, path string, body any) (string, error) {
	var created struct {
		ID string `json:"id"`
	}
	endpoint := fmt.Sprintf("%s/api/v1/real-estate/%s", c.baseURL, path)
	if err := c.doRequest(ctx, http.MethodPost, endpoint, body, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

// DeleteListing removes one listing from its category.
func (c *Client) DeleteListing(ctx context.Context, ownership, propertyType, id string) error {
	endpoint := fmt.Sprintf("%s/api/v1/real-estate/%s/%s/%s",
		c.baseURL, ownership, propertyType, url.PathEscape(id))
	return c.doRequest(ctx, http.MethodDelete, endpoint, nil, nil)
}

// Search runs an ownership/propertyType search and discards the result.
func (c *Client) Search(ctx context.Context, ownership, propertyType string) error {
	q := url.Values{"ownership": {ownership}}
	if propertyType != "" {
		q.Set("propertyType", propertyType)
	}
	endpoint := fmt.Sprintf("%s/api/v1/real-estate/search?%s", c.baseURL, q.Encode())
	return c.doRequest(ctx, http.MethodGet, endpoint, nil, nil)
}

// SearchByKeyword runs a keyword search and discards the result.
func (c *Client) SearchByKeyword(ctx context.Context, keyword string) error {
	q := url.Values{"keyword": {keyword}}
	endpoint := fmt.Sprintf("%s/api/v1/real-estate/search/keyword?%s", c.baseURL, q.Encode())
	return c.doRequest(ctx, http.MethodGet, endpoint, nil, nil)
}

// Filter runs a price-bounded filter and discards the result.
func (c *Client) Filter(ctx context.Context, ownership string, minPrice, maxPrice float64) error {
	q := url.Values{
		"ownership": {ownership},
		"minPrice":  {fmt.Sprintf("%g", minPrice)},
		"maxPrice":  {fmt.Sprintf("%g", maxPrice)},
	}
	endpoint := fmt.Sprintf("%s/api/v1/real-estate/filter?%s", c.baseURL, q.Encode())
	return c.doRequest(ctx, http.MethodGet, endpoint, nil, nil)
}

// Stats fetches the aggregate statistics for one ownership branch.
func (c *Client) Stats(ctx context.Context, ownership string) error {
	q := url.Values{"ownership": {ownership}}
	endpoint := fmt.Sprintf("%s/api/v1/real-estate/stats?%s", c.baseURL, q.Encode())
	return c.doRequest(ctx, http.MethodGet, endpoint, nil, nil)
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errBody struct {
			Message string `json:"message"`
		}
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(data, &errBody)
		if errBody.Message == "" {
			errBody.Message = strings.TrimSpace(string(data))
		}
		return &apiError{Status: resp.StatusCode, Message: errBody.Message}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	} else {
		io.Copy(io.Discard, resp.Body)
	}
	return nil
}
