package shop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// API defines the four collection operations the client performs against the
// shopping-list service. This interface is implemented by *Client and can be
// used for testing.
type API interface {
	ListProducts(ctx context.Context) ([]Product, error)
	CreateProduct(ctx context.Context, draft Product) (string, error)
	UpdateProduct(ctx context.Context, product Product) error
	DeleteProduct(ctx context.Context, id string) error
}

// Ensure Client implements API at compile time.
var _ API = (*Client)(nil)

// Client talks to the trolley HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBase   = "127.0.0.1:7602"
	defaultUserAgent = "trolley/0.1"
	productsPath     = "/products"
)

// NewClient builds a Client using the provided apiBase host:port value.
func NewClient(apiBase string) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}, nil
}

// ListProducts retrieves every product in the collection, in server order.
func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Product
	if err := c.do(ctx, http.MethodGet, productsPath, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// CreateProduct posts a draft (no id) and returns the identifier the server
// assigned. Only the id is trusted from the response body; the caller appends
// the draft it already holds.
func (c *Client) CreateProduct(ctx context.Context, draft Product) (string, error) {
	if c == nil {
		return "", fmt.Errorf("client is nil")
	}
	draft.ID = ""
	var payload struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, productsPath, draft, &payload); err != nil {
		return "", err
	}
	if payload.ID == "" {
		return "", fmt.Errorf("create response missing id")
	}
	return payload.ID, nil
}

// UpdateProduct puts the full record. The response body is an acknowledgement
// only and is discarded.
func (c *Client) UpdateProduct(ctx context.Context, product Product) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if product.ID == "" {
		return fmt.Errorf("product id required")
	}
	return c.do(ctx, http.MethodPut, productsPath+"/"+url.PathEscape(product.ID), product, nil)
}

// DeleteProduct removes the record with the given id.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if id == "" {
		return fmt.Errorf("product id required")
	}
	return c.do(ctx, http.MethodDelete, productsPath+"/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", apiBase, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
