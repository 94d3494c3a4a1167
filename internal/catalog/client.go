package catalog

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

// Fetcher defines the catalog operations the UI depends on.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchPlants(ctx context.Context, params url.Values) ([]Plant, error)
	FetchCategories(ctx context.Context) ([]string, error)
	CreatePlant(ctx context.Context, payload NewPlant) (Plant, error)
	PurchasePlant(ctx context.Context, id string, quantity int) (Plant, string, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the plant catalog HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBase   = "127.0.0.1:5000"
	defaultUserAgent = "verdant/0.1"
	requestTimeout   = 10 * time.Second

	// defaultPurchaseNotice is shown when the server omits the optional
	// success message on a purchase response.
	defaultPurchaseNotice = "Purchase confirmed."
)

// NewClient builds a Client for the given base address. A bare host:port is
// promoted to http.
func NewClient(apiBase string) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchPlants retrieves the catalog listing for the given canonical query
// parameters. Params come pre-encoded from the query package so that equal
// filter intents produce identical requests.
func (c *Client) FetchPlants(ctx context.Context, params url.Values) ([]Plant, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/api/plants", RawQuery: params.Encode()}
	var payload plantListEnvelope
	if err := c.doJSON(ctx, http.MethodGet, rel, nil, &payload, false); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		return nil, &ParseError{Err: fmt.Errorf("missing data field in listing response")}
	}
	return *payload.Data, nil
}

// FetchCategories retrieves the distinct category vocabulary. Failures here
// are non-fatal to browsing; callers report them and carry on.
func (c *Client) FetchCategories(ctx context.Context) ([]string, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/api/plants/meta/categories"}
	var payload categoriesEnvelope
	if err := c.doJSON(ctx, http.MethodGet, rel, nil, &payload, false); err != nil {
		return nil, err
	}
	if payload.Data == nil {
		return nil, &ParseError{Err: fmt.Errorf("missing data field in categories response")}
	}
	return *payload.Data, nil
}

// CreatePlant submits a new catalog entry and returns the server's version of
// it, including the assigned ID. No local state is touched on failure.
func (c *Client) CreatePlant(ctx context.Context, payload NewPlant) (Plant, error) {
	if c == nil {
		return Plant{}, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/api/plants"}
	var resp plantEnvelope
	if err := c.doJSON(ctx, http.MethodPost, rel, payload, &resp, true); err != nil {
		return Plant{}, err
	}
	if resp.Data == nil {
		return Plant{}, &ParseError{Err: fmt.Errorf("missing data field in create response")}
	}
	return *resp.Data, nil
}

// PurchasePlant submits a purchase for the given quantity. On success the
// server returns the item with its authoritative new stock level, plus an
// optional notice for display.
func (c *Client) PurchasePlant(ctx context.Context, id string, quantity int) (Plant, string, error) {
	if c == nil {
		return Plant{}, "", fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return Plant{}, "", fmt.Errorf("plant id required")
	}
	rel := &url.URL{Path: "/api/plants/" + url.PathEscape(id) + "/purchase"}
	body := struct {
		Quantity int `json:"quantity"`
	}{Quantity: quantity}
	var resp plantEnvelope
	if err := c.doJSON(ctx, http.MethodPost, rel, body, &resp, true); err != nil {
		return Plant{}, "", err
	}
	if resp.Data == nil {
		return Plant{}, "", &ParseError{Err: fmt.Errorf("missing data field in purchase response")}
	}
	notice := strings.TrimSpace(resp.Message)
	if notice == "" {
		notice = defaultPurchaseNotice
	}
	return *resp.Data, notice, nil
}

// doJSON issues a request and decodes the JSON response into dest. When
// mutation is true, 4xx responses carrying a message become ValidationError
// so business-rule rejections surface verbatim.
func (c *Client) doJSON(ctx context.Context, method string, rel *url.URL, body, dest any, mutation bool) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
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
		return c.classifyFailure(resp, mutation)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return &ParseError{Err: err}
	}
	return nil
}

// classifyFailure turns a non-2xx response into a typed error. The server
// reports rejection reasons as {"message": ...}; that text passes through
// verbatim.
func (c *Client) classifyFailure(resp *http.Response, mutation bool) error {
	var envelope errorEnvelope
	_ = json.NewDecoder(resp.Body).Decode(&envelope)
	message := strings.TrimSpace(envelope.Message)

	if mutation && message != "" && resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return &ValidationError{Message: message}
	}
	return &FetchError{StatusCode: resp.StatusCode, Message: message}
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
		return nil, fmt.Errorf("parse api base %q: %w", apiBase, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
