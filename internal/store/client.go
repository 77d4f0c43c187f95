// Package store is a thin client for the external relational data API
// (PostgREST-style REST over the rsvps table).
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/party-rsvp/backend/config"
)

// ErrNotConfigured is returned by every operation when the store endpoint or
// service key is missing. Fatal until an operator fixes configuration.
var ErrNotConfigured = errors.New("store endpoint or service key not configured")

// Result carries the upstream response for verbatim relay.
type Result struct {
	Status int
	Body   []byte
}

// OK reports whether the upstream status is 2xx.
func (r Result) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Client issues filtered reads, inserts and deletes against the data API,
// attaching service credentials to every call.
type Client struct {
	baseURL string
	key     string
	http    *http.Client
}

// New creates a store client. Timeouts are inherited from the transport.
func New(cfg config.Store) *Client {
	return &Client{
		baseURL: cfg.URL,
		key:     cfg.ServiceKey,
		http:    &http.Client{},
	}
}

// Select performs a filtered read, e.g. Select(ctx, "rsvps", "select=*&order=created_at.asc").
func (c *Client) Select(ctx context.Context, table, query string) (Result, error) {
	return c.do(ctx, http.MethodGet, table, query, nil, nil)
}

// Insert creates one row and returns the created representation.
func (c *Client) Insert(ctx context.Context, table string, row any) (Result, error) {
	body, err := json.Marshal(row)
	if err != nil {
		return Result{}, err
	}
	headers := map[string]string{
		"Content-Type": "application/json",
		"Prefer":       "return=representation",
	}
	return c.do(ctx, http.MethodPost, table, "", bytes.NewReader(body), headers)
}

// Delete removes rows matching the filter query, e.g. "id=eq.<id>".
func (c *Client) Delete(ctx context.Context, table, query string) (Result, error) {
	return c.do(ctx, http.MethodDelete, table, query, nil, nil)
}

// Count returns the total number of rows without transferring row data:
// a minimal projection with a zero-size range, total read back from the
// Content-Range header. A missing or malformed header counts as zero.
func (c *Client) Count(ctx context.Context, table string) (int, error) {
	if !c.configured() {
		return 0, ErrNotConfigured
	}
	req, err := c.newRequest(ctx, http.MethodGet, table, "select=id", nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Prefer", "count=exact")
	req.Header.Set("Range-Unit", "items")
	req.Header.Set("Range", "0-0")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return parseContentRangeTotal(resp.Header.Get("Content-Range")), nil
}

func (c *Client) do(ctx context.Context, method, table, query string, body io.Reader, headers map[string]string) (Result, error) {
	if !c.configured() {
		return Result{}, ErrNotConfigured
	}
	req, err := c.newRequest(ctx, method, table, query, body)
	if err != nil {
		return Result{}, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, err
	}
	return Result{Status: resp.StatusCode, Body: b}, nil
}

func (c *Client) newRequest(ctx context.Context, method, table, query string, body io.Reader) (*http.Request, error) {
	u := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	if query != "" {
		u += "?" + query
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	return req, nil
}

func (c *Client) configured() bool {
	return c.baseURL != "" && c.key != ""
}

// parseContentRangeTotal extracts the total from "<start>-<end>/<total>".
func parseContentRangeTotal(h string) int {
	_, total, ok := strings.Cut(h, "/")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(total)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
