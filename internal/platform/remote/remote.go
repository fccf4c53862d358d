// Copyright (c) 2026 Planora. All rights reserved.
// Author: dev@planora.app

/*
Package remote is the thin client for the hosted data service's row-level
REST contract.

Every entity collection lives in a remote table reachable under /rest/v1/.
The contract is deliberately small: list a table (with server-side ordering
and equality filters), insert a row, patch a row by id, delete a row by id.
Persistence, relational integrity, and row-level security all live on the
remote side — this client only moves rows and classifies failures.

# Failure classification

Network faults and upstream 5xx map to TRANSPORT_ERROR, missing rows to
NOT_FOUND, and payload rejections to validation-class errors. See
[apperr.Transport].
*/
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/planora/api/internal/platform/apperr"
	"github.com/planora/api/internal/platform/constants"
)

// restPath is the URL prefix of the row-level REST surface.
const restPath = "/rest/v1/"

// Client talks to one hosted data service project.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *slog.Logger
}

// NewClient constructs a remote client for the given project URL and API key.
func NewClient(baseURL, apiKey string, log *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: constants.RemoteRequestTimeout},
		log:     log,
	}
}

// ListOptions are the server-side query refinements supported by the row
// contract. They must agree with the local filter layer: pushing the same
// predicate to the server or applying it against a snapshot yields the same
// result set.
type ListOptions struct {
	// OrderBy names the column to sort by; empty means table order.
	OrderBy string
	// Descending flips the sort direction.
	Descending bool
	// Equals holds column → value equality filters (eq.<value>).
	Equals map[string]string
}

// List fetches all rows of a table into dest (a pointer to a slice of wire
// row structs), preserving the server's ordering.
func (c *Client) List(ctx context.Context, table string, opts ListOptions, dest any) error {
	params := url.Values{}
	params.Set("select", "*")

	if opts.OrderBy != "" {
		direction := "asc"
		if opts.Descending {
			direction = "desc"
		}
		params.Set("order", opts.OrderBy+"."+direction)
	}

	// Deterministic parameter order keeps request logs and tests stable.
	columns := make([]string, 0, len(opts.Equals))
	for column := range opts.Equals {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	for _, column := range columns {
		params.Set(column, "eq."+opts.Equals[column])
	}

	body, err := c.do(ctx, http.MethodGet, table, params, nil)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return apperr.Transport(fmt.Errorf("remote: malformed list payload for %s: %w", table, err))
	}
	return nil
}

// Insert creates a row and decodes the created representation into dest.
// Pass a nil dest to discard the representation.
func (c *Client) Insert(ctx context.Context, table string, record, dest any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return apperr.Internal(fmt.Errorf("remote: encode insert for %s: %w", table, err))
	}

	body, err := c.do(ctx, http.MethodPost, table, url.Values{}, payload)
	if err != nil {
		return err
	}

	return c.decodeSingle(table, body, dest)
}

// Update patches the row with the given id and decodes the updated
// representation into dest. A patch that matches no row is NOT_FOUND.
func (c *Client) Update(ctx context.Context, table, id string, patch, dest any) error {
	payload, err := json.Marshal(patch)
	if err != nil {
		return apperr.Internal(fmt.Errorf("remote: encode update for %s: %w", table, err))
	}

	params := url.Values{}
	params.Set("id", "eq."+id)

	body, err := c.do(ctx, http.MethodPatch, table, params, payload)
	if err != nil {
		return err
	}

	return c.decodeSingle(table, body, dest)
}

// Delete removes the row with the given id. Deleting an absent row succeeds:
// the desired end state already holds.
func (c *Client) Delete(ctx context.Context, table, id string) error {
	params := url.Values{}
	params.Set("id", "eq."+id)

	_, err := c.do(ctx, http.MethodDelete, table, params, nil)
	return err
}

// DeleteWhere removes all rows matching the given equality filters. Used for
// join tables keyed by a column pair rather than a surrogate id.
func (c *Client) DeleteWhere(ctx context.Context, table string, equals map[string]string) error {
	params := url.Values{}
	columns := make([]string, 0, len(equals))
	for column := range equals {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	for _, column := range columns {
		params.Set(column, "eq."+equals[column])
	}

	_, err := c.do(ctx, http.MethodDelete, table, params, nil)
	return err
}

// Ping checks that the REST surface answers at all; used by readiness probes.
func (c *Client) Ping(ctx context.Context) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+restPath, nil)
	if err != nil {
		return apperr.Transport(err)
	}
	c.setHeaders(request, false)

	response, err := c.http.Do(request)
	if err != nil {
		return apperr.Transport(fmt.Errorf("remote: ping failed: %w", err))
	}
	defer response.Body.Close()

	if response.StatusCode >= 500 {
		return apperr.Transport(fmt.Errorf("remote: ping answered %d", response.StatusCode))
	}
	return nil
}

// do performs one round-trip and classifies the outcome.
func (c *Client) do(ctx context.Context, method, table string, params url.Values, payload []byte) ([]byte, error) {
	endpoint := c.baseURL + restPath + table
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, apperr.Transport(err)
	}
	c.setHeaders(request, payload != nil)

	response, err := c.http.Do(request)
	if err != nil {
		return nil, apperr.Transport(fmt.Errorf("remote: %s %s: %w", method, table, err))
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, apperr.Transport(fmt.Errorf("remote: read %s %s response: %w", method, table, err))
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return body, nil
	}

	c.log.Warn("remote_request_failed",
		slog.String("method", method),
		slog.String("table", table),
		slog.Int("status", response.StatusCode),
	)

	return nil, classify(response.StatusCode, table, body)
}

// setHeaders applies the service credentials and content negotiation headers.
func (c *Client) setHeaders(request *http.Request, hasBody bool) {
	request.Header.Set("apikey", c.apiKey)
	request.Header.Set("Authorization", "Bearer "+c.apiKey)
	request.Header.Set("Accept", "application/json")
	if hasBody {
		request.Header.Set("Content-Type", "application/json")
		// Ask the service to echo the affected row back.
		request.Header.Set("Prefer", "return=representation")
	}
}

// decodeSingle unwraps the one-element array representation the row contract
// returns for inserts and updates.
func (c *Client) decodeSingle(table string, body []byte, dest any) error {
	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return apperr.Transport(fmt.Errorf("remote: malformed row payload for %s: %w", table, err))
	}

	// An update that matched no row comes back as an empty representation.
	if len(rows) == 0 {
		return apperr.NotFound("Record")
	}

	if dest == nil {
		return nil
	}

	if err := json.Unmarshal(rows[0], dest); err != nil {
		return apperr.Transport(fmt.Errorf("remote: malformed row for %s: %w", table, err))
	}
	return nil
}

// classify maps an upstream status code onto the application error taxonomy.
func classify(status int, table string, body []byte) error {
	message := upstreamMessage(body)

	switch {
	case status == http.StatusNotFound:
		return apperr.NotFound("Record")
	case status == http.StatusUnauthorized:
		return apperr.Unauthorized("Data service rejected the credentials")
	case status == http.StatusForbidden:
		return apperr.Forbidden("Data service denied access to " + table)
	case status == http.StatusConflict:
		return apperr.Conflict(fallback(message, "Conflicting record"))
	case status >= 400 && status < 500:
		return apperr.Unprocessable(fallback(message, "Data service rejected the request"))
	default:
		return apperr.Transport(fmt.Errorf("remote: %s answered %d: %s", table, status, message))
	}
}

// upstreamMessage extracts the service's error message when the body carries one.
func upstreamMessage(body []byte) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	return parsed.Message
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
