package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// Select reads rows from a table. columns is a PostgREST select list and may
// carry an embed, e.g. "*,jobs(id,title,company,location,salary)". filters
// are ANDed equality predicates. limit <= 0 means no limit.
func (c *Client) Select(ctx context.Context, table, columns string, filters map[string]string, limit int) ([]json.RawMessage, error) {
	req := c.rest.R().
		SetContext(ctx).
		SetQueryParam("select", columns).
		SetError(&APIError{})
	for col, val := range filters {
		req.SetQueryParam(col, "eq."+val)
	}
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/rest/v1/" + table)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fail(resp)
	}
	return decodeRows(resp.Body())
}

// Insert writes one row and echoes the created representation back. A
// uniqueness violation surfaces as an APIError with status 409.
func (c *Client) Insert(ctx context.Context, table string, row any) ([]json.RawMessage, error) {
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetBody(row).
		SetError(&APIError{}).
		Post("/rest/v1/" + table)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fail(resp)
	}
	return decodeRows(resp.Body())
}

// Delete removes the rows matching all filters and returns what was
// removed; an empty result means nothing matched.
func (c *Client) Delete(ctx context.Context, table string, filters map[string]string) ([]json.RawMessage, error) {
	req := c.rest.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetError(&APIError{})
	for col, val := range filters {
		req.SetQueryParam(col, "eq."+val)
	}

	resp, err := req.Delete("/rest/v1/" + table)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fail(resp)
	}
	return decodeRows(resp.Body())
}

func decodeRows(body []byte) ([]json.RawMessage, error) {
	if len(body) == 0 {
		return []json.RawMessage{}, nil
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	return rows, nil
}
