// Package permitapi reads ADU permit filings from the hosted permit table.
//
// The table is exposed through a PostgREST-style endpoint: one GET per
// query, filter operators encoded in the query string, and the project key
// sent as both the apikey header and a bearer token.
package permitapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Permit is one row of the hosted permit table.
type Permit struct {
	ID            string  `json:"id"`
	Municipality  string  `json:"municipality"`
	Address       string  `json:"address"`
	PermitNumber  string  `json:"permit_number"`
	PermitType    string  `json:"permit_type"`
	Status        string  `json:"status"`
	FilingDate    string  `json:"filing_date"`
	IssueDate     string  `json:"issue_date,omitempty"`
	EstimatedCost float64 `json:"estimated_cost,omitempty"`
	SquareFeet    int     `json:"square_feet,omitempty"`
	Description   string  `json:"description,omitempty"`
}

// Client queries the hosted permit table. The zero value is not usable;
// construct with New.
type Client struct {
	BaseURL    string
	APIKey     string
	Table      string
	HTTPClient *http.Client
}

// DefaultTable is the permit table name used when none is configured.
const DefaultTable = "adu_permits"

// New returns a client for the permit table at baseURL. An empty table
// selects DefaultTable.
func New(baseURL, apiKey, table string) *Client {
	if table == "" {
		table = DefaultTable
	}
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		Table:      table,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// RecentPermits fetches permits filed on or after since, newest first.
func (c *Client) RecentPermits(ctx context.Context, since time.Time) ([]Permit, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("filing_date", "gte."+since.Format("2006-01-02"))
	q.Set("order", "filing_date.desc")
	return c.query(ctx, q)
}

// PermitsForTown fetches permits for one municipality, newest first.
func (c *Client) PermitsForTown(ctx context.Context, municipality string) ([]Permit, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("municipality", "eq."+municipality)
	q.Set("order", "filing_date.desc")
	return c.query(ctx, q)
}

func (c *Client) query(ctx context.Context, q url.Values) ([]Permit, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s", c.BaseURL, c.Table, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building permit request: %w", err)
	}
	req.Header.Set("apikey", c.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching permits: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("permit table returned status %d: %s", resp.StatusCode, body)
	}

	var permits []Permit
	if err := json.NewDecoder(resp.Body).Decode(&permits); err != nil {
		return nil, fmt.Errorf("decoding permit rows: %w", err)
	}
	return permits, nil
}
