package permitapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRecentPermits(t *testing.T) {
	var gotPath, gotKey, gotAuth string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotKey = r.Header.Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"1","municipality":"Boston","address":"12 Hyde Park Ave","permit_number":"ADU-2025-0041","status":"Issued","filing_date":"2025-03-14"},
			{"id":"2","municipality":"Newton","address":"55 Walnut St","permit_number":"ADU-2025-0038","status":"In Review","filing_date":"2025-03-02"}
		]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", "")
	since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	permits, err := c.RecentPermits(context.Background(), since)
	if err != nil {
		t.Fatalf("RecentPermits: %v", err)
	}

	if gotPath != "/rest/v1/adu_permits" {
		t.Errorf("path = %q", gotPath)
	}
	if got := gotQuery["filing_date"]; len(got) != 1 || got[0] != "gte.2025-01-01" {
		t.Errorf("filing_date filter = %v", got)
	}
	if got := gotQuery["order"]; len(got) != 1 || got[0] != "filing_date.desc" {
		t.Errorf("order = %v", got)
	}
	if gotKey != "test-key" || gotAuth != "Bearer test-key" {
		t.Errorf("auth headers = %q / %q", gotKey, gotAuth)
	}

	if len(permits) != 2 {
		t.Fatalf("got %d permits", len(permits))
	}
	if permits[0].Municipality != "Boston" || permits[0].PermitNumber != "ADU-2025-0041" {
		t.Errorf("first permit = %+v", permits[0])
	}
}

func TestPermitsForTown(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k", "filings")
	permits, err := c.PermitsForTown(context.Background(), "Revere")
	if err != nil {
		t.Fatalf("PermitsForTown: %v", err)
	}
	if permits != nil && len(permits) != 0 {
		t.Errorf("got %d permits, want none", len(permits))
	}
	if got := gotQuery["municipality"]; len(got) != 1 || got[0] != "eq.Revere" {
		t.Errorf("municipality filter = %v", got)
	}
}

func TestQueryErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, "bad-key", "")
	if _, err := c.RecentPermits(context.Background(), time.Now()); err == nil {
		t.Fatal("expected error for 401 response")
	}
}

func TestQueryBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "k", "")
	if _, err := c.RecentPermits(context.Background(), time.Now()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestNewDefaultTable(t *testing.T) {
	if c := New("http://example", "k", ""); c.Table != DefaultTable {
		t.Errorf("Table = %q", c.Table)
	}
	if c := New("http://example", "k", "custom"); c.Table != "custom" {
		t.Errorf("Table = %q", c.Table)
	}
}
