package cmd

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adupulse/adupulse/analytics"
)

func testServer() *webServer {
	return &webServer{cfg: Config{WebAddr: ":0"}}
}

func getBody(t *testing.T, srv *webServer, path string) (*httptest.ResponseRecorder, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	return rec, rec.Body.Bytes()
}

func TestHandleRankings(t *testing.T) {
	rec, body := getBody(t, testServer(), "/api/rankings")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Towns    []analytics.RankedTown `json:"towns"`
		Counties []string               `json:"counties"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Towns) == 0 {
		t.Error("no ranked towns")
	}
	if len(resp.Counties) == 0 {
		t.Error("no counties")
	}
	// Sorted by score descending under the default order.
	for i := 1; i < len(resp.Towns); i++ {
		if resp.Towns[i].OverallScore > resp.Towns[i-1].OverallScore {
			t.Errorf("rankings out of order at %d: %d > %d",
				i, resp.Towns[i].OverallScore, resp.Towns[i-1].OverallScore)
		}
	}
}

func TestHandleRankingsFilters(t *testing.T) {
	rec, body := getBody(t, testServer(), "/api/rankings?county=Worcester")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Towns []analytics.RankedTown `json:"towns"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatal(err)
	}
	for _, town := range resp.Towns {
		if town.County != "Worcester" {
			t.Errorf("county filter leaked %s (%s)", town.Name, town.County)
		}
	}

	rec, _ = getBody(t, testServer(), "/api/rankings?grade=Z")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid grade: status = %d, want 400", rec.Code)
	}
}

func TestHandleTown(t *testing.T) {
	rec, body := getBody(t, testServer(), "/api/towns/plymouth")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var detail townDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if detail.Town.Slug != "plymouth" {
		t.Errorf("slug = %q", detail.Town.Slug)
	}
	if detail.Scorecard.Overall == "" {
		t.Error("missing scorecard grade")
	}
	if detail.BottomLine == "" {
		t.Error("profiled town missing bottom line")
	}

	rec, _ = getBody(t, testServer(), "/api/towns/atlantis")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown town: status = %d, want 404", rec.Code)
	}
}

func TestHandleTownWithoutCompliance(t *testing.T) {
	_, body := getBody(t, testServer(), "/api/towns/boston")
	var detail townDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		t.Fatal(err)
	}
	if detail.Consistency != analytics.ConsistencyGray {
		t.Errorf("consistency = %q, want gray", detail.Consistency)
	}
	if detail.BottomLine != "" {
		t.Errorf("unexpected bottom line %q", detail.BottomLine)
	}
	if detail.Timeline == nil {
		t.Error("boston has portal permits but no timeline")
	}
}

func TestHandleCompliance(t *testing.T) {
	rec, body := getBody(t, testServer(), "/api/compliance")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Statewide   analytics.StatewideStats `json:"statewide"`
		Communities []json.RawMessage        `json:"communities"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Statewide.CommunitiesTracked != len(resp.Communities) {
		t.Errorf("statewide tracks %d but %d rows returned",
			resp.Statewide.CommunitiesTracked, len(resp.Communities))
	}

	rec, _ = getBody(t, testServer(), "/api/compliance/leicester")
	if rec.Code != http.StatusOK {
		t.Errorf("leicester detail: status = %d", rec.Code)
	}
	rec, _ = getBody(t, testServer(), "/api/compliance/boston")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unprofiled town detail: status = %d, want 404", rec.Code)
	}
}

func TestHandleLivePermitsDegradesWithoutClient(t *testing.T) {
	rec, body := getBody(t, testServer(), "/api/permits/live")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Permits []json.RawMessage `json:"permits"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Permits == nil {
		t.Error("permits should be an empty list, not null")
	}
	if len(resp.Permits) != 0 {
		t.Errorf("got %d permits with no client configured", len(resp.Permits))
	}
}

func TestHandleLead(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodPost, "/api/leads",
		strings.NewReader(`{"name":"Pat Doyle","email":"pat@example.com","town":"Salem"}`))
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", rec.Code)
	}
	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.ID == "" {
		t.Error("accepted lead missing id")
	}

	req = httptest.NewRequest(http.MethodPost, "/api/leads",
		strings.NewReader(`{"name":"","email":"bad"}`))
	rec = httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid lead: status = %d, want 400", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader("not json"))
	rec = httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad body: status = %d, want 400", rec.Code)
	}
}

func TestHandleExportTowns(t *testing.T) {
	rec, body := getBody(t, testServer(), "/api/export/towns.csv")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("content type = %q", ct)
	}
	records, err := csv.NewReader(strings.NewReader(string(body))).ReadAll()
	if err != nil {
		t.Fatalf("parsing CSV: %v", err)
	}
	if len(records) < 2 {
		t.Fatalf("got %d CSV records", len(records))
	}
	if records[0][0] != "Town" {
		t.Errorf("header starts with %q", records[0][0])
	}
}

func TestHandleIndex(t *testing.T) {
	rec, body := getBody(t, testServer(), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(string(body), "ADU Pulse") {
		t.Error("dashboard HTML missing title")
	}
}
