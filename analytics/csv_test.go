package analytics

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/adupulse/adupulse/dataset"
)

func TestGenerateCSVEmpty(t *testing.T) {
	if got := GenerateCSV(nil); got != "" {
		t.Errorf("GenerateCSV(nil) = %q, want empty", got)
	}
}

func TestGenerateCSVRoundTrip(t *testing.T) {
	rows := []Row{
		{
			{"Town", "Boston, North End"},
			{"Notes", `special permit "by right" conversion`},
			{"Count", "3"},
		},
		{
			{"Town", "Quincy"},
			{"Notes", "line\nbreak"},
			{"Count", "0"},
		},
	}
	out := GenerateCSV(rows)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parsing generated CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3 (header + 2 rows)", len(records))
	}
	wantHeader := []string{"Town", "Notes", "Count"}
	for i, h := range wantHeader {
		if records[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], h)
		}
	}
	if records[1][0] != "Boston, North End" {
		t.Errorf("comma value round-trip = %q", records[1][0])
	}
	if records[1][1] != `special permit "by right" conversion` {
		t.Errorf("quote value round-trip = %q", records[1][1])
	}
	if records[2][1] != "line\nbreak" {
		t.Errorf("newline value round-trip = %q", records[2][1])
	}
}

func TestTownRow(t *testing.T) {
	town := dataset.TownPermitProfile{
		Slug: "plymouth", Name: "Plymouth", County: "Plymouth",
		Population: 61000, SingleFamilyParcels: 19500,
		Submitted: 41, Approved: 38, Denied: 1, Pending: 2,
		ApprovalRate: 92.7, ByRight: true, Responded: true,
		Source: "Public records request",
	}
	row := TownRow(town)
	if row[0].Name != "Town" || row[0].Value != "Plymouth" {
		t.Errorf("first field = %+v", row[0])
	}
	got := map[string]string{}
	for _, f := range row {
		got[f.Name] = f.Value
	}
	if got["Approval Rate (%)"] != "92.7" {
		t.Errorf("approval rate = %q", got["Approval Rate (%)"])
	}
	if got["By Right"] != "Yes" {
		t.Errorf("by right = %q", got["By Right"])
	}
	if got["Avg Rent"] != "N/A" {
		t.Errorf("unknown rent = %q, want N/A", got["Avg Rent"])
	}
	// 38 approvals over 19.5K parcels.
	if got["Approvals per 1K Parcels"] != "1.95" {
		t.Errorf("per-parcel = %q", got["Approvals per 1K Parcels"])
	}
}

func TestTownRowUnknownParcels(t *testing.T) {
	town := dataset.TownPermitProfile{Name: "Upton", Submitted: 0}
	got := map[string]string{}
	for _, f := range TownRow(town) {
		got[f.Name] = f.Value
	}
	if got["Approvals per 1K Parcels"] != "N/A" {
		t.Errorf("per-parcel with unknown parcels = %q, want N/A", got["Approvals per 1K Parcels"])
	}
	if got["Single Family Parcels (est.)"] != "N/A" {
		t.Errorf("parcel count = %q, want N/A", got["Single Family Parcels (est.)"])
	}
}

func TestRankingRowNoQuadrant(t *testing.T) {
	r := RankedTown{Name: "Salem", Grade: GradeB, OverallScore: 71}
	got := map[string]string{}
	for _, f := range RankingRow(r) {
		got[f.Name] = f.Value
	}
	if got["Quadrant"] != "N/A" {
		t.Errorf("quadrant = %q, want N/A", got["Quadrant"])
	}
	if got["Score"] != "71" {
		t.Errorf("score = %q", got["Score"])
	}
}

func TestAllTownsExport(t *testing.T) {
	var rows []Row
	for _, town := range dataset.Towns {
		rows = append(rows, TownRow(town))
	}
	out := GenerateCSV(rows)
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("parsing export: %v", err)
	}
	if len(records) != len(dataset.Towns)+1 {
		t.Errorf("got %d records, want %d", len(records), len(dataset.Towns)+1)
	}
}
