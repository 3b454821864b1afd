package analytics

import (
	"math"
	"testing"

	"github.com/adupulse/adupulse/dataset"
)

func TestApprovalsPerTenThousandResidents(t *testing.T) {
	town := dataset.TownPermitProfile{Approved: 12, Population: 46204}
	got, ok := ApprovalsPerTenThousandResidents(town)
	if !ok {
		t.Fatal("rate undefined for populated town")
	}
	want := 12.0 / 46204 * 10000
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("rate = %f, want %f", got, want)
	}
}

func TestPerCapitaZeroPopulation(t *testing.T) {
	town := dataset.TownPermitProfile{Approved: 5, Population: 0}
	got, ok := ApprovalsPerTenThousandResidents(town)
	if ok {
		t.Errorf("rate defined for zero population: %f", got)
	}
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("sentinel is %f, want finite zero", got)
	}
}

func TestPerParcelUnknown(t *testing.T) {
	town := dataset.TownPermitProfile{Approved: 5, Submitted: 8}
	if _, ok := ApprovalsPerThousandParcels(town); ok {
		t.Error("per-parcel rate defined without a parcel estimate")
	}
	if _, ok := SubmittedPerThousandParcels(town); ok {
		t.Error("submitted-per-parcel rate defined without a parcel estimate")
	}

	town.SingleFamilyParcels = 4000
	got, ok := ApprovalsPerThousandParcels(town)
	if !ok || math.Abs(got-1.25) > 1e-9 {
		t.Errorf("per-parcel rate = %f (ok=%v), want 1.25", got, ok)
	}
}

func TestStatewidePerCapitaAverage(t *testing.T) {
	towns := []dataset.TownPermitProfile{
		{Approved: 10, Population: 10000},  // 10 per 10k
		{Approved: 20, Population: 100000}, // 2 per 10k
		{Approved: 5, Population: 0},       // excluded entirely
	}
	got := StatewidePerCapitaAverage(towns)
	if math.Abs(got-6.0) > 1e-9 {
		t.Errorf("average = %f, want 6.0", got)
	}

	if got := StatewidePerCapitaAverage(nil); got != 0 {
		t.Errorf("empty average = %f, want 0", got)
	}
}

func TestStatewidePooledRate(t *testing.T) {
	towns := []dataset.TownPermitProfile{
		{Approved: 10, Population: 10000},
		{Approved: 20, Population: 100000},
		{Approved: 0, Population: 50000}, // no approvals, excluded
	}
	got := StatewidePooledRate(towns)
	want := 30.0 / 110000 * 10000
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("pooled rate = %f, want %f", got, want)
	}

	// Pooling weights big towns; the mean does not.
	if mean := StatewidePerCapitaAverage(towns[:2]); math.Abs(mean-got) < 1e-9 {
		t.Error("pooled rate should differ from mean of rates here")
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(2.649, true); got != "2.6" {
		t.Errorf("FormatRate = %q, want 2.6", got)
	}
	if got := FormatRate(0, false); got != "—" {
		t.Errorf("FormatRate undefined = %q, want dash", got)
	}
}
