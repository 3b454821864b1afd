package analytics

import "github.com/adupulse/adupulse/dataset"

// Per-capita and per-parcel normalizers. Rates are returned unrounded;
// presentation decides precision. The second return is false when the rate
// is undefined (zero population, unknown parcel count) so callers can
// render a dash instead of a misleading zero.

// ApprovalsPerTenThousandResidents is approved permits per 10,000 residents.
func ApprovalsPerTenThousandResidents(town dataset.TownPermitProfile) (float64, bool) {
	if town.Population == 0 {
		return 0, false
	}
	return float64(town.Approved) / float64(town.Population) * 10000, true
}

// ApprovalsPerThousandParcels is approved permits per 1,000 single-family
// parcels; false when the parcel estimate is unknown.
func ApprovalsPerThousandParcels(town dataset.TownPermitProfile) (float64, bool) {
	if town.SingleFamilyParcels == 0 {
		return 0, false
	}
	return float64(town.Approved) / float64(town.SingleFamilyParcels) * 1000, true
}

// SubmittedPerThousandParcels is submissions per 1,000 single-family
// parcels; false when the parcel estimate is unknown.
func SubmittedPerThousandParcels(town dataset.TownPermitProfile) (float64, bool) {
	if town.SingleFamilyParcels == 0 {
		return 0, false
	}
	return float64(town.Submitted) / float64(town.SingleFamilyParcels) * 1000, true
}

// StatewidePerCapitaAverage is the arithmetic mean of per-town approval
// rates per 10,000 residents. Towns with zero population are excluded from
// both sides of the average, not treated as zero.
func StatewidePerCapitaAverage(towns []dataset.TownPermitProfile) float64 {
	sum := 0.0
	n := 0
	for _, t := range towns {
		rate, ok := ApprovalsPerTenThousandResidents(t)
		if !ok {
			continue
		}
		sum += rate
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// StatewidePooledRate is total approvals over total population, per 10,000
// residents, across towns with at least one approval. This is the figure
// the statewide page headlines; it weights large towns more than the
// per-town mean does.
func StatewidePooledRate(towns []dataset.TownPermitProfile) float64 {
	totalApproved, totalPopulation := 0, 0
	for _, t := range towns {
		if t.Approved > 0 && t.Population > 0 {
			totalApproved += t.Approved
			totalPopulation += t.Population
		}
	}
	if totalPopulation == 0 {
		return 0
	}
	return float64(totalApproved) / float64(totalPopulation) * 10000
}
