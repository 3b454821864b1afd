// Package analytics derives every figure ADU Pulse presents from the static
// tables in dataset: status counts, statewide rollups, scorecards, quadrant
// labels, per-capita rates, permit timelines, and CSV projections. All
// functions are pure and total over the dataset's realistic input domain;
// missing cross-references (a town without a compliance profile, a town
// without portal permits) are normal states, not errors.
package analytics

import (
	"fmt"
	"strings"

	"github.com/adupulse/adupulse/dataset"
)

// StatusCounts tallies a provision list by compliance status. The three
// counts always sum to the number of provisions.
type StatusCounts struct {
	Inconsistent int `json:"inconsistent"`
	Review       int `json:"review"`
	Compliant    int `json:"compliant"`
}

// Total returns the number of provisions counted.
func (c StatusCounts) Total() int {
	return c.Inconsistent + c.Review + c.Compliant
}

// CountStatuses reduces a provision list to per-status counts. An empty
// list yields all zeros.
func CountStatuses(provisions []dataset.ComplianceProvision) StatusCounts {
	var counts StatusCounts
	for _, p := range provisions {
		switch p.Status {
		case dataset.StatusInconsistent:
			counts.Inconsistent++
		case dataset.StatusReview:
			counts.Review++
		case dataset.StatusCompliant:
			counts.Compliant++
		}
	}
	return counts
}

// StatewideStats rolls the compliance profiles up to statewide totals.
type StatewideStats struct {
	TotalInconsistent     int `json:"totalInconsistent"`
	TotalAGDisapprovals   int `json:"totalAgDisapprovals"`
	CommunitiesWithIssues int `json:"communitiesWithIssues"`
	TownsTracked          int `json:"townsTracked"`
	CitiesTracked         int `json:"citiesTracked"`
	CommunitiesTracked    int `json:"communitiesTracked"`
}

// ComputeStatewideStats sums inconsistent provisions and AG disapprovals
// across all profiled communities. Order-independent.
func ComputeStatewideStats(all []dataset.TownComplianceProfile) StatewideStats {
	var stats StatewideStats
	stats.CommunitiesTracked = len(all)
	for _, town := range all {
		counts := CountStatuses(town.Provisions)
		stats.TotalInconsistent += counts.Inconsistent
		stats.TotalAGDisapprovals += town.AGDisapprovals
		if counts.Inconsistent > 0 {
			stats.CommunitiesWithIssues++
		}
		if town.Type == dataset.MunicipalityCity {
			stats.CitiesTracked++
		} else {
			stats.TownsTracked++
		}
	}
	return stats
}

// BottomLine builds the one-sentence summary for a compliance profile:
// inconsistency clause, then AG clause, then review clause, each included
// only when its count is nonzero. A profile with no inconsistent and no
// review provisions gets the fixed fully-consistent sentence regardless of
// its AG count; the data never produces that combination, but the short
// circuit is deliberate.
func BottomLine(town dataset.TownComplianceProfile) string {
	counts := CountStatuses(town.Provisions)

	ruleWord := "bylaw"
	if town.Type == dataset.MunicipalityCity {
		ruleWord = "ordinance"
	}

	if counts.Inconsistent == 0 && counts.Review == 0 {
		return fmt.Sprintf("%s's ADU %s appears fully consistent with Chapter 150 and 760 CMR 71.00. No inconsistencies identified.",
			town.Name, ruleWord)
	}

	var parts []string

	if counts.Inconsistent > 0 {
		plural, verb, be := "s", "appear", "are"
		if counts.Inconsistent == 1 {
			plural, verb, be = "", "appears", "is"
		}
		parts = append(parts, fmt.Sprintf(
			"%s has %d provision%s that %s inconsistent with G.L. c. 40A §3 and %s subject to statutory override under Chapter 150",
			town.Name, counts.Inconsistent, plural, verb, be))
	}
	if town.AGDisapprovals > 0 {
		have := "has"
		if town.AGDisapprovals > 1 {
			have = "have"
		}
		parts = append(parts, fmt.Sprintf(
			"%d %s been formally disapproved by the Attorney General",
			town.AGDisapprovals, have))
	}
	if counts.Review > 0 {
		plural, be := "s", "are"
		if counts.Review == 1 {
			plural, be = "", "is"
		}
		parts = append(parts, fmt.Sprintf(
			"%d additional provision%s %s in a legal grey area that may face future challenges",
			counts.Review, plural, be))
	}

	return strings.Join(parts, ". ") + "."
}

// ConsistencyStatus is the traffic-light label a town gets on the rankings
// views: red for any inconsistent provision, yellow for review-only, green
// for fully consistent, gray when no compliance profile exists.
type ConsistencyStatus string

const (
	ConsistencyRed    ConsistencyStatus = "red"
	ConsistencyYellow ConsistencyStatus = "yellow"
	ConsistencyGreen  ConsistencyStatus = "green"
	ConsistencyGray   ConsistencyStatus = "gray"
)

// Consistency classifies a town's compliance profile; profile == nil means
// no bylaw analysis exists and yields gray with zero counts.
func Consistency(profile *dataset.TownComplianceProfile) (ConsistencyStatus, StatusCounts) {
	if profile == nil {
		return ConsistencyGray, StatusCounts{}
	}
	counts := CountStatuses(profile.Provisions)
	switch {
	case counts.Inconsistent > 0:
		return ConsistencyRed, counts
	case counts.Review > 0:
		return ConsistencyYellow, counts
	default:
		return ConsistencyGreen, counts
	}
}
