package analytics

import (
	"sort"
	"strings"

	"github.com/adupulse/adupulse/dataset"
)

// RankedTown is one row of the rankings view: the survey row joined with
// its compliance profile (when one exists), graded and quadrant-classified.
type RankedTown struct {
	Slug         string            `json:"slug"`
	Name         string            `json:"name"`
	County       string            `json:"county"`
	Grade        Grade             `json:"grade"`
	OverallScore int               `json:"overallScore"`
	Approved     int               `json:"approved"`
	ApprovalRate float64           `json:"approvalRate"`
	Consistency  ConsistencyStatus `json:"consistency"`
	Inconsistent int               `json:"inconsistent"`
	Quadrant     Quadrant          `json:"quadrant,omitempty"`
}

// BuildRankings joins the survey table with the compliance profiles and
// grades every responding town with at least one submission. Towns with a
// compliance profile have their rules score penalized per provision before
// grading; towns without one are graded on the base score alone.
func BuildRankings(towns []dataset.TownPermitProfile, compliance map[string]dataset.TownComplianceProfile) []RankedTown {
	var ranked []RankedTown
	for _, town := range towns {
		if !town.Responded || town.Submitted == 0 {
			continue
		}

		base := ComputeScorecard(town, ComputeTimelines(dataset.PortalPermits(town.Slug)))
		rulesScore := base.RulesFrictionScore

		var profile *dataset.TownComplianceProfile
		if p, ok := compliance[town.Slug]; ok {
			profile = &p
		}
		status, counts := Consistency(profile)
		if profile != nil {
			rulesScore = ApplyCompliancePenalty(rulesScore, counts, profile.AGDisapprovals)
		}

		overall := OverallScore(rulesScore, base.OperationalFrictionScore)

		ranked = append(ranked, RankedTown{
			Slug:         town.Slug,
			Name:         town.Name,
			County:       town.County,
			Grade:        GradeFromScore(overall),
			OverallScore: overall,
			Approved:     town.Approved,
			ApprovalRate: town.ApprovalRate,
			Consistency:  status,
			Inconsistent: counts.Inconsistent,
			Quadrant:     ClassifyQuadrant(town.ApprovalRate, counts.Inconsistent, profile != nil),
		})
	}

	SortRankings(ranked, SortByGrade)
	return ranked
}

// SortKey selects a rankings sort order.
type SortKey string

const (
	SortByGrade    SortKey = "grade"
	SortByApproved SortKey = "approved"
	SortByRate     SortKey = "rate"
	SortByName     SortKey = "alpha"
)

// SortKeys lists the valid sort orders.
var SortKeys = []SortKey{SortByGrade, SortByApproved, SortByRate, SortByName}

// SortRankings orders rows in place; ties break alphabetically so output is
// stable run to run.
func SortRankings(rows []RankedTown, key SortKey) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch key {
		case SortByApproved:
			if a.Approved != b.Approved {
				return a.Approved > b.Approved
			}
		case SortByRate:
			if a.ApprovalRate != b.ApprovalRate {
				return a.ApprovalRate > b.ApprovalRate
			}
		case SortByName:
			return a.Name < b.Name
		default:
			if a.OverallScore != b.OverallScore {
				return a.OverallScore > b.OverallScore
			}
		}
		return a.Name < b.Name
	})
}

// FilterRankings narrows rows by county (exact, case-insensitive), grade
// set, and quadrant. Empty filters match everything.
func FilterRankings(rows []RankedTown, county string, grades map[Grade]bool, quadrant Quadrant) []RankedTown {
	var out []RankedTown
	for _, r := range rows {
		if county != "" && !strings.EqualFold(r.County, county) {
			continue
		}
		if len(grades) > 0 && !grades[r.Grade] {
			continue
		}
		if quadrant != QuadrantNone && r.Quadrant != quadrant {
			continue
		}
		out = append(out, r)
	}
	return out
}

// GradeTally counts rows per letter grade.
func GradeTally(rows []RankedTown) map[Grade]int {
	tally := make(map[Grade]int)
	for _, r := range rows {
		tally[r.Grade]++
	}
	return tally
}

// ProductionStats rolls up the housing-production survey.
type ProductionStats struct {
	TotalApplications int `json:"totalApplications"`
	TotalApproved     int `json:"totalApproved"`
	TotalRejected     int `json:"totalRejected"`
	TownsReporting    int `json:"townsReporting"`
	TownsWithData     int `json:"townsWithData"`
}

// ComputeProductionStats sums the survey; TownsWithData counts towns with
// at least one application.
func ComputeProductionStats(records []dataset.ProductionRecord) ProductionStats {
	stats := ProductionStats{TownsReporting: len(records)}
	for _, r := range records {
		stats.TotalApplications += r.Applications
		stats.TotalApproved += r.Approved
		stats.TotalRejected += r.Rejected
		if r.Applications > 0 {
			stats.TownsWithData++
		}
	}
	return stats
}

// TopProducers returns the n records with the most approvals, ties broken
// by name.
func TopProducers(records []dataset.ProductionRecord, n int) []dataset.ProductionRecord {
	sorted := make([]dataset.ProductionRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Approved != sorted[j].Approved {
			return sorted[i].Approved > sorted[j].Approved
		}
		return sorted[i].Name < sorted[j].Name
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
