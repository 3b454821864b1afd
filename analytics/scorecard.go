package analytics

import (
	"fmt"
	"math"

	"github.com/adupulse/adupulse/dataset"
)

// Grade is the A–F letter summarizing a town's permitting friction.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// Grades lists the letters best to worst.
var Grades = []Grade{GradeA, GradeB, GradeC, GradeD, GradeF}

// GradeFromScore maps an overall score to a letter. Bands are inclusive on
// their lower bound: [80,100] A, [65,80) B, [50,65) C, [35,50) D, else F.
// Callers clamp to [0,100] before calling.
func GradeFromScore(score int) Grade {
	switch {
	case score >= 80:
		return GradeA
	case score >= 65:
		return GradeB
	case score >= 50:
		return GradeC
	case score >= 35:
		return GradeD
	default:
		return GradeF
	}
}

// FrictionLevel is the coarse label shown next to each sub-score.
type FrictionLevel string

const (
	FrictionLow    FrictionLevel = "Low"
	FrictionMedium FrictionLevel = "Medium"
	FrictionHigh   FrictionLevel = "High"
)

// FrictionFromScore maps a sub-score to its label: >=65 Low, >=40 Medium,
// else High.
func FrictionFromScore(score int) FrictionLevel {
	switch {
	case score >= 65:
		return FrictionLow
	case score >= 40:
		return FrictionMedium
	default:
		return FrictionHigh
	}
}

// Scorecard is the derived grade for one town, recomputed on demand and
// never stored. Higher scores mean less friction.
type Scorecard struct {
	Overall      Grade `json:"overall"`
	OverallScore int   `json:"overallScore"`

	RulesFriction      FrictionLevel `json:"rulesFriction"`
	RulesFrictionScore int           `json:"rulesFrictionScore"`

	OperationalFriction      FrictionLevel `json:"operationalFriction"`
	OperationalFrictionScore int           `json:"operationalFrictionScore"`

	Factors []string `json:"factors"`
}

// Compliance penalty schedule, per item. Severity order is inconsistent >
// AG disapproval > review; the magnitudes are policy constants kept for
// parity with published scores.
const (
	penaltyInconsistent  = 8
	penaltyAGDisapproval = 5
	penaltyReview        = 3
)

// ApplyCompliancePenalty deducts from a base rules-friction score for each
// inconsistent provision, review provision, and AG disapproval, clamped at
// zero. Use only when a compliance profile exists; towns without one keep
// their base score.
func ApplyCompliancePenalty(rulesScore int, counts StatusCounts, agDisapprovals int) int {
	rulesScore -= counts.Inconsistent * penaltyInconsistent
	rulesScore -= counts.Review * penaltyReview
	rulesScore -= agDisapprovals * penaltyAGDisapproval
	if rulesScore < 0 {
		rulesScore = 0
	}
	return rulesScore
}

// ComputeScorecard derives the two sub-scores and overall grade for a town.
// timeline may be nil; when absent the operational score estimates review
// speed from the pending ratio instead. Higher approval rates never lower
// the operational score, all else equal.
func ComputeScorecard(town dataset.TownPermitProfile, timeline *TimelineStats) Scorecard {
	// Rules friction: by-right status, approval rate, denials.
	rulesScore := 0
	if town.ByRight {
		rulesScore += 40
	}
	switch {
	case town.ApprovalRate >= 80:
		rulesScore += 40
	case town.ApprovalRate >= 60:
		rulesScore += 25
	case town.ApprovalRate >= 40:
		rulesScore += 15
	default:
		rulesScore += 5
	}
	switch {
	case town.Denied == 0:
		rulesScore += 20
	case town.Denied <= 2:
		rulesScore += 10
	}

	// Operational friction: pending backlog, review speed, volume.
	opsScore := 0
	pendingRate := 0.0
	if town.Submitted > 0 {
		pendingRate = float64(town.Pending) / float64(town.Submitted)
	}
	switch {
	case pendingRate <= 0.1:
		opsScore += 30
	case pendingRate <= 0.25:
		opsScore += 20
	case pendingRate <= 0.4:
		opsScore += 10
	}

	if timeline != nil {
		switch {
		case timeline.MedianDays <= 30:
			opsScore += 40
		case timeline.MedianDays <= 60:
			opsScore += 30
		case timeline.MedianDays <= 90:
			opsScore += 20
		default:
			opsScore += 10
		}
	} else {
		// No timeline data; estimate from the pending ratio.
		if pendingRate <= 0.15 {
			opsScore += 25
		} else {
			opsScore += 15
		}
	}

	switch {
	case town.Submitted >= 15:
		opsScore += 30
	case town.Submitted >= 8:
		opsScore += 20
	default:
		opsScore += 10
	}

	if rulesScore > 100 {
		rulesScore = 100
	}
	if opsScore > 100 {
		opsScore = 100
	}
	overall := OverallScore(rulesScore, opsScore)

	var factors []string
	if town.ByRight {
		factors = append(factors, "By-right ADU construction enabled")
	} else {
		factors = append(factors, "May require special permit or variance")
	}
	switch {
	case town.ApprovalRate >= 80:
		factors = append(factors, fmt.Sprintf("High approval rate (%.0f%%)", town.ApprovalRate))
	case town.ApprovalRate >= 50:
		factors = append(factors, fmt.Sprintf("Moderate approval rate (%.0f%%)", town.ApprovalRate))
	default:
		factors = append(factors, fmt.Sprintf("Low approval rate (%.0f%%) — higher friction expected", town.ApprovalRate))
	}
	if town.Denied == 0 {
		factors = append(factors, "Zero denials on record")
	}
	if pendingRate > 0.35 {
		factors = append(factors, fmt.Sprintf("High pending backlog (%d%% of applications)", int(math.Round(pendingRate*100))))
	}
	if timeline != nil {
		factors = append(factors, fmt.Sprintf("Median review time: %d days", timeline.MedianDays))
	}
	switch {
	case town.Submitted >= 20:
		factors = append(factors, "High permit volume — experienced building department")
	case town.Submitted <= 5:
		factors = append(factors, "Low permit volume — limited track record")
	}

	return Scorecard{
		Overall:                  GradeFromScore(overall),
		OverallScore:             overall,
		RulesFriction:            FrictionFromScore(rulesScore),
		RulesFrictionScore:       rulesScore,
		OperationalFriction:      FrictionFromScore(opsScore),
		OperationalFrictionScore: opsScore,
		Factors:                  factors,
	}
}

// OverallScore is the unweighted average of the two sub-scores, rounded
// half up.
func OverallScore(rulesScore, opsScore int) int {
	return (rulesScore + opsScore + 1) / 2
}
