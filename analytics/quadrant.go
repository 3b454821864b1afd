package analytics

// Quadrant crosses bylaw consistency with permit-approval outcomes. A town
// lands in exactly one quadrant when a compliance profile exists for it;
// QuadrantNone otherwise.
type Quadrant string

const (
	QuadrantNone            Quadrant = ""
	QuadrantGreenLight      Quadrant = "Green Light"
	QuadrantPaperTiger      Quadrant = "Paper Tiger"
	QuadrantPipelineProblem Quadrant = "Pipeline Problem"
	QuadrantWalledOff       Quadrant = "Walled Off"
)

// Quadrants lists the four labels in display order.
var Quadrants = []Quadrant{
	QuadrantGreenLight,
	QuadrantPaperTiger,
	QuadrantPipelineProblem,
	QuadrantWalledOff,
}

// highApprovalThreshold splits the approval-rate axis of the quadrant grid.
const highApprovalThreshold = 65

// ClassifyQuadrant places a town on the 2x2 grid: approval rate >= 65
// against zero inconsistent provisions. Exhaustive over both flags.
func ClassifyQuadrant(approvalRate float64, inconsistent int, hasCompliance bool) Quadrant {
	if !hasCompliance {
		return QuadrantNone
	}
	highApproval := approvalRate >= highApprovalThreshold
	clean := inconsistent == 0
	switch {
	case clean && highApproval:
		return QuadrantGreenLight
	case !clean && highApproval:
		return QuadrantPaperTiger
	case clean && !highApproval:
		return QuadrantPipelineProblem
	default:
		return QuadrantWalledOff
	}
}
