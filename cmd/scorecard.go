package cmd

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/adupulse/adupulse/analytics"
	"github.com/adupulse/adupulse/dataset"
)

// Scorecard implements the "scorecard" subcommand: the full friction report
// for one municipality.
func Scorecard(args []string) {
	fs := flag.NewFlagSet("scorecard", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: adupulse scorecard <town-slug>

Show the permitting friction scorecard for one municipality.

Examples:
  adupulse scorecard plymouth
  adupulse scorecard somerville
`)
	}
	fs.Parse(reorderArgs(args))

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}
	slug := strings.ToLower(fs.Arg(0))

	town, ok := dataset.TownBySlug(slug)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown town %q; known slugs:\n", slug)
		for _, t := range dataset.Towns {
			fmt.Fprintf(os.Stderr, "  %s\n", t.Slug)
		}
		os.Exit(1)
	}

	permits := dataset.PortalPermits(slug)
	timeline := analytics.ComputeTimelines(permits)
	card := analytics.ComputeScorecard(town, timeline)

	profile, hasProfile := dataset.ComplianceBySlug(slug)
	var compliance *dataset.TownComplianceProfile
	if hasProfile {
		compliance = &profile
	}
	status, counts := analytics.Consistency(compliance)

	rulesScore := card.RulesFrictionScore
	if hasProfile {
		rulesScore = analytics.ApplyCompliancePenalty(rulesScore, counts, profile.AGDisapprovals)
	}
	overall := analytics.OverallScore(rulesScore, card.OperationalFrictionScore)

	fmt.Printf("%s, %s County — ADU Permitting Scorecard\n\n", town.Name, town.County)
	fmt.Printf("Overall grade:        %s (%d/100)\n", analytics.GradeFromScore(overall), overall)
	fmt.Printf("Rules friction:       %-6s (%d/100)\n", analytics.FrictionFromScore(rulesScore), rulesScore)
	fmt.Printf("Operational friction: %-6s (%d/100)\n\n", card.OperationalFriction, card.OperationalFrictionScore)

	fmt.Printf("Applications: %s submitted, %s approved, %s denied, %s pending (%.1f%% approval)\n",
		formatInt(int64(town.Submitted)), formatInt(int64(town.Approved)),
		formatInt(int64(town.Denied)), formatInt(int64(town.Pending)), town.ApprovalRate)

	if rate, ok := analytics.ApprovalsPerTenThousandResidents(town); ok {
		fmt.Printf("Approvals per 10,000 residents: %s\n", analytics.FormatRate(rate, ok))
	}
	if rate, ok := analytics.ApprovalsPerThousandParcels(town); ok {
		fmt.Printf("Approvals per 1,000 single-family parcels: %s\n", analytics.FormatRate(rate, ok))
	}

	fmt.Println("\nFactors:")
	for _, f := range card.Factors {
		fmt.Printf("  • %s\n", f)
	}

	if hasProfile {
		fmt.Printf("\nBylaw consistency: %s", status)
		if counts.Inconsistent > 0 || counts.Review > 0 {
			fmt.Printf(" (%d inconsistent, %d under review, %d AG disapprovals; score penalty %d)",
				counts.Inconsistent, counts.Review, profile.AGDisapprovals,
				card.RulesFrictionScore-rulesScore)
		}
		fmt.Println()
		fmt.Printf("\n%s\n", analytics.BottomLine(profile))
	} else {
		fmt.Println("\nBylaw consistency: not yet analyzed")
	}

	if timeline != nil {
		fmt.Printf("\nReview timelines (%d issued permits): median %d days, range %d–%d, avg %d\n",
			timeline.Count, timeline.MedianDays, timeline.MinDays, timeline.MaxDays, timeline.AvgDays)
		if costs := analytics.ComputeCostStats(permits); costs != nil {
			fmt.Printf("Declared costs (%d permits): median $%s, range $%s–$%s\n",
				costs.Count, formatInt(int64(costs.Median)),
				formatInt(int64(costs.Min)), formatInt(int64(costs.Max)))
			types := make([]string, 0, len(costs.ByType))
			for t := range costs.ByType {
				types = append(types, t)
			}
			sort.Strings(types)
			if len(types) > 1 {
				for _, t := range types {
					s := costs.ByType[t]
					fmt.Printf("  %-10s avg $%s over %d permits\n", t, formatInt(int64(s.Avg)), s.Count)
				}
			}
		}
	}

	if town.Source != "" {
		fmt.Printf("\nSource: %s\n", town.Source)
	}
}
