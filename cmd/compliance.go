package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/adupulse/adupulse/analytics"
	"github.com/adupulse/adupulse/dataset"
)

// Compliance implements the "compliance" subcommand: the statewide bylaw
// consistency rollup, or a per-town provision breakdown when a slug is given.
func Compliance(args []string) {
	fs := flag.NewFlagSet("compliance", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: adupulse compliance [town-slug]

With no argument, print the statewide bylaw consistency rollup.
With a slug, print the full provision-by-provision analysis for that town.

Examples:
  adupulse compliance
  adupulse compliance leicester
`)
	}
	fs.Parse(reorderArgs(args))

	if fs.NArg() > 1 {
		fs.Usage()
		os.Exit(1)
	}
	if fs.NArg() == 1 {
		complianceDetail(strings.ToLower(fs.Arg(0)))
		return
	}

	stats := analytics.ComputeStatewideStats(dataset.ComplianceProfiles)

	fmt.Println("Massachusetts ADU Bylaw Consistency Tracker")
	fmt.Printf("%d communities analyzed (%d towns, %d cities)\n\n",
		stats.CommunitiesTracked, stats.TownsTracked, stats.CitiesTracked)
	fmt.Printf("Provisions inconsistent with Chapter 150: %d\n", stats.TotalInconsistent)
	fmt.Printf("Formal AG disapprovals:                   %d\n", stats.TotalAGDisapprovals)
	fmt.Printf("Communities with inconsistencies:         %d\n\n", stats.CommunitiesWithIssues)

	maxName := len("Community")
	for _, p := range dataset.ComplianceProfiles {
		if len(p.Name) > maxName {
			maxName = len(p.Name)
		}
	}

	rowFmt := fmt.Sprintf("%%-%ds  %%-7s %%12s  %%8s  %%9s  %%3s\n", maxName)
	fmt.Printf(rowFmt, "Community", "Status", "Inconsistent", "Review", "Compliant", "AG")
	fmt.Println(strings.Repeat("─", maxName+2+7+1+12+2+8+2+9+2+3))

	for _, p := range dataset.ComplianceProfiles {
		profile := p
		status, counts := analytics.Consistency(&profile)
		fmt.Printf(rowFmt, p.Name, string(status),
			fmt.Sprint(counts.Inconsistent), fmt.Sprint(counts.Review),
			fmt.Sprint(counts.Compliant), fmt.Sprint(p.AGDisapprovals))
	}
}

func complianceDetail(slug string) {
	profile, ok := dataset.ComplianceBySlug(slug)
	if !ok {
		fmt.Fprintf(os.Stderr, "no bylaw analysis for %q; analyzed communities:\n", slug)
		for _, p := range dataset.ComplianceProfiles {
			fmt.Fprintf(os.Stderr, "  %s\n", p.Slug)
		}
		os.Exit(1)
	}

	ruleWord := "Bylaw"
	if profile.Type == dataset.MunicipalityCity {
		ruleWord = "Ordinance"
	}

	fmt.Printf("%s, %s County — ADU %s Analysis\n", profile.Name, profile.County, ruleWord)
	fmt.Printf("Last reviewed: %s\n", profile.LastReviewed)
	if profile.BylawSource != "" {
		fmt.Printf("Source: %s\n", profile.BylawSource)
	}
	fmt.Println()

	for i, prov := range profile.Provisions {
		marker := "✓"
		switch prov.Status {
		case dataset.StatusInconsistent:
			marker = "✗"
		case dataset.StatusReview:
			marker = "?"
		}
		fmt.Printf("%d. [%s] %s (%s)\n", i+1, marker, prov.Provision, prov.Category)
		fmt.Printf("   State law:  %s\n", prov.StateLaw)
		fmt.Printf("   Local text: %s\n", prov.LocalBylaw)
		if prov.Impact != "" {
			fmt.Printf("   Impact:     %s\n", prov.Impact)
		}
		if prov.AGDecision != "" {
			fmt.Printf("   AG action:  %s\n", prov.AGDecision)
		}
		for _, c := range prov.Citations {
			fmt.Printf("   See: %s (%s)\n", c.Label, c.URL)
		}
		fmt.Println()
	}

	fmt.Println(analytics.BottomLine(profile))
}
