package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/adupulse/adupulse/analytics"
	"github.com/adupulse/adupulse/dataset"
)

// Production implements the "production" subcommand: the statewide
// housing-production survey table.
func Production(args []string) {
	fs := flag.NewFlagSet("production", flag.ExitOnError)
	top := fs.Int("top", 0, "show only the top N towns by approvals")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: adupulse production [flags]

Show the statewide ADU production survey, sorted by approvals.

Flags:
`)
		fs.PrintDefaults()
	}
	fs.Parse(reorderArgs(args))

	records := dataset.ProductionSurvey
	stats := analytics.ComputeProductionStats(records)

	n := len(records)
	if *top > 0 && *top < n {
		n = *top
	}
	rows := analytics.TopProducers(records, n)

	fmt.Println("Massachusetts ADU Production Survey")
	fmt.Printf("%s applications, %s approved, %s rejected across %d towns (%d with activity)\n\n",
		formatInt(int64(stats.TotalApplications)), formatInt(int64(stats.TotalApproved)),
		formatInt(int64(stats.TotalRejected)), stats.TownsReporting, stats.TownsWithData)

	maxName := len("Town")
	maxApproved := 0
	for _, r := range rows {
		if len(r.Name) > maxName {
			maxName = len(r.Name)
		}
		if r.Approved > maxApproved {
			maxApproved = r.Approved
		}
	}

	rowFmt := fmt.Sprintf("%%-%ds  %%12s  %%8s  %%8s  %%8s  %%8s  %%s\n", maxName)
	fmt.Printf(rowFmt, "Town", "Applications", "Approved", "Rejected", "Detached", "Attached", "")
	fmt.Println(strings.Repeat("─", maxName+2+12+2+8+2+8+2+8+2+8+2+20))

	for _, r := range rows {
		fmt.Printf(rowFmt, r.Name,
			formatInt(int64(r.Applications)), formatInt(int64(r.Approved)),
			formatInt(int64(r.Rejected)), formatInt(int64(r.DetachedApps)),
			formatInt(int64(r.AttachedApps)),
			bar(float64(r.Approved), float64(maxApproved), 20))
	}
}
