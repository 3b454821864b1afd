package cmd

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/adupulse/adupulse/analytics"
	"github.com/adupulse/adupulse/dataset"
)

// Export implements the "export" subcommand: write the survey or portal
// permit tables as CSV.
func Export(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	what := fs.String("table", "towns", "table to export: towns, permits, rankings")
	out := fs.String("out", "", "output file (default stdout)")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: adupulse export [flags]

Export a dataset table as CSV.

Flags:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  adupulse export --table towns --out towns.csv
  adupulse export --table permits
  adupulse export --table rankings --out rankings.csv
`)
	}
	fs.Parse(reorderArgs(args))

	var csvText string
	switch *what {
	case "towns":
		rows := make([]analytics.Row, 0, len(dataset.Towns))
		for _, town := range dataset.Towns {
			rows = append(rows, analytics.TownRow(town))
		}
		csvText = analytics.GenerateCSV(rows)
	case "permits":
		slugs := dataset.PortalTowns()
		sort.Strings(slugs)
		var rows []analytics.Row
		for _, slug := range slugs {
			town, _ := dataset.TownBySlug(slug)
			for _, p := range dataset.PortalPermits(slug) {
				rows = append(rows, analytics.PermitRow(town.Name, p))
			}
		}
		csvText = analytics.GenerateCSV(rows)
	case "rankings":
		ranked := analytics.BuildRankings(dataset.Towns, dataset.ComplianceMap())
		rows := make([]analytics.Row, 0, len(ranked))
		for _, r := range ranked {
			rows = append(rows, analytics.RankingRow(r))
		}
		csvText = analytics.GenerateCSV(rows)
	default:
		fmt.Fprintf(os.Stderr, "invalid --table %q; valid options: towns, permits, rankings\n", *what)
		os.Exit(1)
	}

	if *out == "" {
		fmt.Print(csvText)
		return
	}
	if err := os.WriteFile(*out, []byte(csvText), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing CSV: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *out)
}
