package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/adupulse/adupulse/analytics"
	"github.com/adupulse/adupulse/dataset"
)

// Rankings implements the "rankings" subcommand: the statewide grade table.
func Rankings(args []string) {
	fs := flag.NewFlagSet("rankings", flag.ExitOnError)
	county := fs.String("county", "", "county filter (e.g. Middlesex)")
	gradeFlag := fs.String("grade", "", "comma-separated grade filter (e.g. A,B)")
	quadrantFlag := fs.String("quadrant", "", "quadrant filter: green-light, paper-tiger, pipeline-problem, walled-off")
	sortFlag := fs.String("sort", "grade", "sort order: grade, approved, rate, alpha")
	csvOut := fs.String("csv", "", "write CSV to this file instead of printing a table")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: adupulse rankings [flags]

Rank responding municipalities by permitting friction.

Flags:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  adupulse rankings
  adupulse rankings --county Middlesex --sort rate
  adupulse rankings --grade A,B --csv rankings.csv
  adupulse rankings --quadrant walled-off
`)
	}
	fs.Parse(reorderArgs(args))

	sortKey := analytics.SortKey(*sortFlag)
	if !containsSortKey(analytics.SortKeys, sortKey) {
		fmt.Fprintf(os.Stderr, "invalid --sort %q; valid options: grade, approved, rate, alpha\n", *sortFlag)
		os.Exit(1)
	}

	grades, err := parseGrades(*gradeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	quadrant, err := parseQuadrant(*quadrantFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ranked := analytics.BuildRankings(dataset.Towns, dataset.ComplianceMap())
	ranked = analytics.FilterRankings(ranked, *county, grades, quadrant)
	analytics.SortRankings(ranked, sortKey)

	if len(ranked) == 0 {
		fmt.Fprintf(os.Stderr, "no towns matched the given filters\n")
		os.Exit(1)
	}

	if *csvOut != "" {
		rows := make([]analytics.Row, 0, len(ranked))
		for _, r := range ranked {
			rows = append(rows, analytics.RankingRow(r))
		}
		if err := os.WriteFile(*csvOut, []byte(analytics.GenerateCSV(rows)), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "error writing CSV: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%d towns)\n", *csvOut, len(ranked))
		return
	}

	printRankingsTable(ranked)
}

func printRankingsTable(ranked []analytics.RankedTown) {
	maxName := len("Town")
	for _, r := range ranked {
		if len(r.Name) > maxName {
			maxName = len(r.Name)
		}
	}

	fmt.Println("Massachusetts ADU Permitting Rankings")
	fmt.Printf("%d municipalities with permit activity\n\n", len(ranked))

	rowFmt := fmt.Sprintf("%%-%ds  %%-11s %%5s  %%5s  %%8s  %%8s  %%-12s %%s\n", maxName)
	fmt.Printf(rowFmt, "Town", "County", "Grade", "Score", "Approved", "Rate", "Consistency", "Quadrant")
	fmt.Println(strings.Repeat("─", maxName+2+11+1+5+2+5+2+8+2+8+2+12+1+16))

	for _, r := range ranked {
		quadrant := string(r.Quadrant)
		if quadrant == "" {
			quadrant = "-"
		}
		fmt.Printf(rowFmt,
			r.Name, r.County, string(r.Grade), fmt.Sprint(r.OverallScore),
			formatInt(int64(r.Approved)),
			fmt.Sprintf("%.1f%%", r.ApprovalRate),
			string(r.Consistency), quadrant)
	}

	tally := analytics.GradeTally(ranked)
	fmt.Println()
	var parts []string
	for _, g := range analytics.Grades {
		if tally[g] > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", g, tally[g]))
		}
	}
	fmt.Printf("Grades: %s\n", strings.Join(parts, "  "))
}

func parseGrades(s string) (map[analytics.Grade]bool, error) {
	if s == "" {
		return nil, nil
	}
	grades := make(map[analytics.Grade]bool)
	for _, part := range strings.Split(s, ",") {
		g := analytics.Grade(strings.ToUpper(strings.TrimSpace(part)))
		valid := false
		for _, known := range analytics.Grades {
			if g == known {
				valid = true
				break
			}
		}
		if !valid {
			return nil, fmt.Errorf("invalid grade %q; valid options: A, B, C, D, F", part)
		}
		grades[g] = true
	}
	return grades, nil
}

func parseQuadrant(s string) (analytics.Quadrant, error) {
	switch s {
	case "":
		return analytics.QuadrantNone, nil
	case "green-light":
		return analytics.QuadrantGreenLight, nil
	case "paper-tiger":
		return analytics.QuadrantPaperTiger, nil
	case "pipeline-problem":
		return analytics.QuadrantPipelineProblem, nil
	case "walled-off":
		return analytics.QuadrantWalledOff, nil
	}
	return analytics.QuadrantNone, fmt.Errorf("invalid --quadrant %q; valid options: green-light, paper-tiger, pipeline-problem, walled-off", s)
}

func containsSortKey(keys []analytics.SortKey, k analytics.SortKey) bool {
	for _, v := range keys {
		if v == k {
			return true
		}
	}
	return false
}
