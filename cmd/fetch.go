package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adupulse/adupulse/permitapi"
)

// Fetch implements the "fetch" subcommand: download live permit rows from
// the hosted permit table into per-municipality JSON files.
func Fetch(args []string) {
	fs := flag.NewFlagSet("fetch", flag.ExitOnError)
	dir := fs.String("dir", ".", "output directory for JSON files")
	days := fs.Int("days", 90, "fetch permits filed within the last N days")
	configPath := fs.String("config", DefaultConfigPath, "config file path")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: adupulse fetch [flags]

Download recent permit filings from the hosted permit table.

Flags:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
The permit table URL and key come from %s or the
ADU_PULSE_API_KEY environment variable.
`, DefaultConfigPath)
	}
	fs.Parse(reorderArgs(args))

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg.PermitAPIURL == "" {
		fmt.Fprintf(os.Stderr, "no permit_api_url configured; set it in %s\n", *configPath)
		os.Exit(1)
	}

	if err := os.MkdirAll(*dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating output directory: %v\n", err)
		os.Exit(1)
	}

	client := permitapi.New(cfg.PermitAPIURL, cfg.PermitAPIKey, cfg.PermitTable)
	since := time.Now().AddDate(0, 0, -*days)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fmt.Fprintf(os.Stderr, "fetching permits filed since %s\n", since.Format("2006-01-02"))
	permits, err := client.RecentPermits(ctx, since)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error fetching permits: %v\n", err)
		os.Exit(1)
	}
	if len(permits) == 0 {
		fmt.Fprintf(os.Stderr, "no permits filed in the last %d days\n", *days)
		os.Exit(1)
	}

	byTown := make(map[string][]permitapi.Permit)
	for _, p := range permits {
		byTown[p.Municipality] = append(byTown[p.Municipality], p)
	}

	towns := make([]string, 0, len(byTown))
	for t := range byTown {
		towns = append(towns, t)
	}
	sort.Strings(towns)

	for _, town := range towns {
		name := strings.ToLower(strings.ReplaceAll(town, " ", "-"))
		outPath := filepath.Join(*dir, fmt.Sprintf("permits-%s.json", name))

		data, err := json.MarshalIndent(byTown[town], "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error encoding %s: %v\n", town, err)
			os.Exit(1)
		}
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "wrote %s (%d permits)\n", outPath, len(byTown[town]))
	}

	fmt.Fprintf(os.Stderr, "Done: %d permits across %d municipalities\n", len(permits), len(towns))
}
