package cmd

import (
	"context"
	"embed"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/adupulse/adupulse/analytics"
	"github.com/adupulse/adupulse/dataset"
	"github.com/adupulse/adupulse/leads"
	"github.com/adupulse/adupulse/permitapi"
)

//go:embed web.html
var htmlContent embed.FS

// webServer wires the dataset and analytics into the JSON API. permits is
// nil when no permit table is configured; the live endpoint then returns an
// empty list.
type webServer struct {
	cfg     Config
	permits *permitapi.Client
}

// Web implements the "web" subcommand: the dashboard and JSON API.
func Web(args []string) {
	fs := flag.NewFlagSet("web", flag.ExitOnError)
	addr := fs.String("addr", "", "listen address (overrides config)")
	configPath := fs.String("config", DefaultConfigPath, "config file path")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: adupulse web [--addr :8080]\n\nStart the ADU Pulse dashboard.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(reorderArgs(args))

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.WebAddr = *addr
	}

	srv := &webServer{cfg: cfg}
	if cfg.PermitAPIURL != "" {
		srv.permits = permitapi.New(cfg.PermitAPIURL, cfg.PermitAPIKey, cfg.PermitTable)
	}

	fmt.Printf("serving on http://localhost%s\n", cfg.WebAddr)
	if err := http.ListenAndServe(cfg.WebAddr, srv.routes()); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func (s *webServer) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/rankings", s.handleRankings)
	mux.HandleFunc("GET /api/towns/{slug}", s.handleTown)
	mux.HandleFunc("GET /api/compliance", s.handleCompliance)
	mux.HandleFunc("GET /api/compliance/{slug}", s.handleComplianceDetail)
	mux.HandleFunc("GET /api/production", s.handleProduction)
	mux.HandleFunc("GET /api/percapita", s.handlePerCapita)
	mux.HandleFunc("GET /api/permits/live", s.handleLivePermits)
	mux.HandleFunc("POST /api/leads", s.handleLead)
	mux.HandleFunc("GET /api/export/towns.csv", s.handleExportTowns)
	return mux
}

func (s *webServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, _ := htmlContent.ReadFile("web.html")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

func (s *webServer) handleRankings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	grades, err := parseGrades(q.Get("grade"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	quadrant, err := parseQuadrant(q.Get("quadrant"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sortKey := analytics.SortKey(q.Get("sort"))
	if !containsSortKey(analytics.SortKeys, sortKey) {
		sortKey = analytics.SortByGrade
	}

	ranked := analytics.BuildRankings(dataset.Towns, dataset.ComplianceMap())
	ranked = analytics.FilterRankings(ranked, q.Get("county"), grades, quadrant)
	analytics.SortRankings(ranked, sortKey)

	counties := dataset.Counties()
	sort.Strings(counties)

	writeJSON(w, map[string]any{
		"towns":    ranked,
		"counties": counties,
		"grades":   analytics.GradeTally(ranked),
	})
}

// townDetail is the full /api/towns/{slug} payload.
type townDetail struct {
	Town      dataset.TownPermitProfile `json:"town"`
	Scorecard analytics.Scorecard       `json:"scorecard"`

	PerTenThousandResidents string `json:"perTenThousandResidents"`
	PerThousandParcels      string `json:"perThousandParcels"`

	Consistency analytics.ConsistencyStatus `json:"consistency"`
	BottomLine  string                      `json:"bottomLine,omitempty"`

	Timeline *analytics.TimelineStats `json:"timeline,omitempty"`
	Costs    *analytics.CostStats     `json:"costs,omitempty"`
	Permits  []dataset.PortalPermit   `json:"permits,omitempty"`
}

func (s *webServer) handleTown(w http.ResponseWriter, r *http.Request) {
	slug := strings.ToLower(r.PathValue("slug"))
	town, ok := dataset.TownBySlug(slug)
	if !ok {
		http.Error(w, "unknown town", http.StatusNotFound)
		return
	}

	permits := dataset.PortalPermits(slug)
	timeline := analytics.ComputeTimelines(permits)
	card := analytics.ComputeScorecard(town, timeline)

	detail := townDetail{
		Town:     town,
		Timeline: timeline,
		Costs:    analytics.ComputeCostStats(permits),
		Permits:  permits,
	}
	detail.PerTenThousandResidents = analytics.FormatRate(analytics.ApprovalsPerTenThousandResidents(town))
	detail.PerThousandParcels = analytics.FormatRate(analytics.ApprovalsPerThousandParcels(town))

	profile, hasProfile := dataset.ComplianceBySlug(slug)
	var compliance *dataset.TownComplianceProfile
	if hasProfile {
		compliance = &profile
	}
	status, counts := analytics.Consistency(compliance)
	detail.Consistency = status
	if hasProfile {
		detail.BottomLine = analytics.BottomLine(profile)
		card.RulesFrictionScore = analytics.ApplyCompliancePenalty(card.RulesFrictionScore, counts, profile.AGDisapprovals)
		card.RulesFriction = analytics.FrictionFromScore(card.RulesFrictionScore)
		card.OverallScore = analytics.OverallScore(card.RulesFrictionScore, card.OperationalFrictionScore)
		card.Overall = analytics.GradeFromScore(card.OverallScore)
	}
	detail.Scorecard = card

	writeJSON(w, detail)
}

func (s *webServer) handleCompliance(w http.ResponseWriter, r *http.Request) {
	type row struct {
		Slug   string                      `json:"slug"`
		Name   string                      `json:"name"`
		County string                      `json:"county"`
		Status analytics.ConsistencyStatus `json:"status"`
		Counts analytics.StatusCounts      `json:"counts"`
		AG     int                         `json:"agDisapprovals"`
	}
	rows := make([]row, 0, len(dataset.ComplianceProfiles))
	for _, p := range dataset.ComplianceProfiles {
		profile := p
		status, counts := analytics.Consistency(&profile)
		rows = append(rows, row{
			Slug: p.Slug, Name: p.Name, County: p.County,
			Status: status, Counts: counts, AG: p.AGDisapprovals,
		})
	}
	writeJSON(w, map[string]any{
		"statewide":   analytics.ComputeStatewideStats(dataset.ComplianceProfiles),
		"communities": rows,
	})
}

func (s *webServer) handleComplianceDetail(w http.ResponseWriter, r *http.Request) {
	slug := strings.ToLower(r.PathValue("slug"))
	profile, ok := dataset.ComplianceBySlug(slug)
	if !ok {
		http.Error(w, "no bylaw analysis for this town", http.StatusNotFound)
		return
	}
	status, counts := analytics.Consistency(&profile)
	writeJSON(w, map[string]any{
		"profile":    profile,
		"status":     status,
		"counts":     counts,
		"bottomLine": analytics.BottomLine(profile),
	})
}

func (s *webServer) handleProduction(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"stats": analytics.ComputeProductionStats(dataset.ProductionSurvey),
		"towns": analytics.TopProducers(dataset.ProductionSurvey, len(dataset.ProductionSurvey)),
	})
}

func (s *webServer) handlePerCapita(w http.ResponseWriter, r *http.Request) {
	type row struct {
		Slug                    string `json:"slug"`
		Name                    string `json:"name"`
		PerTenThousandResidents string `json:"perTenThousandResidents"`
		PerThousandParcels      string `json:"perThousandParcels"`
		SubmittedPerThousand    string `json:"submittedPerThousandParcels"`
	}
	var rows []row
	for _, town := range dataset.Towns {
		if !town.Responded {
			continue
		}
		rows = append(rows, row{
			Slug:                    town.Slug,
			Name:                    town.Name,
			PerTenThousandResidents: analytics.FormatRate(analytics.ApprovalsPerTenThousandResidents(town)),
			PerThousandParcels:      analytics.FormatRate(analytics.ApprovalsPerThousandParcels(town)),
			SubmittedPerThousand:    analytics.FormatRate(analytics.SubmittedPerThousandParcels(town)),
		})
	}
	writeJSON(w, map[string]any{
		"towns":      rows,
		"meanRate":   analytics.StatewidePerCapitaAverage(dataset.Towns),
		"pooledRate": analytics.StatewidePooledRate(dataset.Towns),
	})
}

// handleLivePermits proxies the hosted permit table. Failures degrade to an
// empty list so the dashboard still renders.
func (s *webServer) handleLivePermits(w http.ResponseWriter, r *http.Request) {
	permits := []permitapi.Permit{}
	if s.permits != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()
		fetched, err := s.permits.RecentPermits(ctx, time.Now().AddDate(0, 0, -90))
		if err != nil {
			fmt.Fprintf(os.Stderr, "live permit fetch failed: %v\n", err)
		} else {
			permits = fetched
		}
	}
	writeJSON(w, map[string]any{"permits": permits})
}

func (s *webServer) handleLead(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Form    string `json:"form"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Role    string `json:"role"`
		Region  string `json:"region"`
		Town    string `json:"town"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	lead := leads.New(body.Form, body.Name, body.Email)
	lead.Role = body.Role
	lead.Region = body.Region
	lead.Town = body.Town
	lead.Message = body.Message

	if err := lead.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if s.cfg.LeadsEndpoint != "" {
		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()
		if err := leads.Submit(ctx, nil, s.cfg.LeadsEndpoint, lead); err != nil {
			fmt.Fprintf(os.Stderr, "lead submission failed: %v\n", err)
			http.Error(w, "lead could not be delivered", http.StatusBadGateway)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]string{"id": lead.ID})
}

func (s *webServer) handleExportTowns(w http.ResponseWriter, r *http.Request) {
	rows := make([]analytics.Row, 0, len(dataset.Towns))
	for _, town := range dataset.Towns {
		rows = append(rows, analytics.TownRow(town))
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="towns.csv"`)
	fmt.Fprint(w, analytics.GenerateCSV(rows))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
