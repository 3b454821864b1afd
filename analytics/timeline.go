package analytics

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/adupulse/adupulse/dataset"
)

// PermitTimeline is one issued permit's applied-to-issued span.
type PermitTimeline struct {
	Address string `json:"address"`
	Days    int    `json:"days"`
	Applied string `json:"applied"`
	Issued  string `json:"issued"`
}

// TimelineStats summarizes review time across a town's issued permits.
type TimelineStats struct {
	MedianDays int              `json:"medianDays"`
	MinDays    int              `json:"minDays"`
	MaxDays    int              `json:"maxDays"`
	AvgDays    int              `json:"avgDays"`
	Count      int              `json:"count"`
	Permits    []PermitTimeline `json:"permits"`
}

// ComputeTimelines derives review-time stats from portal permits. Only
// issued permits with parseable applied and issued dates count; returns nil
// when none qualify.
func ComputeTimelines(permits []dataset.PortalPermit) *TimelineStats {
	var timelines []PermitTimeline
	for _, p := range permits {
		if p.Status != "Issued" || p.Applied == "" || p.Issued == "" {
			continue
		}
		applied, okA := parsePortalDate(p.Applied)
		issued, okI := parsePortalDate(p.Issued)
		if !okA || !okI {
			continue
		}
		days := daysBetween(applied, issued)
		if days <= 0 {
			continue
		}
		timelines = append(timelines, PermitTimeline{
			Address: p.Address,
			Days:    days,
			Applied: p.Applied,
			Issued:  p.Issued,
		})
	}
	if len(timelines) == 0 {
		return nil
	}

	sort.Slice(timelines, func(i, j int) bool { return timelines[i].Days < timelines[j].Days })

	days := make([]int, len(timelines))
	sum := 0
	for i, t := range timelines {
		days[i] = t.Days
		sum += t.Days
	}

	return &TimelineStats{
		MedianDays: medianInt(days),
		MinDays:    days[0],
		MaxDays:    days[len(days)-1],
		AvgDays:    int(math.Round(float64(sum) / float64(len(days)))),
		Count:      len(days),
		Permits:    timelines,
	}
}

// TypeCostStats is the cost breakdown for one ADU type.
type TypeCostStats struct {
	Min   int `json:"min"`
	Max   int `json:"max"`
	Avg   int `json:"avg"`
	Count int `json:"count"`
}

// CostStats summarizes declared construction cost across a town's permits.
type CostStats struct {
	Min    int                      `json:"min"`
	Max    int                      `json:"max"`
	Median int                      `json:"median"`
	Avg    int                      `json:"avg"`
	Count  int                      `json:"count"`
	ByType map[string]TypeCostStats `json:"byType"`
}

// ComputeCostStats derives cost stats over permits with a declared cost;
// returns nil when none have one.
func ComputeCostStats(permits []dataset.PortalPermit) *CostStats {
	var costs []int
	byType := make(map[string]TypeCostStats)
	for _, p := range permits {
		if p.Cost <= 0 {
			continue
		}
		costs = append(costs, p.Cost)

		t := byType[p.Type]
		if t.Count == 0 || p.Cost < t.Min {
			t.Min = p.Cost
		}
		if p.Cost > t.Max {
			t.Max = p.Cost
		}
		t.Avg = (t.Avg*t.Count + p.Cost) / (t.Count + 1)
		t.Count++
		byType[p.Type] = t
	}
	if len(costs) == 0 {
		return nil
	}

	sort.Ints(costs)
	sum := 0
	for _, c := range costs {
		sum += c
	}

	return &CostStats{
		Min:    costs[0],
		Max:    costs[len(costs)-1],
		Median: medianInt(costs),
		Avg:    int(math.Round(float64(sum) / float64(len(costs)))),
		Count:  len(costs),
		ByType: byType,
	}
}

// medianInt returns the median of a sorted slice, averaging (half up) the
// middle pair for even lengths.
func medianInt(sorted []int) int {
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid] + 1) / 2
	}
	return sorted[mid]
}

// parsePortalDate parses the M/D/YY (or M/D/YYYY) dates municipal portals
// publish.
func parsePortalDate(s string) (time.Time, bool) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

func daysBetween(a, b time.Time) int {
	d := b.Sub(a).Hours() / 24
	return int(math.Round(math.Abs(d)))
}
