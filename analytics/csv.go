package analytics

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/adupulse/adupulse/dataset"
)

// Field is one named CSV cell; Row preserves field order, which becomes
// the header order.
type Field struct {
	Name  string
	Value string
}

// Row is an ordered list of fields. All rows passed to GenerateCSV must
// share the same field layout.
type Row []Field

// GenerateCSV renders rows as RFC 4180 CSV: header from the first row's
// field names, one record per row, values quoted and escaped as needed.
// Empty input yields the empty string.
func GenerateCSV(rows []Row) string {
	if len(rows) == 0 {
		return ""
	}

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := make([]string, len(rows[0]))
	for i, f := range rows[0] {
		header[i] = f.Name
	}
	w.Write(header)

	record := make([]string, len(header))
	for _, row := range rows {
		for i, f := range row {
			record[i] = f.Value
		}
		w.Write(record)
	}
	w.Flush()
	return sb.String()
}

// TownRow projects a survey row into its CSV layout.
func TownRow(town dataset.TownPermitProfile) Row {
	perParcel := "N/A"
	if v, ok := ApprovalsPerThousandParcels(town); ok {
		perParcel = strconv.FormatFloat(v, 'f', 2, 64)
	}
	return Row{
		{"Town", town.Name},
		{"County", town.County},
		{"Population", strconv.Itoa(town.Population)},
		{"Single Family Parcels (est.)", orNA(town.SingleFamilyParcels)},
		{"Applications Submitted", strconv.Itoa(town.Submitted)},
		{"Approved", strconv.Itoa(town.Approved)},
		{"Denied", strconv.Itoa(town.Denied)},
		{"Pending", strconv.Itoa(town.Pending)},
		{"Approval Rate (%)", strconv.FormatFloat(town.ApprovalRate, 'f', 1, 64)},
		{"Approvals per 1K Parcels", perParcel},
		{"By Right", yesNo(town.ByRight)},
		{"Avg Rent", orNA(town.AvgRent)},
		{"Median Home Value", orNA(town.MedianHome)},
		{"Source", town.Source},
	}
}

// PermitRow projects a portal permit into its CSV layout.
func PermitRow(townName string, p dataset.PortalPermit) Row {
	return Row{
		{"Town", townName},
		{"Permit", p.Permit},
		{"Address", p.Address},
		{"Applied", p.Applied},
		{"Issued", p.Issued},
		{"Status", p.Status},
		{"Est. Cost", orNA(p.Cost)},
		{"Sq Ft", orNA(p.SqFt)},
		{"Type", p.Type},
		{"Contractor", p.Contractor},
		{"Notes", p.Notes},
	}
}

// RankingRow projects a rankings row into its CSV layout.
func RankingRow(r RankedTown) Row {
	quadrant := string(r.Quadrant)
	if quadrant == "" {
		quadrant = "N/A"
	}
	return Row{
		{"Town", r.Name},
		{"County", r.County},
		{"Grade", string(r.Grade)},
		{"Score", strconv.Itoa(r.OverallScore)},
		{"Approved", strconv.Itoa(r.Approved)},
		{"Approval Rate (%)", strconv.FormatFloat(r.ApprovalRate, 'f', 1, 64)},
		{"Consistency", string(r.Consistency)},
		{"Inconsistent Provisions", strconv.Itoa(r.Inconsistent)},
		{"Quadrant", quadrant},
	}
}

func orNA(v int) string {
	if v == 0 {
		return "N/A"
	}
	return strconv.Itoa(v)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// FormatRate renders a normalized rate to one decimal, or a dash when the
// rate is undefined.
func FormatRate(v float64, ok bool) string {
	if !ok {
		return "—"
	}
	return fmt.Sprintf("%.1f", v)
}
