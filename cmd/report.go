package cmd

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/adupulse/adupulse/analytics"
	"github.com/adupulse/adupulse/dataset"
)

const (
	pageWidth  = 8.5 * vg.Inch
	pageHeight = 11 * vg.Inch
	pdfMargin  = 0.75 * vg.Inch
)

var (
	chartBlue   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	chartGreen  = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	chartOrange = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	chartRed    = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	chartGray   = color.RGBA{R: 127, G: 127, B: 127, A: 255}
)

// Report implements the "report" subcommand: the statewide PDF report.
func Report(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	out := fs.String("out", "adu-report.pdf", "output PDF file path")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: adupulse report [flags]

Generate the statewide PDF report: permitting rankings, the
approval/consistency quadrant chart, and per-capita approval rates.

Flags:
`)
		fs.PrintDefaults()
	}
	fs.Parse(reorderArgs(args))

	ranked := analytics.BuildRankings(dataset.Towns, dataset.ComplianceMap())
	if len(ranked) == 0 {
		fmt.Fprintf(os.Stderr, "no towns to report on\n")
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "adupulse-report")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creating temp directory: %v\n", err)
		os.Exit(1)
	}
	defer os.RemoveAll(tmpDir)

	sections := []struct {
		name   string
		render func(string) error
	}{
		{"rankings.pdf", func(path string) error { return renderRankingsPDF(path, ranked) }},
		{"quadrant.pdf", func(path string) error { return renderQuadrantPDF(path, ranked) }},
		{"percapita.pdf", func(path string) error { return renderPerCapitaPDF(path) }},
	}

	var paths []string
	for _, s := range sections {
		path := filepath.Join(tmpDir, s.name)
		if err := s.render(path); err != nil {
			fmt.Fprintf(os.Stderr, "error rendering %s: %v\n", s.name, err)
			os.Exit(1)
		}
		paths = append(paths, path)
	}

	if err := api.MergeCreateFile(paths, *out, false, model.NewDefaultConfiguration()); err != nil {
		fmt.Fprintf(os.Stderr, "error merging report: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d towns)\n", *out, len(ranked))
}

const (
	reportRowHeight = 0.30 * vg.Inch
	nameColWidth    = 1.8 * vg.Inch
)

func renderRankingsPDF(path string, ranked []analytics.RankedTown) error {
	c := vgpdf.New(pageWidth, pageHeight)

	usableW := pageWidth - 2*pdfMargin
	usableH := pageHeight - 2*pdfMargin
	headerHeight := 1.0 * vg.Inch
	maxRowsPerPage := int((usableH - headerHeight) / reportRowHeight)

	cols := []struct {
		label string
		width vg.Length
	}{
		{"Town", nameColWidth},
		{"County", 1.3 * vg.Inch},
		{"Grade", 0.6 * vg.Inch},
		{"Score", 0.6 * vg.Inch},
		{"Approved", 0.9 * vg.Inch},
		{"Rate", 0.7 * vg.Inch},
		{"Consistency", 1.0 * vg.Inch},
	}

	pageNum := 0
	rowIdx := 0
	for rowIdx < len(ranked) {
		if pageNum > 0 {
			c.NextPage()
		}
		pageNum++

		dc := draw.New(c)
		area := draw.Crop(dc, pdfMargin, -pdfMargin, pdfMargin, -pdfMargin)

		var yTop vg.Length
		if pageNum == 1 {
			yTop = area.Max.Y
			fillText(area, "Massachusetts ADU Permitting Rankings", vg.Points(14), area.Min.X, yTop-vg.Points(14), color.Black)
			fillText(area, fmt.Sprintf("%d municipalities with permit activity", len(ranked)), vg.Points(10), area.Min.X, yTop-0.35*vg.Inch, color.Gray{Y: 100})

			headerY := yTop - 0.6*vg.Inch
			x := area.Min.X
			for _, col := range cols {
				fillText(area, col.label, vg.Points(10), x, headerY, color.Gray{Y: 80})
				x += col.width
			}
			sepY := headerY - vg.Points(6)
			strokeHLine(area, area.Min.X, area.Min.X+usableW, sepY, color.Gray{Y: 180})
			yTop = sepY - vg.Points(4)
		} else {
			yTop = area.Max.Y - vg.Points(8)
			fillText(area, "Rankings (continued)", vg.Points(10), area.Min.X, yTop, color.Gray{Y: 100})
			yTop -= 0.25 * vg.Inch
		}

		rowsThisPage := maxRowsPerPage
		if pageNum == 1 {
			rowsThisPage = int((yTop - area.Min.Y) / reportRowHeight)
		}

		drawn := 0
		for rowIdx < len(ranked) && drawn < rowsThisPage {
			r := ranked[rowIdx]
			rowIdx++
			y := yTop - vg.Length(drawn)*reportRowHeight - reportRowHeight*0.65

			cells := []string{
				r.Name, r.County, string(r.Grade), fmt.Sprint(r.OverallScore),
				formatInt(int64(r.Approved)), fmt.Sprintf("%.1f%%", r.ApprovalRate),
				string(r.Consistency),
			}
			x := area.Min.X
			for i, cell := range cells {
				clr := color.Color(color.Black)
				if cols[i].label == "Consistency" {
					clr = consistencyColor(r.Consistency)
				}
				fillText(area, cell, vg.Points(9), x, y, clr)
				x += cols[i].width
			}
			drawn++
		}
	}

	return writePDF(c, path)
}

func consistencyColor(s analytics.ConsistencyStatus) color.Color {
	switch s {
	case analytics.ConsistencyRed:
		return chartRed
	case analytics.ConsistencyYellow:
		return chartOrange
	case analytics.ConsistencyGreen:
		return chartGreen
	}
	return chartGray
}

// renderQuadrantPDF draws every town with a compliance profile as a point:
// approval rate against inconsistent provision count.
func renderQuadrantPDF(path string, ranked []analytics.RankedTown) error {
	byQuadrant := make(map[analytics.Quadrant]plotter.XYs)
	var maxInconsistent float64
	for _, r := range ranked {
		if r.Quadrant == analytics.QuadrantNone {
			continue
		}
		byQuadrant[r.Quadrant] = append(byQuadrant[r.Quadrant], plotter.XY{
			X: r.ApprovalRate,
			Y: float64(r.Inconsistent),
		})
		if float64(r.Inconsistent) > maxInconsistent {
			maxInconsistent = float64(r.Inconsistent)
		}
	}

	p := plot.New()
	p.Title.Text = "Approval Rate vs. Bylaw Inconsistencies"
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.X.Label.Text = "Approval rate (%)"
	p.Y.Label.Text = "Inconsistent provisions"
	p.X.Min, p.X.Max = 0, 100
	p.Y.Min, p.Y.Max = -0.5, maxInconsistent+1
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	colors := map[analytics.Quadrant]color.Color{
		analytics.QuadrantGreenLight:      chartGreen,
		analytics.QuadrantPaperTiger:      chartOrange,
		analytics.QuadrantPipelineProblem: chartBlue,
		analytics.QuadrantWalledOff:       chartRed,
	}
	for _, q := range analytics.Quadrants {
		pts := byQuadrant[q]
		if len(pts) == 0 {
			continue
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		scatter.Color = colors[q]
		scatter.Radius = vg.Points(4)
		scatter.Shape = draw.CircleGlyph{}
		p.Add(scatter)
		p.Legend.Add(string(q), scatter)
	}

	c := vgpdf.New(pageWidth, pageHeight)
	dc := draw.New(c)
	area := draw.Crop(dc, pdfMargin, -pdfMargin, pdfMargin, -pdfMargin)
	p.Draw(area)
	return writePDF(c, path)
}

func renderPerCapitaPDF(path string) error {
	type entry struct {
		name string
		rate float64
	}
	var entries []entry
	for _, town := range dataset.Towns {
		rate, ok := analytics.ApprovalsPerTenThousandResidents(town)
		if !ok || town.Approved == 0 {
			continue
		}
		entries = append(entries, entry{name: town.Name, rate: rate})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].rate > entries[j].rate })

	values := make(plotter.Values, len(entries))
	names := make([]string, len(entries))
	for i, e := range entries {
		values[i] = e.rate
		names[i] = e.name
	}

	p := plot.New()
	p.Title.Text = "ADU Approvals per 10,000 Residents"
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.Text = "Approvals per 10,000 residents"

	bars, err := plotter.NewBarChart(values, 0.5*vg.Centimeter)
	if err != nil {
		return err
	}
	bars.Color = chartBlue
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 0.8
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	c := vgpdf.New(pageWidth, pageHeight)
	dc := draw.New(c)
	area := draw.Crop(dc, pdfMargin, -pdfMargin, pdfMargin, -pdfMargin)
	p.Draw(area)
	return writePDF(c, path)
}

func writePDF(c *vgpdf.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fillText(c draw.Canvas, txt string, size vg.Length, x, y vg.Length, clr color.Color) {
	sty := draw.TextStyle{
		Color:   clr,
		Font:    plot.DefaultFont,
		Handler: plot.DefaultTextHandler,
	}
	sty.Font.Size = size
	c.FillText(sty, vg.Point{X: x, Y: y}, txt)
}

func strokeHLine(c draw.Canvas, x0, x1, y vg.Length, clr color.Color) {
	c.StrokeLine2(draw.LineStyle{
		Color: clr,
		Width: vg.Points(0.5),
	}, x0, y, x1, y)
}
