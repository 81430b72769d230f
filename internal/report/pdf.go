package report

import (
	"fmt"
	"math"
	"time"

	"FXBridge/internal/model"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageWidth  = 297.0 // A4 landscape, mm
	pageHeight = 210.0
	margin     = 20.0
)

type chartPoint struct {
	date  time.Time
	value model.Value
}

// RenderPDF writes two line charts to path: the daily derived rate and the
// monthly average, one per page.
func RenderPDF(rows []model.CombinedRow, pair model.Pair, path string) error {
	pdf := gofpdf.New("L", "mm", "A4", "")

	daily := make([]chartPoint, len(rows))
	monthly := make([]chartPoint, len(rows))
	for i, row := range rows {
		daily[i] = chartPoint{date: row.Date, value: row.Raw}
		monthly[i] = chartPoint{date: row.Date, value: row.MonthlyAverage}
	}

	drawLineChart(pdf, fmt.Sprintf("%s daily rate", pair.Label()), daily)
	drawLineChart(pdf, fmt.Sprintf("%s monthly average", pair.Label()), monthly)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to save PDF file %s: %w", path, err)
	}
	return nil
}

func drawLineChart(pdf *gofpdf.Fpdf, title string, points []chartPoint) {
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(margin, margin/2)
	pdf.CellFormat(pageWidth-2*margin, 8, title, "", 0, "C", false, 0, "")

	left, top := margin+10, margin+5
	width, height := pageWidth-2*margin-10, pageHeight-2*margin-10

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Rect(left, top, width, height, "D")

	minV, maxV, ok := valueRange(points)
	pdf.SetFont("Arial", "", 9)
	if !ok {
		pdf.SetXY(left, top+height/2)
		pdf.CellFormat(width, 6, "no data", "", 0, "C", false, 0, "")
		return
	}
	if minV == maxV {
		minV, maxV = minV-1, maxV+1
	}

	x := func(i int) float64 {
		if len(points) == 1 {
			return left + width/2
		}
		return left + width*float64(i)/float64(len(points)-1)
	}
	y := func(v float64) float64 {
		return top + height - height*(v-minV)/(maxV-minV)
	}

	pdf.Text(margin-8, y(maxV)+1, fmt.Sprintf("%.2f", maxV))
	pdf.Text(margin-8, y(minV)+1, fmt.Sprintf("%.2f", minV))
	pdf.Text(left, top+height+5, points[0].date.Format(model.DateLayout))
	pdf.Text(left+width-18, top+height+5, points[len(points)-1].date.Format(model.DateLayout))

	// absent values break the line
	pdf.SetDrawColor(31, 119, 180)
	pdf.SetLineWidth(0.3)
	prev := -1
	for i, p := range points {
		if !p.value.Valid {
			prev = -1
			continue
		}
		if prev >= 0 {
			pdf.Line(x(prev), y(points[prev].value.Float), x(i), y(p.value.Float))
		}
		prev = i
	}
}

func valueRange(points []chartPoint) (minV, maxV float64, ok bool) {
	minV, maxV = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		if !p.value.Valid {
			continue
		}
		minV = math.Min(minV, p.value.Float)
		maxV = math.Max(maxV, p.value.Float)
		ok = true
	}
	return minV, maxV, ok
}
