package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"FXBridge/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var usdZar = model.Pair{Base: "USD", Quote: "ZAR", Reference: "EUR"}

func rows(start string, raw ...float64) []model.CombinedRow {
	d, _ := model.ParseDay(start)
	out := make([]model.CombinedRow, len(raw))
	for i, v := range raw {
		out[i] = model.CombinedRow{
			Date:           d.AddDate(0, 0, i),
			Raw:            model.Some(v),
			Filled:         model.Some(v),
			MonthlyAverage: model.Some(18),
		}
	}
	return out
}

func result(r []model.CombinedRow) *model.Result {
	return &model.Result{
		Pair: usdZar,
		Rows: r,
		Monthly: []model.MonthlyAverage{
			{Month: model.Month{Year: 2024, Month: time.January}, Average: 18, Days: len(r)},
		},
	}
}

func TestFormatSummary_AllRowsFit(t *testing.T) {
	out := FormatSummary(result(rows("2024-01-01", 17.5, 18, 18.5)), 5)

	assert.Contains(t, out, "USDtoZAR | USD/ZAR via EUR")
	assert.Contains(t, out, "range: 2024-01-01 .. 2024-01-03")
	assert.Contains(t, out, "calendar days: 3")
	assert.Contains(t, out, "2024-01-02")
	assert.NotContains(t, out, "...")
}

func TestFormatSummary_HeadTail(t *testing.T) {
	r := rows("2024-01-01", 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	res := result(r)
	res.LeadingGaps = 2
	out := FormatSummary(res, 2)

	assert.Contains(t, out, "leading days without a value: 2")
	assert.Contains(t, out, "...")
	for _, day := range []string{"2024-01-01", "2024-01-02", "2024-01-09", "2024-01-10"} {
		assert.Contains(t, out, day)
	}
	for _, day := range []string{"2024-01-03", "2024-01-08"} {
		assert.NotContains(t, out, day)
	}
}

func TestFormatSummary_Empty(t *testing.T) {
	out := FormatSummary(&model.Result{Pair: usdZar}, 5)
	assert.True(t, strings.HasSuffix(out, "no rows\n"))
}

func TestFormatSummary_AbsentValues(t *testing.T) {
	r := rows("2024-01-01", 18)
	r[0].Raw = model.None()
	out := FormatSummary(result(r), 5)
	assert.Contains(t, out, "NaN")
}

func TestRenderPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.pdf")
	r := rows("2024-01-01", 17.5, 18, 18.5, 18.25)
	r[1].Raw = model.None()

	require.NoError(t, RenderPDF(r, usdZar, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestRenderPDF_NoData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	require.NoError(t, RenderPDF(nil, usdZar, path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestRenderXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.xlsx")
	r := rows("2024-01-01", 17.5, 18.25)
	r[0].Raw = model.None()
	res := result(r)

	require.NoError(t, RenderXLSX(res.Rows, res.Monthly, usdZar, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Daily", "Monthly"}, f.GetSheetList())

	header, err := f.GetCellValue("Daily", "B1")
	require.NoError(t, err)
	assert.Equal(t, "USDtoZAR", header)

	absent, err := f.GetCellValue("Daily", "B2")
	require.NoError(t, err)
	assert.Empty(t, absent)

	raw, err := f.GetCellValue("Daily", "B3")
	require.NoError(t, err)
	assert.Equal(t, "18.25", raw)

	month, err := f.GetCellValue("Monthly", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2024-01", month)
}
