package calculator

import (
	"FXBridge/internal/model"

	"github.com/samber/lo"
)

// MergeMonthly left-joins every filled day with the average of its month.
// Every input day yields exactly one row; a day whose month has no average
// gets an absent MonthlyAverage.
func MergeMonthly(filled []model.FilledPoint, monthly []model.MonthlyAverage) []model.CombinedRow {
	byMonth := lo.KeyBy(monthly, func(m model.MonthlyAverage) model.Month { return m.Month })

	return lo.Map(filled, func(p model.FilledPoint, _ int) model.CombinedRow {
		row := model.CombinedRow{Date: p.Date, Raw: p.Raw, Filled: p.Filled}
		if avg, ok := byMonth[model.MonthOf(p.Date)]; ok {
			row.MonthlyAverage = model.Some(avg.Average)
		}
		return row
	})
}
