package calculator

import (
	"sort"

	"FXBridge/internal/model"

	"github.com/samber/lo"
)

// MonthlyAverages groups filled values by calendar month and averages the
// present ones. Months without any present value are omitted.
func MonthlyAverages(filled []model.FilledPoint) []model.MonthlyAverage {
	present := lo.Filter(filled, func(p model.FilledPoint, _ int) bool {
		return p.Filled.Valid
	})
	groups := lo.GroupBy(present, func(p model.FilledPoint) model.Month {
		return model.MonthOf(p.Date)
	})

	out := make([]model.MonthlyAverage, 0, len(groups))
	for month, days := range groups {
		sum := lo.SumBy(days, func(p model.FilledPoint) float64 { return p.Filled.Float })
		out = append(out, model.MonthlyAverage{
			Month:   month,
			Average: sum / float64(len(days)),
			Days:    len(days),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}
