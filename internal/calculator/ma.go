package calculator

import (
	"FXBridge/internal/model"

	"github.com/samber/lo"
)

// trailingMean averages the present values among positions end-window+1..end.
// Positions before the start of the slice count as absent. The mean is only
// produced when at least minPeriods positions are present.
func trailingMean(values []model.Value, end, window, minPeriods int) (float64, bool) {
	start := max(end-window+1, 0)
	present := lo.FilterMap(values[start:end+1], func(v model.Value, _ int) (float64, bool) {
		return v.Float, v.Valid
	})
	if len(present) == 0 || len(present) < minPeriods {
		return 0, false
	}
	return lo.Sum(present) / float64(len(present)), true
}
