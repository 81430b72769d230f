package calculator

import (
	"fmt"
	"time"

	"FXBridge/internal/model"
)

// FillPolicy controls the short-window smoothing step of FillGaps.
type FillPolicy struct {
	// Window is the number of trailing days, including the day being filled.
	Window int
	// MinPeriods is how many of the window positions must be present before
	// a smoothed candidate is produced.
	MinPeriods int
}

// DefaultFillPolicy matches a standard rolling(3).mean(): all three window
// positions must be present, so a missing day is never smoothed and falls
// through to linear interpolation.
var DefaultFillPolicy = FillPolicy{Window: 3, MinPeriods: 3}

// Validate checks the policy bounds.
func (p FillPolicy) Validate() error {
	if p.Window < 1 {
		return fmt.Errorf("fill window must be >= 1, got %d", p.Window)
	}
	if p.MinPeriods < 1 || p.MinPeriods > p.Window {
		return fmt.Errorf("fill min_periods must be in [1, %d], got %d", p.Window, p.MinPeriods)
	}
	return nil
}

// BuildDailyAxis spreads sparse points over every calendar day from the first
// point through the given day, inclusive. Days without a point are absent.
// Points after through are dropped.
func BuildDailyAxis(points []model.DailyPoint, through time.Time) []model.DailyPoint {
	if len(points) == 0 {
		return nil
	}
	byDay := make(map[time.Time]model.Value, len(points))
	first := model.Day(points[0].Date)
	for _, p := range points {
		d := model.Day(p.Date)
		if d.Before(first) {
			first = d
		}
		byDay[d] = p.Value
	}
	last := model.Day(through)
	if last.Before(first) {
		return nil
	}

	axis := make([]model.DailyPoint, 0, int(last.Sub(first).Hours()/24)+1)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		axis = append(axis, model.DailyPoint{Date: d, Value: byDay[d]})
	}
	return axis
}

// FillGaps fills absent values of a contiguous daily series in two steps:
// a trailing-window mean evaluated against the unfilled series, then linear
// interpolation over what is still absent. Leading days with no earlier
// value stay absent.
func FillGaps(series []model.DailyPoint, policy FillPolicy) []model.FilledPoint {
	raw := make([]model.Value, len(series))
	for i, p := range series {
		raw[i] = p.Value
	}

	smoothed := make([]model.Value, len(raw))
	for i, v := range raw {
		if v.Valid {
			smoothed[i] = v
			continue
		}
		if mean, ok := trailingMean(raw, i, policy.Window, policy.MinPeriods); ok {
			smoothed[i] = model.Some(mean)
		}
	}

	filled := interpolateLinear(smoothed)

	out := make([]model.FilledPoint, len(series))
	for i, p := range series {
		out[i] = model.FilledPoint{Date: p.Date, Raw: raw[i], Filled: filled[i]}
	}
	return out
}

// interpolateLinear fills interior gaps linearly by position and carries the
// last known value over trailing gaps. Leading gaps are left absent.
func interpolateLinear(values []model.Value) []model.Value {
	out := make([]model.Value, len(values))
	copy(out, values)

	prev := -1
	for i, v := range values {
		if !v.Valid {
			continue
		}
		if prev >= 0 && i-prev > 1 {
			from, to := values[prev].Float, v.Float
			span := float64(i - prev)
			for j := prev + 1; j < i; j++ {
				out[j] = model.Some(from + (to-from)*float64(j-prev)/span)
			}
		}
		prev = i
	}
	if prev >= 0 {
		for j := prev + 1; j < len(values); j++ {
			out[j] = values[prev]
		}
	}
	return out
}

// LeadingGaps counts the absent filled values at the start of the series.
func LeadingGaps(filled []model.FilledPoint) int {
	n := 0
	for _, p := range filled {
		if p.Filled.Valid {
			break
		}
		n++
	}
	return n
}
