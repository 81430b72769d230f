package model

// Result is everything one run derives from a feed snapshot.
type Result struct {
	Pair        Pair
	Daily       []DailyPoint // derived cross rates, observed days only
	Filled      []FilledPoint
	Monthly     []MonthlyAverage
	Rows        []CombinedRow
	LeadingGaps int // leading days with no value even after filling
}

// FirstDay returns the first calendar day of the output, if any.
func (r *Result) FirstDay() (string, bool) {
	if len(r.Rows) == 0 {
		return "", false
	}
	return r.Rows[0].Date.Format(DateLayout), true
}

// LastDay returns the last calendar day of the output, if any.
func (r *Result) LastDay() (string, bool) {
	if len(r.Rows) == 0 {
		return "", false
	}
	return r.Rows[len(r.Rows)-1].Date.Format(DateLayout), true
}
