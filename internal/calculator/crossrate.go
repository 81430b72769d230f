package calculator

import (
	"errors"
	"sort"
	"time"

	"FXBridge/internal/model"

	"github.com/shopspring/decimal"
)

// ErrNoCrossRates is returned when no day carries both currencies of the pair.
var ErrNoCrossRates = errors.New("calculator: no day has both currencies of the pair")

// RateLookup returns a currency's reference rate for a day, if known.
type RateLookup func(day time.Time) (decimal.Decimal, bool)

// CrossRate computes base→quote for day as quote/base, where both rates are
// quoted against the same reference currency. The result is absent when either
// rate is missing or zero.
func CrossRate(base, quote RateLookup, day time.Time) (float64, bool) {
	b, ok := base(day)
	if !ok || b.IsZero() {
		return 0, false
	}
	q, ok := quote(day)
	if !ok || q.IsZero() {
		return 0, false
	}
	f, _ := q.Div(b).Float64()
	return f, true
}

type obsKey struct {
	currency string
	day      time.Time
}

// rateIndex keys observations uniquely by (currency, day). Later tables
// overwrite earlier ones for the same key.
type rateIndex map[obsKey]decimal.Decimal

func newRateIndex(tables []model.RateTable) rateIndex {
	idx := make(rateIndex)
	for _, t := range tables {
		for _, o := range t.Observations() {
			idx[obsKey{currency: o.Currency, day: model.Day(o.Date)}] = o.Rate
		}
	}
	return idx
}

func (idx rateIndex) lookup(currency string) RateLookup {
	return func(day time.Time) (decimal.Decimal, bool) {
		r, ok := idx[obsKey{currency: currency, day: model.Day(day)}]
		return r, ok
	}
}

// DeriveCrossRates produces one point per day on which both currencies of the
// pair were published, sorted ascending with no duplicate days. Days missing
// either currency are dropped.
func DeriveCrossRates(tables []model.RateTable, pair model.Pair) []model.DailyPoint {
	idx := newRateIndex(tables)
	base, quote := idx.lookup(pair.Base), idx.lookup(pair.Quote)

	seen := make(map[time.Time]struct{}, len(tables))
	points := make([]model.DailyPoint, 0, len(tables))
	for _, t := range tables {
		day := model.Day(t.Date)
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		if rate, ok := CrossRate(base, quote, day); ok {
			points = append(points, model.DailyPoint{Date: day, Value: model.Some(rate)})
		}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}
