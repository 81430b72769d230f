package calculator

import (
	"testing"
	"time"

	"FXBridge/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var usdZar = model.Pair{Base: "USD", Quote: "ZAR", Reference: "EUR"}

func day(s string) time.Time {
	d, err := model.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func table(date string, rates map[string]string) model.RateTable {
	t := model.RateTable{Date: day(date), Rates: make(map[string]decimal.Decimal, len(rates))}
	for ccy, r := range rates {
		t.Rates[ccy] = decimal.RequireFromString(r)
	}
	return t
}

func TestCrossRate(t *testing.T) {
	d := day("2024-03-01")
	some := func(s string) RateLookup {
		return func(time.Time) (decimal.Decimal, bool) { return decimal.RequireFromString(s), true }
	}
	none := func(time.Time) (decimal.Decimal, bool) { return decimal.Zero, false }

	tests := []struct {
		name   string
		base   RateLookup
		quote  RateLookup
		want   float64
		wantOK bool
	}{
		{"both present", some("1.10"), some("19.50"), 19.50 / 1.10, true},
		{"base missing", none, some("19.50"), 0, false},
		{"quote missing", some("1.10"), none, 0, false},
		{"base zero", some("0"), some("19.50"), 0, false},
		{"quote zero", some("1.10"), some("0"), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CrossRate(tt.base, tt.quote, d)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestDeriveCrossRates_Scenario(t *testing.T) {
	tables := []model.RateTable{
		table("2024-01-03", map[string]string{"USD": "1.08", "ZAR": "19.60"}),
		table("2024-01-02", map[string]string{"JPY": "155.1"}),
		table("2024-01-01", map[string]string{"USD": "1.10", "ZAR": "19.50", "GBP": "0.86"}),
	}

	points := DeriveCrossRates(tables, usdZar)
	require.Len(t, points, 2)

	assert.Equal(t, day("2024-01-01"), points[0].Date)
	assert.InDelta(t, 17.7273, points[0].Value.Float, 1e-4)
	assert.Equal(t, day("2024-01-03"), points[1].Date)
	assert.InDelta(t, 18.1481, points[1].Value.Float, 1e-4)
}

func TestDeriveCrossRates_DuplicateDayLaterTableWins(t *testing.T) {
	tables := []model.RateTable{
		table("2024-01-01", map[string]string{"USD": "1.00", "ZAR": "20.00"}),
		table("2024-01-01", map[string]string{"USD": "2.00", "ZAR": "20.00"}),
	}

	points := DeriveCrossRates(tables, usdZar)
	require.Len(t, points, 1)
	assert.InDelta(t, 10.0, points[0].Value.Float, 1e-12)
}

func TestDeriveCrossRates_Formula(t *testing.T) {
	tables := []model.RateTable{
		table("2023-05-02", map[string]string{"USD": "1.1017", "ZAR": "20.1637"}),
		table("2023-05-03", map[string]string{"USD": "1.1059", "ZAR": "20.2478"}),
		table("2023-05-04", map[string]string{"USD": "1.1069", "ZAR": "0"}),
	}
	points := DeriveCrossRates(tables, usdZar)
	require.Len(t, points, 2)
	for i, p := range points {
		b, _ := tables[i].Rates["USD"].Float64()
		q, _ := tables[i].Rates["ZAR"].Float64()
		assert.InDelta(t, q/b, p.Value.Float, 1e-9)
	}
}

func TestDeriveCrossRates_Empty(t *testing.T) {
	assert.Empty(t, DeriveCrossRates(nil, usdZar))
}
