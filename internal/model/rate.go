package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day layout used by the feed and the CSV output.
const DateLayout = "2006-01-02"

// Day normalizes t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a "2006-01-02" date string into a normalized day.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// RateTable holds all reference rates published for one day.
// Rates are quoted as units of currency per one unit of the reference currency.
type RateTable struct {
	Date  time.Time
	Rates map[string]decimal.Decimal
}

// Lookup returns the rate for currency, if published.
func (t RateTable) Lookup(currency string) (decimal.Decimal, bool) {
	r, ok := t.Rates[currency]
	return r, ok
}

// RateObservation is a single currency's rate to the reference currency on one day.
type RateObservation struct {
	Currency string
	Date     time.Time
	Rate     decimal.Decimal
}

// Observations flattens the table into one observation per currency.
func (t RateTable) Observations() []RateObservation {
	obs := make([]RateObservation, 0, len(t.Rates))
	for ccy, r := range t.Rates {
		obs = append(obs, RateObservation{Currency: ccy, Date: t.Date, Rate: r})
	}
	return obs
}

// Pair identifies the cross rate being derived: Base→Quote via Reference.
type Pair struct {
	Base      string
	Quote     string
	Reference string
}

// Label returns the column prefix used for the pair, e.g. "USDtoZAR".
func (p Pair) Label() string {
	return p.Base + "to" + p.Quote
}

func (p Pair) String() string {
	return p.Base + "/" + p.Quote + " via " + p.Reference
}
