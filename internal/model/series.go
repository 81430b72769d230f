package model

import (
	"fmt"
	"time"
)

// Value is an optional rate. Valid is false when the value is absent.
type Value struct {
	Float float64
	Valid bool
}

// Some returns a present Value.
func Some(f float64) Value { return Value{Float: f, Valid: true} }

// None returns an absent Value.
func None() Value { return Value{} }

func (v Value) String() string {
	if !v.Valid {
		return "NaN"
	}
	return fmt.Sprintf("%.4f", v.Float)
}

// DailyPoint is one day of a daily series.
type DailyPoint struct {
	Date  time.Time
	Value Value
}

// FilledPoint keeps the raw derived value next to its gap-filled counterpart.
type FilledPoint struct {
	Date   time.Time
	Raw    Value
	Filled Value
}

// Month is a calendar year+month.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the calendar month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Before reports whether m is earlier than o.
func (m Month) Before(o Month) bool {
	if m.Year != o.Year {
		return m.Year < o.Year
	}
	return m.Month < o.Month
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// MonthlyAverage is the mean filled value over the days of one month.
type MonthlyAverage struct {
	Month   Month
	Average float64
	Days    int // days contributing to the average
}

// CombinedRow is one output row: a day with its raw, filled and monthly average rate.
type CombinedRow struct {
	Date           time.Time
	Raw            Value
	Filled         Value
	MonthlyAverage Value
}
