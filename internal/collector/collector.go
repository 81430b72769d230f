package collector

import (
	"context"
	"fmt"
	"time"

	"FXBridge/internal/model"

	"go.uber.org/zap"
)

// StaticFetcher returns pre-fetched tables, for development and testing.
type StaticFetcher struct {
	Tables []model.RateTable
	Err    error
}

func (s *StaticFetcher) Name() string { return "static" }

func (s *StaticFetcher) FetchRates(_ context.Context) ([]model.RateTable, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Tables, nil
}

// Snapshot is the result of one collection.
type Snapshot struct {
	Source    string
	Tables    []model.RateTable
	FetchedAt time.Time
}

// Collector fetches rate tables and checks that the pair's currencies are present.
type Collector struct {
	Fetcher Fetcher
	Pair    model.Pair
	Logger  *zap.Logger
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, pair model.Pair, lg *zap.Logger) *Collector {
	return &Collector{Fetcher: fetcher, Pair: pair, Logger: lg}
}

// Collect fetches the feed once. Fetch and parse failures are returned as is.
func (c *Collector) Collect(ctx context.Context) (*Snapshot, error) {
	tables, err := c.Fetcher.FetchRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect from %s: %w", c.Fetcher.Name(), err)
	}

	var baseDays, quoteDays int
	for _, t := range tables {
		if _, ok := t.Lookup(c.Pair.Base); ok {
			baseDays++
		}
		if _, ok := t.Lookup(c.Pair.Quote); ok {
			quoteDays++
		}
	}
	c.Logger.Info("feed collected",
		zap.String("source", c.Fetcher.Name()),
		zap.Int("days", len(tables)),
		zap.Int("base_days", baseDays),
		zap.Int("quote_days", quoteDays),
	)
	if baseDays == 0 || quoteDays == 0 {
		c.Logger.Warn("pair currency missing from feed",
			zap.String("base", c.Pair.Base), zap.String("quote", c.Pair.Quote))
	}

	return &Snapshot{Source: c.Fetcher.Name(), Tables: tables, FetchedAt: time.Now()}, nil
}
