package collector

import (
	"context"

	"FXBridge/internal/model"
)

// Fetcher defines the interface for retrieving reference-rate tables.
type Fetcher interface {
	FetchRates(ctx context.Context) ([]model.RateTable, error)
	Name() string
}
