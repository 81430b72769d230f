package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"FXBridge/internal/calculator"
	"FXBridge/internal/collector"
	"FXBridge/internal/model"
	"FXBridge/internal/recorder"
	"FXBridge/internal/report"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Process derives the pair's cross rates from pre-fetched tables, fills them
// over every calendar day through runDate, and attaches monthly averages.
func Process(tables []model.RateTable, pair model.Pair, policy calculator.FillPolicy, runDate time.Time) (*model.Result, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	daily := calculator.DeriveCrossRates(tables, pair)
	if len(daily) == 0 {
		return nil, calculator.ErrNoCrossRates
	}

	axis := calculator.BuildDailyAxis(daily, runDate)
	if len(axis) == 0 {
		return nil, fmt.Errorf("run date %s precedes first cross rate %s: %w",
			model.Day(runDate).Format(model.DateLayout), daily[0].Date.Format(model.DateLayout), calculator.ErrNoCrossRates)
	}

	filled := calculator.FillGaps(axis, policy)
	monthly := calculator.MonthlyAverages(filled)

	return &model.Result{
		Pair:        pair,
		Daily:       daily,
		Filled:      filled,
		Monthly:     monthly,
		Rows:        calculator.MergeMonthly(filled, monthly),
		LeadingGaps: calculator.LeadingGaps(filled),
	}, nil
}

// Options control what a run produces besides the CSV rows.
type Options struct {
	Pair        model.Pair
	Policy      calculator.FillPolicy
	SummaryRows int
	PDFPath     string // empty: no PDF chart
	XLSXPath    string // empty: no workbook
	Out         io.Writer
}

// Pipeline runs one full batch: collect, process, record, report.
type Pipeline struct {
	Collector *collector.Collector
	Recorder  recorder.Recorder
	Options   Options
	Logger    *zap.Logger
	Now       func() time.Time
}

// New creates a new Pipeline.
func New(col *collector.Collector, rec recorder.Recorder, opts Options, lg *zap.Logger) *Pipeline {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Pipeline{Collector: col, Recorder: rec, Options: opts, Logger: lg, Now: time.Now}
}

// Run executes one batch. A failed run writes nothing: charts are removed
// again when a later step fails and the CSV is written last.
func (p *Pipeline) Run(ctx context.Context) (*model.Result, error) {
	start := time.Now()
	lg := p.Logger.With(zap.String("run_id", uuid.NewString()), zap.Stringer("pair", p.Options.Pair))
	lg.Info("run started")

	snap, err := p.Collector.Collect(ctx)
	if err != nil {
		return nil, err
	}

	res, err := Process(snap.Tables, p.Options.Pair, p.Options.Policy, p.Now())
	if err != nil {
		return nil, fmt.Errorf("process %s: %w", p.Options.Pair.Label(), err)
	}
	if dropped := len(snap.Tables) - len(res.Daily); dropped > 0 {
		lg.Debug("days without both currencies dropped", zap.Int("days", dropped))
	}
	if res.LeadingGaps > 0 {
		lg.Warn("leading days left unfilled", zap.Int("days", res.LeadingGaps))
	}

	// the CSV is the last artifact written
	charts, err := p.renderCharts(res)
	if err != nil {
		removeAll(charts)
		return nil, err
	}
	for _, path := range charts {
		lg.Info("chart written", zap.String("path", path))
	}

	if err := p.Recorder.RecordRows(p.Options.Pair, res.Rows); err != nil {
		removeAll(charts)
		return nil, fmt.Errorf("record rows: %w", err)
	}

	fmt.Fprint(p.Options.Out, report.FormatSummary(res, p.Options.SummaryRows))

	lg.Info("run finished",
		zap.Int("rows", len(res.Rows)),
		zap.Int("months", len(res.Monthly)),
		zap.Duration("took", time.Since(start)),
	)
	return res, nil
}

// renderCharts writes the configured charts and returns the paths written so far.
func (p *Pipeline) renderCharts(res *model.Result) ([]string, error) {
	var written []string
	if path := p.Options.PDFPath; path != "" {
		if err := report.RenderPDF(res.Rows, p.Options.Pair, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	if path := p.Options.XLSXPath; path != "" {
		if err := report.RenderXLSX(res.Rows, res.Monthly, p.Options.Pair, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func removeAll(paths []string) {
	for _, path := range paths {
		_ = os.Remove(path)
	}
}
