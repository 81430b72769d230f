package recorder

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"FXBridge/internal/model"

	"go.uber.org/zap"
)

// CSVRecorder writes the combined rows to a single CSV file, replacing it on every run.
type CSVRecorder struct {
	path string
	lg   *zap.Logger
	mu   sync.Mutex
}

// NewCSVRecorder creates a recorder for path, creating its directory if needed.
func NewCSVRecorder(path string, lg *zap.Logger) (*CSVRecorder, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	return &CSVRecorder{path: path, lg: lg}, nil
}

// Path returns the output file path.
func (r *CSVRecorder) Path() string { return r.path }

// Header returns the column names for pair, e.g.
// InformationDate,USDtoZAR,USDtoZAR_Fill,USDtoZAR_MonthlyAver.
func Header(pair model.Pair) []string {
	label := pair.Label()
	return []string{"InformationDate", label, label + "_Fill", label + "_MonthlyAver"}
}

// WriteRows writes the header and rows to w.
func WriteRows(w io.Writer, pair model.Pair, rows []model.CombinedRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(pair)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		rec := []string{
			row.Date.Format(model.DateLayout),
			formatValue(row.Raw),
			formatValue(row.Filled),
			formatValue(row.MonthlyAverage),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %s: %w", rec[0], err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// RecordRows replaces the output file atomically: rows go to a temp file in
// the same directory which is then renamed over the target.
func (r *CSVRecorder) RecordRows(pair model.Pair, rows []model.CombinedRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(r.path), "tmp-*.csv")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if err := WriteRows(tmp, pair, rows); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", r.path, err)
	}

	r.lg.Info("rates saved", zap.String("path", r.path), zap.Int("rows", len(rows)))
	return nil
}

func (r *CSVRecorder) Close() error { return nil }

func formatValue(v model.Value) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float, 'f', -1, 64)
}
