package recorder

import "FXBridge/internal/model"

// Recorder persists the combined daily rows of a run.
type Recorder interface {
	RecordRows(pair model.Pair, rows []model.CombinedRow) error
	Close() error
}
