package recorder

import "FXBridge/internal/model"

// NoopRecorder discards rows; used for dry runs.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRows(_ model.Pair, _ []model.CombinedRow) error { return nil }
func (n *NoopRecorder) Close() error                                         { return nil }
