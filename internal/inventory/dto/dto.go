package dto

import (
	"time"

	"github.com/fekuna/omnipos-catalog-sync/internal/model"
)

type ErrorKind string

const (
	KindConnection ErrorKind = "connection"
	KindSchema     ErrorKind = "schema"
	KindExtraction ErrorKind = "extraction"
	KindTransform  ErrorKind = "transform"
	KindLoad       ErrorKind = "load"
)

// SyncResult is the outcome of one run: either Count records synced, or a
// failure described by Kind, Message and Err.
type SyncResult struct {
	RunID      string
	Mode       model.SyncMode
	Count      int
	Kind       ErrorKind
	Message    string
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
}

func (r *SyncResult) Succeeded() bool {
	return r.Err == nil
}

func (r *SyncResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
