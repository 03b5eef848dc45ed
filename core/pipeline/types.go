package pipeline

import (
	"context"
	"fmt"
	"strings"

	"game-catalog/core/errs"
	"game-catalog/core/fetch"
	"game-catalog/core/reconcile"
)

// Mode selects where records are resolved from.
type Mode string

const (
	ModeRemote Mode = "remote"
	ModeCache  Mode = "cache"
	ModeHybrid Mode = "hybrid"
)

// ParseMode converts a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeRemote, ModeCache, ModeHybrid:
		return m, nil
	default:
		return "", errs.New(errs.InvalidParameters, "the source mode %q is not a valid mode", s)
	}
}

// Fetcher retrieves raw documents; *fetch.Client implements it.
type Fetcher interface {
	Fetch(ctx context.Context, ids ...int64) fetch.Outcome
	Batch() bool
}

// Repository is the cache store.
type Repository[T any] interface {
	// ReadByID returns nil, nil when the record is not cached.
	ReadByID(ctx context.Context, id int64) (*T, error)
	// WriteByID inserts or updates the record under its identifier.
	WriteByID(ctx context.Context, rec *T) error
}

// Archiver stores raw source documents.
type Archiver interface {
	Archive(ctx context.Context, source string, ids []int64, raw []byte) error
}

// Source bundles everything the pipeline needs to know about one external source.
type Source[T any] struct {
	// Name identifies the source in logs and archive keys.
	Name string
	// Fetcher retrieves raw markup.
	Fetcher Fetcher
	// Parse turns the single-record document fetched for id into a record.
	Parse func(id int64, raw []byte) (*T, error)
	// ParseBatch parses a multi-record document. Nil when the source has no batch format.
	ParseBatch func(raw []byte) ([]*T, error)
	// Table is the merge precedence table, also used to read record identifiers.
	Table *reconcile.Table[T]
}

// Request is one resolve call. Parameters are expected to be validated by the caller;
// Resolve re-checks them and rejects violations with InvalidParameters.
type Request struct {
	ID    int64
	Mode  Mode
	Batch int
	Sync  bool
}

// Validate checks the request contract. maxBatch caps the batch size; below one it
// falls back to DefaultMaxBatch.
func (r Request) Validate(maxBatch int) error {
	if maxBatch < 1 {
		maxBatch = DefaultMaxBatch
	}
	if r.ID < 1 {
		return errs.New(errs.InvalidParameters, "the identifier %d is not valid", r.ID)
	}
	if r.Batch < 1 {
		return errs.New(errs.InvalidParameters, "the batch size %d must be at least 1", r.Batch)
	}
	if r.Batch > maxBatch {
		return errs.New(errs.InvalidParameters, "the batch size %d exceeds the maximum of %d", r.Batch, maxBatch)
	}
	if !Fits(r.ID, r.Batch) {
		return errs.New(errs.InvalidParameters, "the range of %d identifiers from %d overflows", r.Batch, r.ID)
	}
	if _, err := ParseMode(string(r.Mode)); err != nil {
		return err
	}
	if r.Mode == ModeCache && r.Batch > 1 {
		return errs.New(errs.InvalidParameters, "batch reads are not supported from the cache")
	}
	return nil
}

// Failure describes why one identifier could not be resolved.
type Failure struct {
	ID     int64     `json:"id"`
	Kind   errs.Kind `json:"kind"`
	Detail string    `json:"detail"`
}

func newFailure(id int64, err error) Failure {
	e := errs.From(err, errs.TransportFault)
	return Failure{ID: id, Kind: e.Kind, Detail: e.Detail}
}

// Err converts the failure back into a typed error.
func (f Failure) Err() error {
	return errs.New(f.Kind, "%s", f.Detail)
}

// Change describes a merged record that differs from its cached copy.
type Change struct {
	ID         int64                            `json:"id"`
	FirstSeen  bool                             `json:"first_seen,omitempty"`
	Overridden map[string]reconcile.FieldChange `json:"overridden,omitempty"`
}

// SyncReport describes the write-back phase.
type SyncReport struct {
	Written []int64   `json:"written"`
	Failed  []Failure `json:"failed,omitempty"`
}

// Status summarizes the write-back: failed when any write failed, written when at
// least one record was stored, unchanged otherwise.
func (r *SyncReport) Status() string {
	switch {
	case len(r.Failed) > 0:
		return "failed"
	case len(r.Written) > 0:
		return "written"
	default:
		return "unchanged"
	}
}

// Result is the outcome of Resolve.
type Result[T any] struct {
	// Records holds resolved records in ascending identifier order.
	Records []*T `json:"records"`
	// Failures lists identifiers that could not be resolved.
	Failures []Failure `json:"failures,omitempty"`
	// Fallbacks lists identifiers served from the cache because the remote fetch failed.
	Fallbacks []Failure `json:"fallbacks,omitempty"`
	// Changes lists hybrid merges that differ from the cache.
	Changes []Change `json:"changes,omitempty"`
	// Sync is set when write-back was requested in hybrid mode.
	Sync *SyncReport `json:"sync,omitempty"`
}

// First returns the first record, or nil.
func (r *Result[T]) First() *T {
	if len(r.Records) == 0 {
		return nil
	}
	return r.Records[0]
}

func flightKey(source string, ids []int64) string {
	var b strings.Builder
	b.WriteString(source)
	for _, id := range ids {
		fmt.Fprintf(&b, ":%d", id)
	}
	return b.String()
}
