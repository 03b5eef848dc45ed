package reconcile

import (
	"maps"
	"slices"
)

// Policy names how a field is reconciled.
type Policy string

const (
	// RemoteAuthoritative fields are overwritten from remote whenever they differ.
	RemoteAuthoritative Policy = "remote_authoritative"
	// FillIfEmpty fields are filled when cached is empty, or taken from remote on mismatch.
	FillIfEmpty Policy = "fill_if_empty"
	// LocallyCurated fields are never overwritten.
	LocallyCurated Policy = "locally_curated"
)

// FieldChange records one overridden field.
type FieldChange struct {
	Cached string `json:"cached"`
	Remote string `json:"remote"`
}

// Result is the outcome of a merge.
type Result[T any] struct {
	// Record is the merged record. Nil only when both inputs are nil.
	Record *T `json:"record"`

	// Changed is true when at least one field was overwritten, or when there was no cached copy.
	Changed bool `json:"changed"`

	// Overridden maps field names to the values that were replaced.
	Overridden map[string]FieldChange `json:"overridden,omitempty"`
}

// Fields returns the overridden field names in sorted order.
func (r *Result[T]) Fields() []string {
	return slices.Sorted(maps.Keys(r.Overridden))
}
