package reconcile

import "game-catalog/core/errs"

// Table is the per-field precedence table for one record type.
type Table[T any] struct {
	key   func(*T) int64
	rules []Rule[T]
}

// NewTable creates a Table. key returns the record's immutable source identifier.
func NewTable[T any](key func(*T) int64, rules ...Rule[T]) *Table[T] {
	return &Table[T]{key: key, rules: rules}
}

// Key returns the identifier of a record.
func (t *Table[T]) Key(rec *T) int64 {
	return t.key(rec)
}

// Rules returns a copy of the table's rules.
func (t *Table[T]) Rules() []Rule[T] {
	return append([]Rule[T](nil), t.rules...)
}

// Policy returns the policy of a field, or false if the table has no rule for it.
func (t *Table[T]) Policy(field string) (Policy, bool) {
	for _, r := range t.rules {
		if r.Field == field {
			return r.Policy, true
		}
	}
	return "", false
}

// Merge reconciles remote into cached.
//
//   - cached nil: the result is remote and Changed is true (first sighting).
//   - remote nil: the result is cached and Changed is false.
//   - both present: each rule is applied to a copy of cached.
//
// Records with different identifiers are rejected; the identifier is never rewritten.
func (t *Table[T]) Merge(remote, cached *T) (*Result[T], error) {
	switch {
	case cached == nil && remote == nil:
		return &Result[T]{}, nil
	case cached == nil:
		return &Result[T]{Record: remote, Changed: true}, nil
	case remote == nil:
		return &Result[T]{Record: cached}, nil
	}

	if rk, ck := t.key(remote), t.key(cached); rk != ck {
		return nil, errs.New(errs.InvalidParameters, "cannot merge record %d into cached record %d", rk, ck)
	}

	merged := *cached
	var overridden map[string]FieldChange
	for _, rule := range t.rules {
		change, ok := rule.apply(&merged, remote)
		if !ok {
			continue
		}
		if overridden == nil {
			overridden = make(map[string]FieldChange)
		}
		overridden[rule.Field] = change
	}

	return &Result[T]{
		Record:     &merged,
		Changed:    len(overridden) > 0,
		Overridden: overridden,
	}, nil
}
