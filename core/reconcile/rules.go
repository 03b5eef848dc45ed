package reconcile

import (
	"fmt"
	"slices"
	"strings"
)

// Rule reconciles one field of T.
type Rule[T any] struct {
	// Field is the reported field name.
	Field string
	// Policy is the precedence applied to the field.
	Policy Policy

	apply func(dst, remote *T) (FieldChange, bool)
}

// Name is a remote-authoritative string compared case-insensitively.
func Name[T any](field string, get func(*T) *string) Rule[T] {
	return Rule[T]{
		Field:  field,
		Policy: RemoteAuthoritative,
		apply: func(dst, remote *T) (FieldChange, bool) {
			r, c := get(remote), get(dst)
			if *r == "" || strings.EqualFold(*r, *c) {
				return FieldChange{}, false
			}
			change := FieldChange{Cached: *c, Remote: *r}
			*c = *r
			return change, true
		},
	}
}

// Number is a remote-authoritative optional numeric field compared by value.
func Number[T any, N int | int64 | float64](field string, get func(*T) **N) Rule[T] {
	return Value(field, get, func(a, b N) bool { return a == b })
}

// Value is a remote-authoritative optional field compared with equal.
func Value[T any, V any](field string, get func(*T) **V, equal func(a, b V) bool) Rule[T] {
	return Rule[T]{
		Field:  field,
		Policy: RemoteAuthoritative,
		apply: func(dst, remote *T) (FieldChange, bool) {
			r, c := *get(remote), get(dst)
			if r == nil {
				return FieldChange{}, false
			}
			if *c != nil && equal(**c, *r) {
				return FieldChange{}, false
			}
			change := FieldChange{Cached: format(*c), Remote: format(r)}
			v := *r
			*c = &v
			return change, true
		},
	}
}

// List is a remote-authoritative tag list. It is replaced wholesale only when the
// cached list is absent or its cardinality differs; items are not diffed.
func List[T any, E any](field string, get func(*T) *[]E) Rule[T] {
	return Rule[T]{
		Field:  field,
		Policy: RemoteAuthoritative,
		apply: func(dst, remote *T) (FieldChange, bool) {
			r, c := *get(remote), get(dst)
			if r == nil {
				return FieldChange{}, false
			}
			if *c != nil && len(*c) == len(r) {
				return FieldChange{}, false
			}
			change := FieldChange{Cached: fmt.Sprintf("%d items", len(*c)), Remote: fmt.Sprintf("%d items", len(r))}
			*c = slices.Clone(r)
			return change, true
		},
	}
}

// Text is an optional text or URL field: filled when cached is empty, otherwise
// taken from remote when the two differ case-insensitively.
func Text[T any](field string, get func(*T) *string) Rule[T] {
	rule := Name(field, get)
	rule.Policy = FillIfEmpty
	return rule
}

// Curated marks a locally curated field that remote data never overwrites.
func Curated[T any](field string) Rule[T] {
	return Rule[T]{
		Field:  field,
		Policy: LocallyCurated,
		apply: func(dst, remote *T) (FieldChange, bool) {
			return FieldChange{}, false
		},
	}
}

func format[V any](v *V) string {
	if v == nil {
		return ""
	}
	if s, ok := any(*v).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", *v)
}
