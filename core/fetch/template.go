package fetch

import (
	"strconv"
	"strings"

	"game-catalog/core/errs"
)

// DefaultMarker is the substitution marker used when a Template leaves Marker empty.
const DefaultMarker = "<id>"

// Template describes how identifiers are substituted into a source URL.
type Template struct {
	// Pattern is the source URL containing Marker exactly once.
	Pattern string
	// Marker is the placeholder replaced by the identifier list.
	Marker string
	// Batch allows several comma-joined identifiers in one request.
	Batch bool
}

// URL builds the request URL for the given identifiers.
func (t Template) URL(ids []int64) (string, error) {
	if len(ids) == 0 {
		return "", errs.New(errs.InvalidParameters, "no identifiers to fetch")
	}
	if len(ids) > 1 && !t.Batch {
		return "", errs.New(errs.ClientFault, "source does not accept %d identifiers in one request", len(ids))
	}

	marker := t.Marker
	if marker == "" {
		marker = DefaultMarker
	}

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Replace(t.Pattern, marker, strings.Join(parts, ","), 1), nil
}
