// Package reconcile merges a freshly parsed remote record into a previously cached copy.
//
// The merge is driven by a declarative per-field precedence Table instead of inline
// conditionals: adding a field to a record means adding one Rule, not a new code path.
//
// # Policies
//
//   - RemoteAuthoritative: the remote value replaces the cached one whenever they differ
//     (case-insensitive for names, numeric equality for counts, cardinality for tag lists).
//   - FillIfEmpty: optional text and URLs. The remote value fills an empty cached value,
//     or replaces it when both are present and differ case-insensitively.
//   - LocallyCurated: hand-edited fields; never overwritten by remote data.
//
// An absent remote value (nil pointer, empty string, nil slice) has no opinion and never
// overwrites anything.
//
// # Purity
//
// Merge never mutates its inputs and performs no I/O. The result is a fresh copy of the
// cached record with overridden fields replaced, plus a Changed flag and the list of
// overridden fields used to decide whether a write-back is warranted.
//
// # Usage
//
//	table := reconcile.NewTable(func(g *Game) int64 { return g.ID },
//	    reconcile.Name("name", func(g *Game) *string { return &g.Name }),
//	    reconcile.Number("year_published", func(g *Game) **int { return &g.YearPublished }),
//	    reconcile.List("publishers", func(g *Game) *[]string { return &g.Publishers }),
//	    reconcile.Text("description", func(g *Game) *string { return &g.Description }),
//	    reconcile.Curated[Game]("review_state"),
//	)
//
//	res, err := table.Merge(remote, cached)
//	if res.Changed {
//	    // write res.Record back
//	}
package reconcile
