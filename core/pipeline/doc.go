// Package pipeline resolves catalog records from an external source, the cache, or both.
//
// One Pipeline serves one source (bgg, csi, mm). Each Resolve call walks the same
// state machine:
//
//	Init -> Fetching{remote?, cache?} -> Merging -> (Syncing) -> Done
//
// # Modes
//
//   - remote: fetch and parse only. Batch-capable sources fetch the whole identifier
//     range in one round trip; other sources fetch one identifier per round trip.
//   - cache: read one record from the repository. Batches are rejected.
//   - hybrid: fetch remote and read the cache concurrently, merge with the source's
//     reconcile.Table, and write changed records back when Sync is set.
//
// # Failures
//
// Identifiers that fail inside a multi-identifier request are reported in
// Result.Failures while the rest of the batch is returned. A single-identifier
// request returns the typed error instead. In hybrid mode a failed remote fetch
// falls back to the cached copy (reported in Result.Fallbacks), and sync write
// failures are reported in Result.Sync without discarding the merged records.
//
// The pipeline keeps no state between calls besides the injected collaborators.
package pipeline
