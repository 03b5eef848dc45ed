// Package external exposes the catalog sources over HTTP.
//
// Every source (bgg, csi, mm) gets the same route shape, parameterised by a Route:
//
//	GET    /external/<source>data?<source>id=&source=<source>|db|hybrid&batch=&sync=n|y
//	PUT    /external/<source>data?<source>id=   (upsert the JSON body)
//	POST   /external/<source>data               (insert the JSON body)
//	DELETE /external/<source>data?<source>id=
//
// # Source Parameter
//
// The source query value selects the pipeline mode:
//   - the source's own name (bgg, csi, mm): fetch from the remote site only
//   - db: read the cache only
//   - hybrid: fetch and read the cache, merge, and write back when sync=y
//
// # Responses
//
// A request for one identifier answers with the record itself. A batch answers with
// the records plus per-identifier failures, cache fallbacks, changes and the sync
// report. Failures answer with {"error": title, "kind": kind, "message": detail} and
// a status derived from the failure kind (see Status).
package external
