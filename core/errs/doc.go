// Package errs defines the failure taxonomy shared by the ingestion pipeline.
//
// Every component (parsers, fetch client, reconcile engine, repository, pipeline)
// returns a typed *Error instead of a raw transport or driver error, so callers can
// branch on the failure Kind without string matching.
//
// # Kinds
//
//   - NotFound: the identifier is unknown to the source or the cache.
//   - Malformed: the markup could not be parsed into a record.
//   - RateLimited, ServerFault: transient upstream failures; callers may retry with backoff.
//   - ClientFault: permanent upstream rejection of the request shape.
//   - TransportFault: network failure or timeout.
//   - RepositoryFault: cache read/write failure.
//   - InvalidParameters: the caller violated the request contract.
//
// # Usage
//
//	if errs.Is(err, errs.NotFound) {
//	    return c.Status(fiber.StatusNotFound).JSON(...)
//	}
package errs
