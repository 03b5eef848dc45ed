// Package integrity reports on the health of the catalog's storage.
//
// # Checks Provided
//
//   - Schema: Validates that every cache table matches its GORM model (columns, declared types) and counts its rows.
//   - Archive: Checks that the raw document bucket exists and counts the archived documents of each source.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/archive : Runs the archive check (supports ?fix=true).
package integrity
