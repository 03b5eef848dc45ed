// Package server holds the HTTP server configuration.
//
// The cmd package starts the Fiber application; this package only defines the
// settings it reads: the listen port, the API key guarding every route, and the
// read and write timeouts.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by cmd/start.go to configure Fiber.
package server
