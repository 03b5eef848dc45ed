// Package middleware groups the fiber middleware registered in cmd/start.go.
//
//   - rayid: tags each request with an X-Ray-ID, reusing the caller's header when present.
//   - auth: requires the configured API key in X-API-Key or ?api_key=.
package middleware
