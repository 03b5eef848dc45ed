// Package logger builds the zap logger shared by the server, the CLI and the pipelines.
//
// Level debug selects zap's development preset; any other level the production preset.
// Format picks json or console encoding. Message, level and time keys are fixed to
// "message", "level" and "time" so log shippers see the same shape in every mode.
//
// Request handlers tag their entries with the request's ray id:
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Catalog request failed", zap.Error(err))
package logger
