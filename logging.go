package todostore

import (
	"github.com/rs/zerolog"
)

// Log event names
const (
	// Request-level events
	EventRequestStarted   = "request_started"
	EventRequestCompleted = "request_completed"

	// Store-level events
	EventTodoInserted = "todo_inserted"
	EventTodoUpdated  = "todo_updated"
	EventTodoToggled  = "todo_toggled"

	// Persistence events
	EventStoreError = "store_error"
)

// LogTodoInserted logs a successful insert
func LogTodoInserted(logger zerolog.Logger, id uint) {
	logger.Info().
		Str("event", EventTodoInserted).
		Uint("todo_id", id).
		Msg("Todo inserted")
}

// LogTodoUpdated logs a successful full update
func LogTodoUpdated(logger zerolog.Logger, id uint) {
	logger.Info().
		Str("event", EventTodoUpdated).
		Uint("todo_id", id).
		Msg("Todo updated")
}

// LogTodoToggled logs a successful completion flip
func LogTodoToggled(logger zerolog.Logger, id uint) {
	logger.Info().
		Str("event", EventTodoToggled).
		Uint("todo_id", id).
		Msg("Todo toggled")
}

// LogStoreError logs a failed store operation
func LogStoreError(logger zerolog.Logger, operation string, err error) {
	logger.Error().
		Str("event", EventStoreError).
		Str("operation", operation).
		Err(err).
		Msg("Store operation failed")
}

// RequestLogger creates a logger enriched with request context
func RequestLogger(baseLogger zerolog.Logger, requestID, method, path string) zerolog.Logger {
	return baseLogger.With().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Logger()
}
