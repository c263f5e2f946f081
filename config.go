package todostore

import (
	"fmt"
	"os"
	"time"
)

// Backend selects which TodoStore implementation backs the service
type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendSQLite   Backend = "sqlite"
	BackendDynamoDB Backend = "dynamodb"
)

// String returns the string representation
func (b Backend) String() string {
	return string(b)
}

// Config holds service-level configuration
type Config struct {
	// Listen address for the HTTP server
	Addr string

	// Store backend selection
	Backend Backend

	// SQLite database path (sqlite backend)
	SQLitePath string

	// DynamoDB table name (dynamodb backend)
	DynamoTable string

	// Graceful shutdown window
	ShutdownTimeout time.Duration
}

// DefaultConfig provides sensible defaults
var DefaultConfig = Config{
	Addr:            ":8080",
	Backend:         BackendMemory,
	SQLitePath:      "todostore.db",
	DynamoTable:     "todos",
	ShutdownTimeout: 5 * time.Second,
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to DefaultConfig for anything unset. An unknown backend is an error so
// a typo fails the process at startup instead of silently serving from
// memory.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig

	if addr := os.Getenv("TODO_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if path := os.Getenv("TODO_SQLITE_PATH"); path != "" {
		cfg.SQLitePath = path
	}
	if table := os.Getenv("TODO_DYNAMO_TABLE"); table != "" {
		cfg.DynamoTable = table
	}

	if backend := os.Getenv("TODO_BACKEND"); backend != "" {
		switch Backend(backend) {
		case BackendMemory, BackendSQLite, BackendDynamoDB:
			cfg.Backend = Backend(backend)
		default:
			return Config{}, fmt.Errorf("unknown backend %q", backend)
		}
	}

	return cfg, nil
}
