// Package store provides persistence implementations for the todo service.
// The TodoStore interface is defined in the parent todostore package
// (../store_interface.go) to avoid import cycles between the domain
// and store packages.
//
// This package contains concrete implementations:
//   - MemoryStore: In-memory backend guarded by a reader/writer lock
//   - SQLiteStore: Durable single-table relational backend
//   - DynamoDBStore: Durable single-table AWS DynamoDB backend
//
// Schema constants and key builders live in schema.go.
package store
