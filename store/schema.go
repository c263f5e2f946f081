package store

import "fmt"

// SQLite schema: one table, identifier as primary key. The DDL is
// idempotent so startup can run it unconditionally.
const (
	SQLiteTableName = "todos"

	createTodosTableSQL = `CREATE TABLE IF NOT EXISTS todos (
	id        INTEGER PRIMARY KEY,
	name      TEXT    NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0
)`
)

// DynamoDB schema constants for single-table design
const (
	AttrPK         = "PK"
	AttrSK         = "SK"
	AttrEntityType = "entity_type"

	EntityTypeTodo = "Todo"
)

// Todo keys: PK=TODO#{id}, SK=META
func todoPK(id uint) string {
	return fmt.Sprintf("TODO#%d", id)
}

func todoSK() string {
	return "META"
}
