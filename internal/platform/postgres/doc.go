// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces. Each entity kind lives in its own table; task rows
// additionally embed JSONB snapshots of the tag/user/column records
// their references resolved to at write time. Stores operate on a
// store.DBTX, so they work equally against a connection pool or a
// transaction, and each operation is atomic at single-row granularity.
package postgres
