// Package history persists organize runs in SQLite.
//
// The Store records one row per run (source root, dry-run flag, summary
// counters) and one row per processed file (resolved date, provenance,
// outcome, target path). The database is an audit journal, not operational
// state: the pipeline works identically when recording fails, and the
// `snapsort history` command is its only reader.
//
// Schema changes bump the version in schema.go; users delete the database to
// adopt the new schema.
package history
