// Package sqlite provides the SQLite-backed RunStore adapter.
//
// It uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. The schema is
// managed through versioned migrations embedded from the migrations/
// directory.
//
// # Data Location
//
// By default, the database is stored at ~/.seokw/data/runs.db
//
// # Thread Safety
//
// All operations are thread-safe through SQLite's WAL-mode locking.
package sqlite
