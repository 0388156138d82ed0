// Package catalog persists songs in SQLite.
//
// Each song keeps its sheet text together with the key it is written in and
// an optional easy key, a simpler key to play it in. The store uses WAL mode
// and retries busy writes so a CLI invocation and a concurrent editor hook
// can share one database file.
package catalog
