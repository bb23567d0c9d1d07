// Package migrations holds the SQLite schema and the runner that applies it.
package migrations

import "embed"

// FS contains the numbered .sql migration files, applied in lexical order.
//
//go:embed *.sql
var FS embed.FS
