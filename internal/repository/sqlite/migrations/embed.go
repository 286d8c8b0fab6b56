package migrations

import "embed"

// FS holds the SQLite schema files, applied in filename order.
//
//go:embed *.sql
var FS embed.FS
