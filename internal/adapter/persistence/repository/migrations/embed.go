package migrations

import "embed"

// FS contains the embedded schema migrations, one directory per SQL dialect.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
