package migrations

import "embed"

// Files forward-only SQL миграции, встроенные в бинарник
//
//go:embed *.sql
var Files embed.FS
