// Package db embeds the SQL migrations so production builds carry the
// schema inside the binary.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
