// Package yokeair exposes repository-level assets such as the SQL migrations
// so they can be embedded into the binary.
package yokeair

import "embed"

// Migrations holds the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
