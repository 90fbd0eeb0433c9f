// Package migrations holds the Postgres schema of the results service.
package migrations

import "github.com/uptrace/bun/migrate"

// Migrations is the ordered set applied by `bigfive migrate`.
var Migrations = migrate.NewMigrations()
