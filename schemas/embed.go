// Package schemas provides the embedded SQL schema files.
package schemas

import (
	_ "embed"
)

// Schema is the MySQL DDL for all tables, applied by the db init
// command. Statements use IF NOT EXISTS so applying it is idempotent.
//
//go:embed schema.sql
var Schema string
