// Package migrations embeds the SQL migration files so the service can
// bring its own schema up at startup without a separate goose invocation.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
