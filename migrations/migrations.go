// Package migrations embeds the versioned SQL schema files so the migrate
// command works without access to the source tree.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
