package embedded

import (
	"embed"
)

// FS embeds the operations registry and the language probe scripts at build time.
//
//go:embed registry/* probes/*
var FS embed.FS
