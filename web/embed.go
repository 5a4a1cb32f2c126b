// Package web embeds the built explorer UI assets.
package web

import "embed"

// Assets holds the static explorer UI served by the web server.
//
//go:embed dist
var Assets embed.FS
