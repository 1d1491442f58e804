// Package web embeds the single-page client served alongside the API.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var embeddedFiles embed.FS

func Static() (fs.FS, error) {
	return fs.Sub(embeddedFiles, "static")
}
