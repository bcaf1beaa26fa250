// Package templates embeds the HTML pages served by the handlers.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses all embedded templates.
func Load() (*template.Template, error) {
	return template.ParseFS(files, "*.html")
}
