// Package templates embeds the HTML pages rendered by the controllers.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses every embedded page
func Load() (*template.Template, error) {
	return template.New("").ParseFS(files, "*.html")
}
