// Package web holds the embedded HTML pages rendered by the handlers.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded page templates. Embedding keeps the binary
// self-contained and lets handler tests render without a working directory.
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}
