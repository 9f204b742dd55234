package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// MustTemplates is Templates for use at startup
func MustTemplates() *template.Template {
	return template.Must(Templates())
}

// Static returns the embedded static assets rooted at the static directory
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
