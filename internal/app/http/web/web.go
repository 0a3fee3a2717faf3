package web

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/index.html.tmpl
var files embed.FS

var index = template.Must(template.ParseFS(files, "templates/index.html.tmpl"))

// Index writes the single quoting page.
func Index(w io.Writer) error {
	return index.Execute(w, nil)
}
