package web

import (
	"embed"
	"html/template"

	"go-ems/internal/dashboard"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded pages. The result is meant for gin's SetHTMLTemplate.
func Templates() *template.Template {
	return template.Must(
		template.New("").
			Funcs(template.FuncMap{"cells": dashboard.Cells}).
			ParseFS(templateFS, "templates/*.html"),
	)
}
