// Package renderer turns view-model projections into markdown documents
// for the terminal. Rendering is presentation only: every value arrives
// already localized and formatted, so the templates stay free of logic
// beyond iteration.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// renderTemplate executes a named template file with the given data.
// Template failures are programming errors, not user input errors, so
// they render as an error line instead of being returned.
func renderTemplate(name, file string, data any) string {
	tmpl, err := template.New(name).Funcs(funcs).ParseFS(templates, "templates/"+file)
	if err != nil {
		return fmt.Sprintf("renderer error: %v\n", err)
	}
	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, file, data); err != nil {
		return fmt.Sprintf("renderer error: %v\n", err)
	}
	return b.String()
}

var funcs = template.FuncMap{
	"join": strings.Join,
}
