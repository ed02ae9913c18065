package httphandler

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(
	template.New("").Funcs(template.FuncMap{
		"money": func(d decimal.Decimal) string { return d.StringFixed(2) },
	}).ParseFS(templatesFS, "templates/*.html"),
)

func render(w http.ResponseWriter, name string, data any) {
	const op = "render"

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		slog.Error("failed to render template",
			"op", op, "template", name, "err", err)
	}
}
