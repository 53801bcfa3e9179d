// Package render renders the application's HTML pages from embedded
// templates.
//
// Feedback content is written in Markdown and converted with goldmark,
// which omits raw HTML by default so user content cannot inject markup.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"

	"github.com/doodlesbykumbi/feedback-in-go/pkg/logger"
	"github.com/doodlesbykumbi/feedback-in-go/pkg/session"
)

//go:embed templates/*.html.tmpl
var templateFiles embed.FS

// pages are the templates rendered on top of the base layout.
var pages = []string{
	"root",
	"users",
	"user",
	"register_form",
	"login_form",
	"feedback_form",
	"error",
}

// Page is the data handed to every template.
type Page struct {
	Title       string
	CurrentUser string
	Flashes     []session.Flash
	Data        any
}

// Renderer holds the parsed page templates.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses all embedded templates.
func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"markdown": Markdown,
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.New("base.html.tmpl").Funcs(funcs).ParseFS(
			templateFiles,
			"templates/base.html.tmpl",
			"templates/"+page+".html.tmpl",
		)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		templates[page] = t
	}

	return &Renderer{templates: templates}, nil
}

// HTML renders the named page. Render failures after headers are written
// cannot be recovered, so the page is rendered to a buffer first.
func (r *Renderer) HTML(w http.ResponseWriter, status int, name string, page Page) {
	log := logger.Get()
	t, ok := r.templates[name]
	if !ok {
		log.Error().Str("template", name).Msg("unknown template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base.html.tmpl", page); err != nil {
		log.Error().Err(err).Str("template", name).Msg("template execution failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Markdown converts Markdown source to sanitised HTML.
func Markdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		// Fall back to the escaped source.
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(buf.String())
}
