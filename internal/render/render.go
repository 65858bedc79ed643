// Copyright (c) 2026 Anhar Fahrudin <hi@anharfhd.space>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// Templates are embedded at compile time; each page template is paired
// with the base layout.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/anharfhdn/portfolio/internal/site"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds all data passed to page templates.
type PageData struct {
	Title string // Page title for the <title> tag
	Data  map[string]any
}

// Renderer handles template parsing and execution for public pages.
type Renderer struct {
	templates map[string]*template.Template
}

// New creates a Renderer by parsing all page templates from the
// embedded filesystem against the base layout.
func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		// rawHTML marks pre-rendered post bodies as safe. Bodies are
		// either goldmark output or sanitized legacy HTML by the time
		// they reach a template.
		"rawHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
		"experience": func() string {
			return site.ExperienceDuration(time.Now())
		},
	}

	pages, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	for _, entry := range pages {
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if name == "base" {
			continue
		}
		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(
			templateFS, "templates/base.html", "templates/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", entry.Name(), err)
		}
		r.templates[name] = tmpl
	}

	return r, nil
}

// Page renders the named page template wrapped in the base layout.
func (r *Renderer) Page(w http.ResponseWriter, name string, data *PageData) {
	tmpl, ok := r.templates[name]
	if !ok {
		slog.Error("unknown template", "name", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base.html", data); err != nil {
		slog.Error("template execute failed", "name", name, "error", err)
	}
}
