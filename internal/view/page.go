package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"penal-engine/internal/format"
	"penal-engine/internal/model"
	"penal-engine/internal/reference"
)

//go:embed templates/*.html
var templateFS embed.FS

// Option is one entry of a <select>.
type Option struct {
	Value    int
	Label    string
	Selected bool
}

// Form holds the calculator inputs as submitted, for redisplay.
type Form struct {
	Pena       string
	Atenuantes int
	Agravantes int
	Tiempo     string
}

// Page is everything a template needs to render one view.
type Page struct {
	Tab      Tab
	Lang     string
	HubURL   string
	Catalog  *reference.Catalog
	Offenses []reference.ResolvedOffense
	Form     Form
	Result   *model.CalculationResult
}

// ShowRemaining mirrors the form: the remaining-time box only appears once
// some time has been served.
func (p Page) ShowRemaining() bool {
	return p.Result != nil && p.Result.DaysServed > 0
}

func (p Page) Links() []TabLink {
	return Links(p.Tab)
}

func (p Page) MitigatingOptions() []Option {
	return markSelected([]Option{
		{Value: 0, Label: "Ninguna"},
		{Value: 1, Label: "1 atenuante (rebaja 1 grado)"},
		{Value: 2, Label: "2 o mas atenuantes (rebaja 2 grados)"},
		{Value: 3, Label: "Atenuante muy calificada (rebaja 3 grados)"},
	}, p.Form.Atenuantes)
}

func (p Page) AggravatingOptions() []Option {
	return markSelected([]Option{
		{Value: 0, Label: "Ninguna"},
		{Value: 1, Label: "1 agravante (sube 1 grado)"},
		{Value: 2, Label: "2 o mas agravantes (sube 2 grados)"},
	}, p.Form.Agravantes)
}

func markSelected(opts []Option, v int) []Option {
	for i := range opts {
		opts[i].Selected = opts[i].Value == v
	}
	return opts
}

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

var funcs = template.FuncMap{
	"days":      format.DaysToText,
	"thousands": format.Thousands,
	"inc":       func(i int) int { return i + 1 },
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	return NewRendererFS(templateFS)
}

// NewRendererFS parses templates/*.html from fsys.
func NewRendererFS(fsys fs.FS) (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("view.NewRenderer: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the full HTML document for p.
func (r *Renderer) Render(w io.Writer, p Page) error {
	if err := r.tmpl.ExecuteTemplate(w, "layout", p); err != nil {
		return fmt.Errorf("view.Render %s: %w", p.Tab, err)
	}
	return nil
}

// RenderNotFound writes the 404 document.
func (r *Renderer) RenderNotFound(w io.Writer, p Page) error {
	if err := r.tmpl.ExecuteTemplate(w, "notfound", p); err != nil {
		return fmt.Errorf("view.RenderNotFound: %w", err)
	}
	return nil
}
