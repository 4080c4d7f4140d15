package landing

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/AmGarera/tagnpark-landing/waitlist"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page renders the landing page around the waitlist form state.
type Page struct {
	tmpl    *template.Template
	content Content
}

type pageData struct {
	Content
	Form waitlist.State
}

func NewPage(content Content) (*Page, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse landing template: %w", err)
	}
	return &Page{tmpl: tmpl, content: content}, nil
}

// Render writes the full page. Output is buffered so a template error never
// leaves a half-written response.
func (p *Page) Render(w io.Writer, form waitlist.State) error {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, "index.html", pageData{Content: p.content, Form: form}); err != nil {
		return fmt.Errorf("failed to render landing page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
