package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/google/uuid"
	"golang.org/x/net/html"
)

// Region is one named container of the page. Writes replace its content.
type Region struct {
	html    string
	text    string
	touched bool
}

// SetHTML replaces the region's markup.
func (r *Region) SetHTML(markup string) {
	r.html = markup
	r.text = ""
	r.touched = true
}

// SetText replaces the region's content with plain text.
func (r *Region) SetText(text string) {
	r.html = html.EscapeString(text)
	r.text = text
	r.touched = true
}

func (r *Region) HTML() string { return r.html }

// Text returns what was last written with SetText.
func (r *Region) Text() string { return r.text }

// Touched reports whether anything was ever written to the region.
func (r *Region) Touched() bool { return r.touched }

func (r Region) MarshalYAML() (interface{}, error) {
	return r.html, nil
}

// Page holds the three regions one render writes into.
type Page struct {
	RequestID string `yaml:"request_id"`
	Detail    Region `yaml:"country_detail"`
	Neighbors Region `yaml:"neighbor_countries"`
	Error     Region `yaml:"error_message"`
}

// NewPage returns an empty page with a fresh request id.
func NewPage() *Page {
	return &Page{RequestID: uuid.NewString()}
}

var pageTemplate = template.Must(template.New("detail").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body data-request-id="{{.RequestID}}">
<a href="index.html">Back</a>
<div id="error-message">{{.Error}}</div>
<div id="country-detail">{{.Detail}}</div>
<div id="neighbor-countries">{{.Neighbors}}</div>
</body>
</html>
`))

type pageView struct {
	Title     string
	RequestID string
	Detail    template.HTML
	Neighbors template.HTML
	Error     template.HTML
}

// WriteHTML renders the full document hosting the three regions.
func (p *Page) WriteHTML(w io.Writer) error {
	view := pageView{
		Title:     "Country Details",
		RequestID: p.RequestID,
		Detail:    template.HTML(p.Detail.HTML()),
		Neighbors: template.HTML(p.Neighbors.HTML()),
		Error:     template.HTML(p.Error.HTML()),
	}
	if err := pageTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
