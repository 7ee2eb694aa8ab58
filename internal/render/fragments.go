package render

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/manayush/ajax-new/internal/domain"
)

const (
	unknownCountry  = "Unknown Country"
	loadingHTML     = "<p>Loading...</p>"
	noNeighborsHTML = "<p>No Neighboring Countries</p>"
)

// Formatter turns view models into HTML fragments. Every fragment for an
// absent field is the empty string.
type Formatter struct {
	// Escape HTML-escapes text taken from the API. With it off, remote text is
	// interpolated verbatim.
	Escape bool
}

func (f Formatter) text(s string) string {
	if f.Escape {
		return html.EscapeString(s)
	}
	return s
}

func (f Formatter) line(label, value string) string {
	return fmt.Sprintf("<p>%s: %s</p>", label, f.text(value))
}

// Name is the heading; it falls back to "Unknown Country" rather than vanishing.
func (f Formatter) Name(c *domain.Country) string {
	name, ok := c.CommonName()
	if !ok {
		name = unknownCountry
	}
	return fmt.Sprintf("<h1>%s</h1>", f.text(name))
}

func (f Formatter) Flag(c *domain.Country) string {
	src, ok := c.FlagURL()
	if !ok {
		return ""
	}
	name, _ := c.CommonName()
	return fmt.Sprintf(`<img class='flag-img' src="%s" alt="%s">`, f.text(src), f.text(name))
}

func (f Formatter) NativeName(c *domain.Country) string {
	native, ok := c.NativeName()
	if !ok {
		return ""
	}
	return f.line("Native Name", native)
}

func (f Formatter) Capital(c *domain.Country) string {
	capital, ok := c.FirstCapital()
	if !ok {
		return ""
	}
	return f.line("Capital", capital)
}

func (f Formatter) Population(c *domain.Country) string {
	if c.Population == 0 {
		return ""
	}
	return f.line("Population", strconv.FormatInt(c.Population, 10))
}

func (f Formatter) Region(c *domain.Country) string {
	if c.Region == "" {
		return ""
	}
	return f.line("Region", c.Region)
}

func (f Formatter) Subregion(c *domain.Country) string {
	if c.Subregion == "" {
		return ""
	}
	return f.line("Sub-region", c.Subregion)
}

func (f Formatter) Area(c *domain.Country) string {
	if c.Area == 0 {
		return ""
	}
	return f.line("Area", c.FormattedArea()+" Km²")
}

func (f Formatter) CallingCode(c *domain.Country) string {
	code, ok := c.CallingCode()
	if !ok {
		return ""
	}
	return f.line("Country Code", code)
}

func (f Formatter) Languages(c *domain.Country) string {
	languages := c.Languages.Values()
	if len(languages) == 0 {
		return ""
	}
	return f.line("Languages", strings.Join(languages, ", "))
}

func (f Formatter) Currencies(c *domain.Country) string {
	names := c.CurrencyNames()
	if len(names) == 0 {
		return ""
	}
	return f.line("Currencies", strings.Join(names, ", "))
}

func (f Formatter) Timezones(c *domain.Country) string {
	if len(c.Timezones) == 0 {
		return ""
	}
	return f.line("Timezones", strings.Join(c.Timezones, ", "))
}

// Detail assembles the detail region markup.
func (f Formatter) Detail(c *domain.Country) string {
	var b strings.Builder
	b.WriteString(`<div class="name">`)
	b.WriteString(f.Name(c))
	b.WriteString(`<div id="country-info"><div>`)
	b.WriteString(f.Flag(c))
	b.WriteString(`</div><div class="info-details">`)
	for _, fragment := range []func(*domain.Country) string{
		f.NativeName,
		f.Capital,
		f.Population,
		f.Region,
		f.Subregion,
		f.Area,
		f.CallingCode,
		f.Languages,
		f.Currencies,
		f.Timezones,
	} {
		b.WriteString(fragment(c))
	}
	b.WriteString(`</div></div></div>`)
	return b.String()
}

// Neighbors renders the flag strip. An empty list renders the fallback text.
func (f Formatter) Neighbors(neighbors []domain.Neighbor) string {
	if len(neighbors) == 0 {
		return noNeighborsHTML
	}
	var b strings.Builder
	b.WriteString(`<h2>Neighbour Countries</h2><div id="neighbor-flags">`)
	for _, n := range neighbors {
		name, ok := n.DisplayName()
		if !ok {
			name = unknownCountry
		}
		fmt.Fprintf(&b, `<img src="%s" alt="%s" title="%s">`, f.text(n.FlagURL()), f.text(name), f.text(name))
	}
	b.WriteString(`</div>`)
	return b.String()
}
