package domain

import (
	"strconv"
	"strings"
)

// Country is the subset of a REST Countries v3.1 record shown on the detail page.
// Every field is optional; a nil pointer, nil collection or zero value means absent.
type Country struct {
	Name       *Name                `json:"name,omitempty"`
	Flags      *Flags               `json:"flags,omitempty"`
	Capital    []string             `json:"capital,omitempty"`
	Population int64                `json:"population,omitempty"`
	Region     string               `json:"region,omitempty"`
	Subregion  string               `json:"subregion,omitempty"`
	Area       float64              `json:"area,omitempty"`
	IDD        *IDD                 `json:"idd,omitempty"`
	Languages  OrderedMap[string]   `json:"languages,omitzero"`
	Currencies OrderedMap[Currency] `json:"currencies,omitzero"`
	Timezones  []string             `json:"timezones,omitempty"`
	Borders    []string             `json:"borders,omitempty"`
}

// Neighbor is one entry of a batch lookup by border codes.
type Neighbor struct {
	CCA3  string `json:"cca3,omitempty"`
	Name  *Name  `json:"name,omitempty"`
	Flags *Flags `json:"flags,omitempty"`
}

type Name struct {
	Common     string                 `json:"common,omitempty"`
	Official   string                 `json:"official,omitempty"`
	NativeName OrderedMap[NativeName] `json:"nativeName,omitzero"`
}

type NativeName struct {
	Official string `json:"official,omitempty"`
	Common   string `json:"common,omitempty"`
}

type Flags struct {
	PNG string `json:"png,omitempty"`
	SVG string `json:"svg,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// IDD is the international direct dialing prefix, e.g. root "+4" and suffixes ["9"].
type IDD struct {
	Root     string   `json:"root,omitempty"`
	Suffixes []string `json:"suffixes,omitempty"`
}

type Currency struct {
	Name   string `json:"name,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

// First returns index 0 of s, or false when s is empty.
func First[T any](s []T) (T, bool) {
	var zero T
	if len(s) == 0 {
		return zero, false
	}
	return s[0], true
}

// CommonName returns the country's common name.
func (c *Country) CommonName() (string, bool) {
	if c.Name == nil || c.Name.Common == "" {
		return "", false
	}
	return c.Name.Common, true
}

// NativeName returns the common form of the first native name in response order.
func (c *Country) NativeName() (string, bool) {
	if c.Name == nil {
		return "", false
	}
	native, ok := First(c.Name.NativeName.Values())
	if !ok {
		return "", false
	}
	return native.Common, true
}

// FlagURL returns the SVG flag URL. The bool reports whether flags were sent at all.
func (c *Country) FlagURL() (string, bool) {
	if c.Flags == nil {
		return "", false
	}
	return c.Flags.SVG, true
}

func (c *Country) FirstCapital() (string, bool) {
	return First(c.Capital)
}

// CallingCode joins the IDD root with its first suffix. A country with suffixes
// but no root has no usable calling code.
func (c *Country) CallingCode() (string, bool) {
	if c.IDD == nil || c.IDD.Root == "" {
		return "", false
	}
	suffix, _ := First(c.IDD.Suffixes)
	return c.IDD.Root + suffix, true
}

// CurrencyNames lists currency names in response order.
func (c *Country) CurrencyNames() []string {
	currencies := c.Currencies.Values()
	if len(currencies) == 0 {
		return nil
	}
	names := make([]string, 0, len(currencies))
	for _, cur := range currencies {
		names = append(names, cur.Name)
	}
	return names
}

// FormattedArea renders the area the way a JavaScript number prints: no
// trailing ".0" and no exponent for realistic values.
func (c *Country) FormattedArea() string {
	return strconv.FormatFloat(c.Area, 'f', -1, 64)
}

// DisplayName returns the neighbor's common name.
func (n Neighbor) DisplayName() (string, bool) {
	if n.Name == nil || n.Name.Common == "" {
		return "", false
	}
	return n.Name.Common, true
}

func (n Neighbor) FlagURL() string {
	if n.Flags == nil {
		return ""
	}
	return n.Flags.SVG
}

// JoinCodes joins border codes for the batch lookup endpoint, dropping blanks.
func JoinCodes(codes []string) string {
	kept := make([]string, 0, len(codes))
	for _, code := range codes {
		if code = strings.TrimSpace(code); code != "" {
			kept = append(kept, code)
		}
	}
	return strings.Join(kept, ",")
}
