package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manayush/ajax-new/internal/domain"
)

func TestFormatter_FieldFragments(t *testing.T) {
	verbatim := Formatter{}

	testCases := []struct {
		name     string
		fragment func(*domain.Country) string
		present  *domain.Country
		want     string
	}{
		{"native name", verbatim.NativeName,
			&domain.Country{Name: &domain.Name{NativeName: domain.NewOrderedMap([]string{"deu"}, []domain.NativeName{{Common: "Deutschland"}})}},
			"<p>Native Name: Deutschland</p>"},
		{"capital", verbatim.Capital, &domain.Country{Capital: []string{"Berlin", "Bonn"}}, "<p>Capital: Berlin</p>"},
		{"population", verbatim.Population, &domain.Country{Population: 83240525}, "<p>Population: 83240525</p>"},
		{"region", verbatim.Region, &domain.Country{Region: "Europe"}, "<p>Region: Europe</p>"},
		{"subregion", verbatim.Subregion, &domain.Country{Subregion: "Western Europe"}, "<p>Sub-region: Western Europe</p>"},
		{"area", verbatim.Area, &domain.Country{Area: 357114}, "<p>Area: 357114 Km²</p>"},
		{"fractional area", verbatim.Area, &domain.Country{Area: 0.44}, "<p>Area: 0.44 Km²</p>"},
		{"calling code", verbatim.CallingCode, &domain.Country{IDD: &domain.IDD{Root: "+4", Suffixes: []string{"9", "8"}}}, "<p>Country Code: +49</p>"},
		{"languages", verbatim.Languages,
			&domain.Country{Languages: domain.NewOrderedMap([]string{"fra", "deu"}, []string{"French", "German"})},
			"<p>Languages: French, German</p>"},
		{"currencies", verbatim.Currencies,
			&domain.Country{Currencies: domain.NewOrderedMap([]string{"CHF"}, []domain.Currency{{Name: "Swiss franc", Symbol: "Fr."}})},
			"<p>Currencies: Swiss franc</p>"},
		{"timezones", verbatim.Timezones, &domain.Country{Timezones: []string{"UTC+01:00", "UTC+02:00"}}, "<p>Timezones: UTC+01:00, UTC+02:00</p>"},
		{"flag", verbatim.Flag,
			&domain.Country{Name: &domain.Name{Common: "Germany"}, Flags: &domain.Flags{SVG: "https://flagcdn.com/de.svg"}},
			`<img class='flag-img' src="https://flagcdn.com/de.svg" alt="Germany">`},
	}

	for _, tc := range testCases {
		t.Run(tc.name+"/present", func(t *testing.T) {
			got := tc.fragment(tc.present)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, 1, strings.Count(got, "<p>")+strings.Count(got, "<img"), "exactly one labeled line")
		})
		t.Run(tc.name+"/absent", func(t *testing.T) {
			assert.Equal(t, "", tc.fragment(&domain.Country{}))
		})
	}
}

func TestFormatter_Name(t *testing.T) {
	f := Formatter{}
	assert.Equal(t, "<h1>Japan</h1>", f.Name(&domain.Country{Name: &domain.Name{Common: "Japan"}}))
	assert.Equal(t, "<h1>Unknown Country</h1>", f.Name(&domain.Country{}))
}

func TestFormatter_DetailOmitsMissingRows(t *testing.T) {
	f := Formatter{}
	got := f.Detail(&domain.Country{Name: &domain.Name{Common: "Vatican City"}, Capital: []string{"Vatican City"}})

	assert.Equal(t, `<div class="name"><h1>Vatican City</h1><div id="country-info"><div></div>`+
		`<div class="info-details"><p>Capital: Vatican City</p></div></div></div>`, got)
	for _, label := range []string{"Native Name", "Population", "Region", "Sub-region", "Area", "Country Code", "Languages", "Currencies", "Timezones"} {
		assert.NotContains(t, got, label+":")
	}
}

func TestFormatter_DetailRowOrder(t *testing.T) {
	f := Formatter{}
	got := f.Detail(&domain.Country{
		Capital:    []string{"Bern"},
		Population: 8654622,
		Region:     "Europe",
		Timezones:  []string{"UTC+01:00"},
	})

	capital := strings.Index(got, "Capital:")
	population := strings.Index(got, "Population:")
	region := strings.Index(got, "Region:")
	timezones := strings.Index(got, "Timezones:")
	assert.True(t, capital < population && population < region && region < timezones, got)
}

func TestFormatter_Escaping(t *testing.T) {
	country := &domain.Country{Name: &domain.Name{Common: `<script>alert("x")</script>`}, Region: "A & B"}

	escaped := Formatter{Escape: true}
	assert.Equal(t, "<h1>&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;</h1>", escaped.Name(country))
	assert.Equal(t, "<p>Region: A &amp; B</p>", escaped.Region(country))

	verbatim := Formatter{}
	assert.Equal(t, `<h1><script>alert("x")</script></h1>`, verbatim.Name(country))
	assert.Equal(t, "<p>Region: A & B</p>", verbatim.Region(country))
}

func TestFormatter_Neighbors(t *testing.T) {
	f := Formatter{}

	assert.Equal(t, "<p>No Neighboring Countries</p>", f.Neighbors(nil))

	got := f.Neighbors([]domain.Neighbor{
		{Name: &domain.Name{Common: "Austria"}, Flags: &domain.Flags{SVG: "at.svg"}},
		{},
	})
	assert.Equal(t, `<h2>Neighbour Countries</h2><div id="neighbor-flags">`+
		`<img src="at.svg" alt="Austria" title="Austria">`+
		`<img src="" alt="Unknown Country" title="Unknown Country">`+
		`</div>`, got)
}
