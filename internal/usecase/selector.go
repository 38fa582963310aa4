package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"go.ngs.io/surf-api/internal/domain"
)

// DefaultCountries is the fixed group order of the beach selector.
var DefaultCountries = []string{"Brasil", "España"}

// OptionGroup is one country group of the beach selector.
type OptionGroup struct {
	Country string
	Options []Option
}

// Option is a single selectable beach.
type Option struct {
	ID   string
	Name string
}

var selectorTmpl = template.Must(template.New("selector").Parse(
	`{{range .}}<optgroup label="{{.Country}}">{{range .Options}}<option value="{{.ID}}">{{.Name}}</option>{{end}}</optgroup>
{{end}}`))

// BuildGroups groups beaches by country. The countries listed in fixed come
// first, in that order, and are always present. Any other country gets its own
// group afterwards, sorted by name. Options are sorted by display name.
func BuildGroups(beaches []domain.Beach, fixed []string) []OptionGroup {
	byCountry := make(map[string][]Option)
	for _, b := range beaches {
		byCountry[b.Country] = append(byCountry[b.Country], Option{ID: b.ID, Name: b.Name})
	}

	col := collate.New(language.Spanish)

	groups := make([]OptionGroup, 0, len(fixed)+len(byCountry))
	used := make(map[string]bool, len(fixed))
	for _, country := range fixed {
		if used[country] {
			continue
		}
		used[country] = true
		groups = append(groups, OptionGroup{Country: country, Options: sortOptions(col, byCountry[country])})
	}

	extra := make([]string, 0)
	for country := range byCountry {
		if !used[country] {
			extra = append(extra, country)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return col.CompareString(extra[i], extra[j]) < 0 })

	for _, country := range extra {
		groups = append(groups, OptionGroup{Country: country, Options: sortOptions(col, byCountry[country])})
	}

	return groups
}

func sortOptions(col *collate.Collator, opts []Option) []Option {
	sorted := make([]Option, len(opts))
	copy(sorted, opts)
	sort.Slice(sorted, func(i, j int) bool {
		if c := col.CompareString(sorted[i].Name, sorted[j].Name); c != 0 {
			return c < 0
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// RenderSelector renders groups as <optgroup>/<option> markup.
func RenderSelector(groups []OptionGroup) (template.HTML, error) {
	var buf bytes.Buffer
	if err := selectorTmpl.Execute(&buf, groups); err != nil {
		return "", fmt.Errorf("failed to render selector: %w", err)
	}
	//nolint:gosec // G203: Output is produced by html/template and already escaped.
	return template.HTML(buf.String()), nil
}
