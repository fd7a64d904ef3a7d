package server

import (
	"fmt"
	"html/template"

	"github.com/iwvelando/eurolens/internal/view"
)

// pageTemplates lists the page templates; each is parsed together with the
// shared layout.
var pageTemplates = []string{"home", "interest_rates", "inflation", "comparison", "not_found"}

var templateFuncs = template.FuncMap{
	"trendArrow": func(t view.Trend) string {
		switch t {
		case view.TrendUp:
			return "▲"
		case view.TrendDown:
			return "▼"
		}
		return ""
	},
	"toneAt": func(tones []string, i int) string {
		if i < len(tones) {
			return tones[i]
		}
		return ""
	},
}

func parseTemplates() (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(pageTemplates))
	for _, name := range pageTemplates {
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFiles,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return templates, nil
}

func mustParseTemplates() map[string]*template.Template {
	templates, err := parseTemplates()
	if err != nil {
		panic(err)
	}
	return templates
}
