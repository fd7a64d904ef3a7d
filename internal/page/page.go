// Package page builds the view models of the dashboard pages from a page
// state and the datasets. Builders are pure: the same state and data always
// produce the same model.
package page

import (
	"net/http"
	"net/url"

	"github.com/iwvelando/eurolens/internal/view"
)

// Paths of the routed pages.
const (
	PathHome          = "/"
	PathInterestRates = "/interest-rates"
	PathInflation     = "/inflation"
	PathComparison    = "/comparison"
)

// View is a built page ready to render.
type View interface {
	// Name identifies the page template.
	Name() string
	Title() string
	Status() int
	Charts() []Chart
}

// Card is a headline figure.
type Card struct {
	Label  string     `json:"label"`
	Value  string     `json:"value"`
	Detail string     `json:"detail,omitempty"`
	Tone   string     `json:"tone,omitempty"`
	Trend  view.Trend `json:"trend,omitempty"`
}

// Tab is one option of an enumerated control. Href carries the state the page
// moves to when the option is picked.
type Tab struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

// Table is a rendered data table.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    []TableRow `json:"rows"`
}

// TableRow is one line of a Table.
type TableRow struct {
	Label string   `json:"label"`
	Cells []string `json:"cells"`
	Tones []string `json:"tones,omitempty"`
}

// Href joins a path and a query.
func Href(path string, q url.Values) string {
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// NotFound is the fallback page for unmatched paths.
type NotFound struct {
	Path     string `json:"path"`
	HomeHref string `json:"homeHref"`
}

// BuildNotFound returns the not-found page for path.
func BuildNotFound(path string) NotFound {
	return NotFound{Path: path, HomeHref: PathHome}
}

func (NotFound) Name() string    { return "not_found" }
func (NotFound) Title() string   { return "Page Not Found" }
func (NotFound) Status() int     { return http.StatusNotFound }
func (NotFound) Charts() []Chart { return nil }
