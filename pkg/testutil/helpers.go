// Package testutil provides common utility functions for testing.
package testutil

import (
	"strings"
	"testing"

	"github.com/antchfx/htmlquery"
	"github.com/iwvelando/eurolens/internal/page"
	"golang.org/x/net/html"
)

// FindRow finds a row by label in a rendered table.
// Returns a pointer to the row if found, nil otherwise.
func FindRow(table page.Table, label string) *page.TableRow {
	for i := range table.Rows {
		if table.Rows[i].Label == label {
			return &table.Rows[i]
		}
	}
	return nil
}

// ParseHTML parses a rendered page, failing the test on malformed markup.
func ParseHTML(t testing.TB, body string) *html.Node {
	t.Helper()
	doc, err := htmlquery.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("failed to parse HTML: %v", err)
	}
	return doc
}

// Texts returns the trimmed inner text of every node matching expr.
func Texts(t testing.TB, doc *html.Node, expr string) []string {
	t.Helper()
	nodes, err := htmlquery.QueryAll(doc, expr)
	if err != nil {
		t.Fatalf("invalid xpath %q: %v", expr, err)
	}
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, strings.TrimSpace(htmlquery.InnerText(n)))
	}
	return out
}
