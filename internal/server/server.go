// Package server serves the dashboard pages over HTTP along with a read-only
// JSON API for page models and dataset exports.
package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iwvelando/eurolens/internal/dataset"
	"github.com/iwvelando/eurolens/internal/page"
	"github.com/iwvelando/eurolens/internal/state"
	"github.com/iwvelando/eurolens/pkg/output"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

//go:embed templates/*.html
var templateFiles embed.FS

// Options tunes the handler. The zero value serves uncached and unlimited.
type Options struct {
	Version           string
	CacheTTL          time.Duration
	RequestsPerSecond float64
	Burst             int
}

type handler struct {
	logger    *zap.Logger
	version   string
	data      dataset.Collections
	templates map[string]*template.Template
	pages     *cache.Cache
}

// route maps a navigable path to the page built for it. State decodes the
// query into the page's canonical state query, which also keys the page cache.
type route struct {
	Path  string
	Label string
	Name  string
	State func(q url.Values) url.Values
	Build func(q url.Values, data dataset.Collections) page.View
}

var routes = []route{
	{
		Path:  page.PathHome,
		Label: "Overview",
		Name:  "home",
		State: func(url.Values) url.Values { return nil },
		Build: func(_ url.Values, data dataset.Collections) page.View {
			return page.BuildHome(data)
		},
	},
	{
		Path:  page.PathInterestRates,
		Label: "Interest Rates",
		Name:  "interest-rates",
		State: func(q url.Values) url.Values { return state.ParseInterestRates(q).Query() },
		Build: func(q url.Values, data dataset.Collections) page.View {
			return page.BuildInterestRates(state.ParseInterestRates(q), data)
		},
	},
	{
		Path:  page.PathInflation,
		Label: "Inflation",
		Name:  "inflation",
		State: func(q url.Values) url.Values { return state.ParseInflation(q).Query() },
		Build: func(q url.Values, data dataset.Collections) page.View {
			return page.BuildInflation(state.ParseInflation(q), data)
		},
	},
	{
		Path:  page.PathComparison,
		Label: "Country Comparison",
		Name:  "comparison",
		State: func(q url.Values) url.Values { return state.ParseComparison(q).Query() },
		Build: func(q url.Values, data dataset.Collections) page.View {
			return page.BuildComparison(state.ParseComparison(q), data)
		},
	},
}

// notFoundCacheKey is shared by every unmatched path; the not-found page does
// not depend on the path.
const notFoundCacheKey = "not_found"

// cacheKey returns the key for a rendered page. Queries are reduced to the
// decoded page state so unknown or malformed parameters share an entry.
func cacheKey(rt route, matched bool, q url.Values) string {
	if !matched {
		return notFoundCacheKey
	}
	return page.Href(rt.Path, rt.State(q))
}

func lookupRoute(match func(route) bool) (route, bool) {
	for _, r := range routes {
		if match(r) {
			return r, true
		}
	}
	return route{}, false
}

// NewHandler constructs the HTTP handler that serves the dashboard over the
// compiled-in datasets.
func NewHandler(logger *zap.Logger, opts Options) http.Handler {
	return newHandler(logger, dataset.Default(), opts)
}

func newHandler(logger *zap.Logger, data dataset.Collections, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:    logger,
		version:   trimmedVersion,
		data:      data,
		templates: mustParseTemplates(),
	}
	if opts.CacheTTL > 0 {
		h.pages = cache.New(opts.CacheTTL, 2*opts.CacheTTL)
	}

	mux := http.NewServeMux()

	// Page models as JSON
	mux.HandleFunc("/api/pages/", h.handlePageModel)

	// Raw dataset exports
	mux.HandleFunc("/api/datasets/", h.handleDataset)

	mux.HandleFunc("/api/datasets", h.handleDatasetIndex)
	mux.HandleFunc("/api/version", h.handleVersion)
	mux.HandleFunc("/api/health", h.handleHealth)

	// Static assets (chart script, stylesheet)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(sub))))

	// Routed pages and the not-found fallback
	mux.HandleFunc("/", h.handlePage)

	var limiter *rateLimiter
	if opts.RequestsPerSecond > 0 && opts.Burst > 0 {
		limiter = newRateLimiter(opts.RequestsPerSecond, opts.Burst)
	}

	return chain(mux,
		recoverPanics(logger),
		requestID,
		logRequests(logger),
		limitRate(limiter),
	)
}

type shell struct {
	Title   string
	Nav     []navItem
	Version string
	Page    page.View
	Charts  []page.Chart
}

type navItem struct {
	Path   string
	Label  string
	Active bool
}

type renderedPage struct {
	status int
	body   []byte
}

// readOnly reports whether the request uses one of the methods every route
// accepts: GET, or HEAD for its headers.
func readOnly(r *http.Request) bool {
	return r.Method == http.MethodGet || r.Method == http.MethodHead
}

func (h *handler) handlePage(w http.ResponseWriter, r *http.Request) {
	if !readOnly(r) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	rt, matched := lookupRoute(func(rt route) bool { return rt.Path == r.URL.Path })
	key := cacheKey(rt, matched, r.URL.Query())
	if h.pages != nil {
		if cached, ok := h.pages.Get(key); ok {
			h.writePage(w, cached.(renderedPage))
			return
		}
	}

	var v page.View
	if matched {
		v = rt.Build(r.URL.Query(), h.data)
	} else {
		v = page.BuildNotFound(r.URL.Path)
	}

	body, err := h.render(v, r.URL.Path)
	if err != nil {
		h.logger.Error("failed to render page",
			zap.String("op", "server.handlePage"),
			zap.String("page", v.Name()),
			zap.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	rendered := renderedPage{status: v.Status(), body: body}
	if h.pages != nil {
		h.pages.Set(key, rendered, cache.DefaultExpiration)
	}
	h.writePage(w, rendered)
}

func (h *handler) writePage(w http.ResponseWriter, p renderedPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(p.status)
	if _, err := w.Write(p.body); err != nil {
		h.logger.Warn("failed to write page",
			zap.String("op", "server.writePage"),
			zap.Error(err),
		)
	}
}

func (h *handler) render(v page.View, path string) ([]byte, error) {
	tmpl, ok := h.templates[v.Name()]
	if !ok {
		return nil, fmt.Errorf("no template for page %q", v.Name())
	}

	data := shell{
		Title:   v.Title(),
		Version: h.version,
		Page:    v,
		Charts:  v.Charts(),
	}
	for _, rt := range routes {
		data.Nav = append(data.Nav, navItem{Path: rt.Path, Label: rt.Label, Active: rt.Path == path})
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", v.Name(), err)
	}
	return buf.Bytes(), nil
}

func (h *handler) handlePageModel(w http.ResponseWriter, r *http.Request) {
	if !readOnly(r) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/pages/")
	rt, ok := lookupRoute(func(rt route) bool { return rt.Name == name })
	if !ok {
		h.respondErrorWithOp(w, http.StatusNotFound, fmt.Sprintf("unknown page %q", name), "server.handlePageModel")
		return
	}

	h.writeJSON(w, http.StatusOK, rt.Build(r.URL.Query(), h.data))
}

func (h *handler) handleDatasetIndex(w http.ResponseWriter, r *http.Request) {
	if !readOnly(r) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string][]string{
		"datasets": dataset.DatasetNames(),
	})
}

func (h *handler) handleDataset(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleDataset"
	if !readOnly(r) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	format, err := output.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	table, err := dataset.Export(strings.TrimPrefix(r.URL.Path, "/api/datasets/"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, dataset.ErrUnknownDataset) {
			status = http.StatusNotFound
		}
		h.respondErrorWithOp(w, status, err.Error(), op)
		return
	}

	var buf bytes.Buffer
	if err := output.Encode(&buf, format, table); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("failed to write dataset export",
			zap.String("op", op),
			zap.String("dataset", table.Name),
			zap.Error(err),
		)
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !readOnly(r) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !readOnly(r) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
