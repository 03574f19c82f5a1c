package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"strings"

	"cxdash/chartimg"
	"cxdash/store"
	"cxdash/utils"
	"cxdash/view"
	"cxdash/web"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	ds "github.com/starfederation/datastar-go/datastar"
)

// Dashboard renders the page once from the provider's records; every request reads that same tree.
type Dashboard struct {
	templates *template.Template
	page      *view.Page
}

type tooltipSig struct {
	Tooltip struct {
		Panel string `json:"panel"`
		Index int    `json:"index"`
	} `json:"tooltip"`
}

func NewDashboard(provider store.Provider) (*Dashboard, error) {
	templates := template.New("").Funcs(template.FuncMap{
		"add":         func(a, b float64) float64 { return a + b },
		"sub":         func(a, b float64) float64 { return a - b },
		"formatValue": func(v float64) string { return utils.FormatNumber(v, 2) },
		"percent":     func(x float64) string { return utils.FormatNumber(x/view.PLOT_WIDTH*100, 2) },
	})
	templates, err := templates.ParseFS(web.Templates, "templates/dashboard/*.gohtml")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse dashboard templates")
	}

	return &Dashboard{
		templates: templates,
		page:      view.Render(provider.Records()),
	}, nil
}

func (d *Dashboard) Templates() *template.Template {
	return d.templates
}

func (d *Dashboard) Page() *view.Page {
	return d.page
}

func (d *Dashboard) Handlers() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/tooltip":               d.TooltipHandler,
		"/charts/{key}.{format}": d.ChartHandler,
	}
}

func (d *Dashboard) Data() map[string]interface{} {
	return map[string]interface{}{
		"page": d.page,
	}
}

// TooltipHandler is called when the client hovers a point, it patches the panel's tooltip with the exact values.
func (d *Dashboard) TooltipHandler(w http.ResponseWriter, r *http.Request) {
	logger := ctxlog.From(r.Context())

	// Read signals sent from the client
	var sig tooltipSig
	if err := ds.ReadSignals(r, &sig); err != nil {
		logger.Warn("failed to read signals", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	tooltip, err := d.page.Tooltip(sig.Tooltip.Panel, sig.Tooltip.Index)
	if err != nil {
		logger.Debug("no tooltip for signals", "error", err)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var buf strings.Builder
	if err := d.templates.ExecuteTemplate(&buf, "tooltip", tooltip); err != nil {
		logger.Error("failed to execute tooltip template", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	sse := ds.NewSSE(w, r)
	// morphs the target element by ID
	if err := sse.PatchElements(buf.String()); err != nil {
		logger.Warn("failed to patch tooltip", "error", err)
	}
}

// ChartHandler serves a panel as a PNG or SVG image.
func (d *Dashboard) ChartHandler(w http.ResponseWriter, r *http.Request) {
	logger := ctxlog.From(r.Context())

	format, err := chartimg.ParseFormat(chi.URLParam(r, "format"))
	if err != nil {
		writeError(w, r, err, http.StatusBadRequest)
		return
	}

	panel, ok := d.page.Panel(chi.URLParam(r, "key"))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	if err := chartimg.Render(&buf, *panel, format); err != nil {
		logger.Error("failed to render chart image", "error", err)
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Warn("failed to write chart image", "error", err)
	}
}
