package view_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"cxdash/models"
	"cxdash/store"
	"cxdash/view"

	"github.com/m-mizutani/gt"
)

func mustPanel(t *testing.T, page *view.Page, key string) *view.Panel {
	t.Helper()
	panel, ok := page.Panel(key)
	if !ok {
		t.Fatalf("panel %q not rendered", key)
	}
	return panel
}

func TestRenderHeaderAndPanels(t *testing.T) {
	page := view.Render(store.Records())

	gt.Equal(t, page.Header.Title, "CX Discovery Call Dashboard")
	gt.Equal(t, page.Header.Subtitle, "Customer Experience Metrics Overview")

	gt.Equal(t, len(page.Panels), 2)
	gt.Equal(t, page.Panels[0].Title, "Monthly Call Volume")
	gt.Equal(t, page.Panels[1].Title, "Customer Satisfaction Score")

	for _, panel := range page.Panels {
		plot := panel.Plot
		gt.True(t, plot.Tooltip)
		gt.Equal(t, plot.Grid.DashArray, "3 3")
		gt.Equal(t, len(plot.Lines), 1)
		gt.Equal(t, len(plot.Legend), 1)

		labels := make([]string, len(plot.XAxis.Categories))
		for i, c := range plot.XAxis.Categories {
			labels[i] = c.Label
		}
		gt.Equal(t, labels, []string{"Jan 2024", "Feb 2024", "Mar 2024", "Apr 2024", "May 2024"})
	}

	gt.Equal(t, page.Panels[0].Plot.Legend[0], view.LegendEntry{Name: "Number of Calls", Colour: "#8884d8"})
	gt.Equal(t, page.Panels[1].Plot.Legend[0], view.LegendEntry{Name: "Satisfaction Score", Colour: "#82ca9d"})
}

func TestRenderIsIdempotent(t *testing.T) {
	records := store.Records()
	before := store.Records()

	first := view.Render(records)
	second := view.Render(records)

	gt.True(t, reflect.DeepEqual(first, second))
	gt.True(t, reflect.DeepEqual(records, before))
}

func TestRenderAprilPoints(t *testing.T) {
	page := view.Render(store.Records())

	calls, ok := mustPanel(t, page, store.CALL_VOLUME_CHART).Plot.Line(models.CALL_VOLUME_FIELD)
	gt.True(t, ok)
	apr, ok := calls.Point("Apr 2024")
	gt.True(t, ok)
	gt.Equal(t, apr.Value, 70.0)
	gt.Equal(t, apr.Index, 3)
	gt.Equal(t, apr.X, 557.0)
	gt.Equal(t, apr.Y, 42.5)

	score, ok := mustPanel(t, page, store.SATISFACTION_CHART).Plot.Line(models.SATISFACTION_FIELD)
	gt.True(t, ok)
	apr, ok = score.Point("Apr 2024")
	gt.True(t, ok)
	gt.Equal(t, apr.Value, 4.8)
	gt.Equal(t, apr.Y, 20.4)
}

func TestCallVolumeAxisIsNice(t *testing.T) {
	page := view.Render(store.Records())
	axis := mustPanel(t, page, store.CALL_VOLUME_CHART).Plot.YAxis

	gt.False(t, axis.Clamped)
	gt.Equal(t, axis.Domain, models.Domain{Min: 0, Max: 80})

	labels := make([]string, len(axis.Ticks))
	for i, tick := range axis.Ticks {
		labels[i] = tick.Label
	}
	gt.Equal(t, labels, []string{"0", "20", "40", "60", "80"})
	gt.Equal(t, axis.Ticks[0].Y, 270.0)
	gt.Equal(t, axis.Ticks[4].Y, 10.0)
}

func TestSatisfactionAxisIsClamped(t *testing.T) {
	low := []models.MonthlyRecord{
		models.MustMonthlyRecord("Jan 2024", 10, 3.1, 5),
		models.MustMonthlyRecord("Feb 2024", 12, 3.4, 5),
		models.MustMonthlyRecord("Mar 2024", 14, 3.9, 5),
	}

	for _, records := range [][]models.MonthlyRecord{store.Records(), low} {
		axis := mustPanel(t, view.Render(records), store.SATISFACTION_CHART).Plot.YAxis

		gt.True(t, axis.Clamped)
		gt.Equal(t, axis.Domain, models.Domain{Min: 0, Max: 5})
		gt.Equal(t, axis.Ticks[0].Value, 0.0)
		gt.Equal(t, axis.Ticks[len(axis.Ticks)-1].Value, 5.0)
	}

	axis := mustPanel(t, view.Render(low), store.SATISFACTION_CHART).Plot.YAxis
	labels := make([]string, len(axis.Ticks))
	for i, tick := range axis.Ticks {
		labels[i] = tick.Label
	}
	gt.Equal(t, labels, []string{"0", "1.25", "2.5", "3.75", "5"})
}

func TestRenderEmpty(t *testing.T) {
	page := view.Render(nil)
	gt.Equal(t, len(page.Panels), 2)

	plot := mustPanel(t, page, store.CALL_VOLUME_CHART).Plot
	gt.Equal(t, len(plot.XAxis.Categories), 0)
	gt.Equal(t, len(plot.Lines[0].Points), 0)
	gt.Equal(t, plot.Lines[0].Path, "")
	gt.Equal(t, plot.YAxis.Domain, models.Domain{Min: 0, Max: 1})
}

func TestMonotonePath(t *testing.T) {
	page := view.Render(store.Records())
	line := page.Panels[0].Plot.Lines[0]

	gt.True(t, strings.HasPrefix(line.Path, "M"))
	gt.Equal(t, strings.Count(line.Path, "C"), len(line.Points)-1)
	last := line.Points[len(line.Points)-1]
	gt.S(t, line.Path).Contains(",557,42.5C")
	gt.True(t, strings.HasSuffix(line.Path, ",699,58.75"))
	gt.Equal(t, last.Category, "May 2024")
}

func TestLinearPath(t *testing.T) {
	chart := models.NewChart("linear", "Linear", []*models.Series{
		models.NewSeries(models.RESPONSE_TIME_FIELD, "Response Time", "#000000", models.LINEAR_CURVE),
	}, nil, 1)

	page := view.RenderCharts("t", "s", []*models.Chart{chart}, store.Records())
	line := page.Panels[0].Plot.Lines[0]

	gt.Equal(t, strings.Count(line.Path, "L"), 4)
	gt.Equal(t, strings.Count(line.Path, "C"), 0)
}

func TestTooltip(t *testing.T) {
	page := view.Render(store.Records())

	tip, err := page.Tooltip(store.CALL_VOLUME_CHART, 3)
	gt.NoError(t, err).Required()
	gt.Equal(t, tip.Category, "Apr 2024")
	gt.Equal(t, tip.Entries, []view.TooltipEntry{{Name: "Number of Calls", Colour: "#8884d8", Value: "70"}})

	tip, err = page.Tooltip(store.SATISFACTION_CHART, 3)
	gt.NoError(t, err).Required()
	gt.Equal(t, tip.Entries[0].Value, "4.8")

	_, err = page.Tooltip("unknown", 0)
	gt.True(t, errors.Is(err, view.ErrPanelNotFound))

	_, err = page.Tooltip(store.CALL_VOLUME_CHART, 5)
	gt.True(t, errors.Is(err, view.ErrPointNotFound))

	_, err = page.Tooltip(store.CALL_VOLUME_CHART, -1)
	gt.True(t, errors.Is(err, view.ErrPointNotFound))
}
