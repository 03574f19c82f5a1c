package view

import (
	"cxdash/models"
	"cxdash/store"
)

// Render builds the dashboard page for records using the dashboard's chart definitions.
func Render(records []models.MonthlyRecord) *Page {
	return RenderCharts(store.DASHBOARD_TITLE, store.DASHBOARD_SUBTITLE, store.OrderedCharts(), records)
}

// RenderCharts lays out one panel per chart, in the order given. records is only read.
func RenderCharts(title, subtitle string, charts []*models.Chart, records []models.MonthlyRecord) *Page {
	page := &Page{
		Header: Header{Title: title, Subtitle: subtitle},
		Panels: make([]Panel, 0, len(charts)),
	}
	for _, c := range charts {
		page.Panels = append(page.Panels, Panel{
			Key:   c.Key(),
			Title: c.Title(),
			Plot:  renderPlot(c, records),
		})
	}
	return page
}

func renderPlot(c *models.Chart, records []models.MonthlyRecord) Plot {
	area := Area{
		Left:   MARGIN_LEFT,
		Top:    MARGIN_TOP,
		Right:  PLOT_WIDTH - MARGIN_RIGHT,
		Bottom: PLOT_HEIGHT - MARGIN_BOTTOM,
	}

	xAxis := categoryAxis(records, area)
	yAxis := valueAxis(c, records, area)

	grid := Grid{
		DashArray:  GRID_DASH_ARRAY,
		Horizontal: make([]float64, len(yAxis.Ticks)),
		Vertical:   make([]float64, len(xAxis.Categories)),
	}
	for i, t := range yAxis.Ticks {
		grid.Horizontal[i] = t.Y
	}
	for i, cat := range xAxis.Categories {
		grid.Vertical[i] = cat.X
	}

	legend := make([]LegendEntry, 0, len(c.Series()))
	lines := make([]Line, 0, len(c.Series()))
	for _, s := range c.Series() {
		legend = append(legend, LegendEntry{Name: s.Name(), Colour: s.Colour()})

		points := make([]Point, 0, len(records))
		for i, r := range records {
			v, ok := r.Field(s.Field())
			if !ok {
				continue
			}
			points = append(points, Point{
				Index:    i,
				Category: r.Month(),
				Value:    v,
				X:        xAxis.Categories[i].X,
				Y:        scaleY(v, yAxis.Domain, area),
			})
		}

		lines = append(lines, Line{
			DataKey: s.Field(),
			Name:    s.Name(),
			Colour:  s.Colour(),
			Curve:   s.Curve(),
			Path:    linePath(s.Curve(), points),
			Points:  points,
		})
	}

	return Plot{
		Width:   PLOT_WIDTH,
		Height:  PLOT_HEIGHT,
		Area:    area,
		XAxis:   xAxis,
		YAxis:   yAxis,
		Grid:    grid,
		Tooltip: true,
		Legend:  legend,
		Lines:   lines,
	}
}
