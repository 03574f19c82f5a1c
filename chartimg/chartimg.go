// Package chartimg renders dashboard panels to PNG or SVG images.
package chartimg

import (
	"cxdash/view"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

var ErrUnknownFormat = goerr.New("unknown image format")

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case PNG:
		return PNG, nil
	case SVG:
		return SVG, nil
	default:
		return "", goerr.Wrap(ErrUnknownFormat, "expected png or svg", goerr.V("format", s))
	}
}

func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) Ext() string {
	return "." + string(f)
}

func (f Format) renderer() chart.RendererProvider {
	if f == SVG {
		return chart.SVG
	}
	return chart.PNG
}

var gridStyle = chart.Style{
	StrokeColor:     drawing.ColorFromHex("cccccc"),
	StrokeWidth:     1,
	StrokeDashArray: []float64{3, 3},
}

// Build maps a panel onto a go-chart chart with the same categories, domain and ticks as the page.
func Build(panel view.Panel) chart.Chart {
	plot := panel.Plot
	categories := plot.XAxis.Categories

	xTicks := make([]chart.Tick, len(categories))
	for i, c := range categories {
		xTicks[i] = chart.Tick{Value: float64(i), Label: c.Label}
	}

	yTicks := make([]chart.Tick, len(plot.YAxis.Ticks))
	for i, t := range plot.YAxis.Ticks {
		yTicks[i] = chart.Tick{Value: t.Value, Label: t.Label}
	}

	series := make([]chart.Series, 0, len(plot.Lines))
	for _, l := range plot.Lines {
		xs := make([]float64, len(l.Points))
		ys := make([]float64, len(l.Points))
		for i, p := range l.Points {
			xs[i] = float64(p.Index)
			ys[i] = p.Value
		}
		colour := drawing.ColorFromHex(strings.TrimPrefix(l.Colour, "#"))
		series = append(series, chart.ContinuousSeries{
			Name:    l.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: colour,
				StrokeWidth: 2,
				DotColor:    colour,
				DotWidth:    3,
			},
		})
	}

	ch := chart.Chart{
		Title:      panel.Title,
		Width:      int(plot.Width),
		Height:     int(plot.Height),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 24, Bottom: 16}},
		XAxis: chart.XAxis{
			Ticks:          xTicks,
			Range:          &chart.ContinuousRange{Min: -0.5, Max: float64(len(categories)) - 0.5},
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: plot.YAxis.Domain.Min, Max: plot.YAxis.Domain.Max},
			Ticks:          yTicks,
			GridMajorStyle: gridStyle,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch
}

// Render writes panel to w as an image in format.
func Render(w io.Writer, panel view.Panel, format Format) error {
	ch := Build(panel)
	if err := ch.Render(format.renderer(), w); err != nil {
		return goerr.Wrap(err, "failed to render chart", goerr.V("panel", panel.Key), goerr.V("format", format))
	}
	return nil
}
