// Package view turns a record sequence into the tree of layout and chart
// primitives that make up the dashboard page. It never touches the network or
// the filesystem: the same records always produce the same tree.
package view

import "cxdash/models"

const (
	PLOT_WIDTH  = 800
	PLOT_HEIGHT = 300

	MARGIN_TOP    = 10
	MARGIN_RIGHT  = 30
	MARGIN_BOTTOM = 30
	MARGIN_LEFT   = 60

	TICK_COUNT      = 5
	GRID_DASH_ARRAY = "3 3"
)

type Page struct {
	Header Header
	Panels []Panel
}

type Header struct {
	Title    string
	Subtitle string
}

// Panel is a titled container holding one plot.
type Panel struct {
	Key   string
	Title string
	Plot  Plot
}

type Plot struct {
	// Width and Height are the viewBox size, the plot scales to its container.
	Width   float64
	Height  float64
	Area    Area
	XAxis   XAxis
	YAxis   YAxis
	Grid    Grid
	Tooltip bool
	Legend  []LegendEntry
	Lines   []Line
}

// Area is the region inside the axes.
type Area struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

type XAxis struct {
	Categories []Category
}

type Category struct {
	Label string
	X     float64
}

type YAxis struct {
	Domain models.Domain
	// Clamped is set when Domain comes from the chart definition rather than the data.
	Clamped bool
	Ticks   []Tick
}

type Tick struct {
	Value float64
	Label string
	Y     float64
}

type Grid struct {
	DashArray  string
	Horizontal []float64
	Vertical   []float64
}

type LegendEntry struct {
	Name   string
	Colour string
}

type Line struct {
	DataKey models.FieldKey
	Name    string
	Colour  string
	Curve   string
	// Path is the SVG path data through Points.
	Path   string
	Points []Point
}

type Point struct {
	Index    int
	Category string
	Value    float64
	X        float64
	Y        float64
}

// Panel returns the panel with the given key.
func (p *Page) Panel(key string) (*Panel, bool) {
	for i := range p.Panels {
		if p.Panels[i].Key == key {
			return &p.Panels[i], true
		}
	}
	return nil, false
}

// Line returns the line bound to key.
func (p *Plot) Line(key models.FieldKey) (*Line, bool) {
	for i := range p.Lines {
		if p.Lines[i].DataKey == key {
			return &p.Lines[i], true
		}
	}
	return nil, false
}

// Point returns the point plotted for category label, false if the label isn't on the x-axis.
func (l *Line) Point(category string) (Point, bool) {
	for _, pt := range l.Points {
		if pt.Category == category {
			return pt, true
		}
	}
	return Point{}, false
}
