package view

import (
	"cxdash/utils"

	"github.com/m-mizutani/goerr/v2"
)

var (
	ErrPanelNotFound = goerr.New("panel not found")
	ErrPointNotFound = goerr.New("point not found")
)

// Tooltip holds the exact values shown when hovering a category of a plot.
type Tooltip struct {
	PanelKey string
	Category string
	// X is where the hovered category sits on the plot, in viewBox units.
	X       float64
	Entries []TooltipEntry
}

type TooltipEntry struct {
	Name   string
	Colour string
	Value  string
}

// Tooltip collects every line's value at category index of the panel with key panelKey.
func (p *Page) Tooltip(panelKey string, index int) (*Tooltip, error) {
	panel, ok := p.Panel(panelKey)
	if !ok {
		return nil, goerr.Wrap(ErrPanelNotFound, "no such panel", goerr.V("panel", panelKey))
	}

	categories := panel.Plot.XAxis.Categories
	if index < 0 || index >= len(categories) {
		return nil, goerr.Wrap(ErrPointNotFound, "index out of range",
			goerr.V("panel", panelKey), goerr.V("index", index), goerr.V("categories", len(categories)))
	}

	tooltip := &Tooltip{
		PanelKey: panelKey,
		Category: categories[index].Label,
		X:        categories[index].X,
	}
	for _, l := range panel.Plot.Lines {
		pt, ok := l.Point(tooltip.Category)
		if !ok {
			continue
		}
		tooltip.Entries = append(tooltip.Entries, TooltipEntry{
			Name:   l.Name,
			Colour: l.Colour,
			Value:  utils.FormatNumber(pt.Value, 2),
		})
	}

	return tooltip, nil
}
