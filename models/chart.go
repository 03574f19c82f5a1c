package models

// Domain is a closed interval on the y-axis.
type Domain struct {
	Min float64
	Max float64
}

type Chart struct {
	// key is the identifier, used in element ids and urls.
	key string
	// title is shown above the plot.
	title string
	// series to display in this chart
	series []*Series
	// domain clamps the y-axis when set, nil means derive it from the data.
	domain *Domain
	// layoutPriority determines what order in the ui this chart should be shown
	layoutPriority uint8
}

func NewChart(
	key string,
	title string,
	series []*Series,
	domain *Domain,
	layoutPriority uint8,
) *Chart {
	return &Chart{
		key,
		title,
		series,
		domain,
		layoutPriority,
	}
}

func (c *Chart) Key() string {
	return c.key
}

func (c *Chart) Title() string {
	return c.title
}

func (c *Chart) Series() []*Series {
	return c.series
}

// Domain returns the fixed y domain and whether one is set.
func (c *Chart) Domain() (Domain, bool) {
	if c.domain == nil {
		return Domain{}, false
	}
	return *c.domain, true
}

func (c *Chart) LayoutPriority() uint8 {
	return c.layoutPriority
}
