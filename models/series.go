package models

type Series struct {
	// field is the record field plotted by this series.
	field FieldKey
	// name is the label shown in the legend and tooltip.
	name string
	// colour is the stroke colour, 3 byte hex with the # prefix.
	colour string
	// curve is the interpolation between points, only "monotone" and "linear" are understood.
	curve string
}

const (
	MONOTONE_CURVE = "monotone"
	LINEAR_CURVE   = "linear"
)

func NewSeries(
	field FieldKey,
	name,
	colour,
	curve string,
) *Series {
	return &Series{
		field,
		name,
		colour,
		curve,
	}
}

func (s *Series) Field() FieldKey {
	return s.field
}

func (s *Series) Name() string {
	return s.name
}

func (s *Series) Colour() string {
	return s.colour
}

func (s *Series) Curve() string {
	return s.curve
}
