package view

import (
	"cxdash/models"
	"cxdash/utils"
	"math"
)

// niceTicks widens [min, max] to multiples of a 1, 2, 2.5 or 5 step so that at most count ticks cover it.
func niceTicks(min, max float64, count int) (models.Domain, []float64) {
	if !(max > min) {
		max = min + 1
	}
	span := max - min
	intervals := float64(count - 1)

	mag := math.Pow(10, math.Floor(math.Log10(span/intervals)))
	step := 10 * mag
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		if math.Ceil(span/(c*mag)) <= intervals {
			step = c * mag
			break
		}
	}

	start := math.Floor(min/step) * step
	end := math.Ceil(max/step) * step

	var values []float64
	for i := 0; ; i++ {
		v := utils.RoundToXDp(start+float64(i)*step, 6)
		if v > end+step/2 {
			break
		}
		values = append(values, v)
	}

	return models.Domain{Min: utils.RoundToXDp(start, 6), Max: utils.RoundToXDp(end, 6)}, values
}

// evenTicks splits a fixed domain into count evenly spaced ticks.
func evenTicks(d models.Domain, count int) []float64 {
	values := make([]float64, count)
	step := (d.Max - d.Min) / float64(count-1)
	for i := range values {
		values[i] = utils.RoundToXDp(d.Min+float64(i)*step, 6)
	}
	return values
}

func categoryAxis(records []models.MonthlyRecord, area Area) XAxis {
	categories := make([]Category, len(records))
	if len(records) == 0 {
		return XAxis{Categories: categories}
	}

	band := (area.Right - area.Left) / float64(len(records))
	for i, r := range records {
		categories[i] = Category{
			Label: r.Month(),
			X:     utils.RoundToXDp(area.Left+band*(float64(i)+0.5), 2),
		}
	}
	return XAxis{Categories: categories}
}

func valueAxis(c *models.Chart, records []models.MonthlyRecord, area Area) YAxis {
	axis := YAxis{}

	var values []float64
	if d, ok := c.Domain(); ok {
		axis.Domain = d
		axis.Clamped = true
		values = evenTicks(d, TICK_COUNT)
	} else {
		lo, hi := 0.0, 0.0
		for _, s := range c.Series() {
			for _, r := range records {
				v, ok := r.Field(s.Field())
				if !ok {
					continue
				}
				lo = math.Min(lo, v)
				hi = math.Max(hi, v)
			}
		}
		axis.Domain, values = niceTicks(lo, hi, TICK_COUNT)
	}

	axis.Ticks = make([]Tick, len(values))
	for i, v := range values {
		axis.Ticks[i] = Tick{
			Value: v,
			Label: utils.FormatNumber(v, 2),
			Y:     scaleY(v, axis.Domain, area),
		}
	}
	return axis
}

func scaleY(v float64, d models.Domain, area Area) float64 {
	ratio := (v - d.Min) / (d.Max - d.Min)
	return utils.RoundToXDp(area.Bottom-ratio*(area.Bottom-area.Top), 2)
}
