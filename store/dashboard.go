package store

import (
	"cxdash/models"
	"maps"
	"slices"
	"sort"
	"sync"
)

const (
	DASHBOARD_TITLE    = "CX Discovery Call Dashboard"
	DASHBOARD_SUBTITLE = "Customer Experience Metrics Overview"
)

const (
	CALL_VOLUME_CHART  = "call-volume"
	SATISFACTION_CHART = "satisfaction"
)

const (
	PURPLE = "#8884d8"
	GREEN  = "#82ca9d"
)

var DashboardSeries = map[models.FieldKey]*models.Series{
	models.CALL_VOLUME_FIELD: models.NewSeries(
		models.CALL_VOLUME_FIELD,
		"Number of Calls",
		PURPLE,
		models.MONOTONE_CURVE,
	),
	models.SATISFACTION_FIELD: models.NewSeries(
		models.SATISFACTION_FIELD,
		"Satisfaction Score",
		GREEN,
		models.MONOTONE_CURVE,
	),
}

var DashboardCharts = map[string]*models.Chart{
	CALL_VOLUME_CHART: models.NewChart(
		CALL_VOLUME_CHART,
		"Monthly Call Volume",
		[]*models.Series{DashboardSeries[models.CALL_VOLUME_FIELD]},
		nil,
		1,
	),
	SATISFACTION_CHART: models.NewChart(
		SATISFACTION_CHART,
		"Customer Satisfaction Score",
		[]*models.Series{DashboardSeries[models.SATISFACTION_FIELD]},
		// Scores are always shown against the full rating scale.
		&models.Domain{Min: models.MIN_SATISFACTION, Max: models.MAX_SATISFACTION},
		2,
	),
}

var orderedCharts = sync.OnceValue(func() []*models.Chart {
	charts := slices.Collect(maps.Values(DashboardCharts))
	sort.Slice(charts, func(i, j int) bool {
		return charts[i].LayoutPriority() < charts[j].LayoutPriority()
	})
	return charts
})

// OrderedCharts returns the dashboard charts sorted by layout priority. The slice is shared, don't modify it.
func OrderedCharts() []*models.Chart {
	return orderedCharts()
}
