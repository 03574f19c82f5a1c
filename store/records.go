package store

import (
	"cxdash/models"
	"slices"
)

// Provider supplies the ordered record sequence the dashboard is rendered from.
type Provider interface {
	Records() []models.MonthlyRecord
}

var monthlyRecords = []models.MonthlyRecord{
	models.MustMonthlyRecord("Jan 2024", 45, 4.5, 24),
	models.MustMonthlyRecord("Feb 2024", 52, 4.7, 20),
	models.MustMonthlyRecord("Mar 2024", 48, 4.6, 22),
	models.MustMonthlyRecord("Apr 2024", 70, 4.8, 18),
	models.MustMonthlyRecord("May 2024", 65, 4.9, 16),
}

func init() {
	if err := models.ValidateSequence(monthlyRecords); err != nil {
		panic(err)
	}
}

// Records returns a copy of the built-in sequence in chronological order.
func Records() []models.MonthlyRecord {
	return slices.Clone(monthlyRecords)
}

// Static serves the built-in sequence.
type Static struct{}

func (Static) Records() []models.MonthlyRecord {
	return Records()
}
