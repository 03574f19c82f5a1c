package models

import (
	"github.com/m-mizutani/goerr/v2"
)

// FieldKey names a numeric field of a MonthlyRecord, the same way a chart binds a series to a data key.
type FieldKey string

const (
	CALL_VOLUME_FIELD   FieldKey = "callVolume"
	SATISFACTION_FIELD  FieldKey = "satisfaction"
	RESPONSE_TIME_FIELD FieldKey = "responseTime"
)

const (
	MIN_SATISFACTION = 0
	MAX_SATISFACTION = 5
)

type MonthlyRecord struct {
	// month is the display label and doubles as the category on the x-axis.
	month string
	// callVolume is the number of calls received in the month.
	callVolume float64
	// satisfaction is the average satisfaction rating, bounded to [MIN_SATISFACTION, MAX_SATISFACTION].
	satisfaction float64
	// responseTime is the average response time in minutes.
	responseTime float64
}

// NewMonthlyRecord validates the values and returns the record. The comparisons are written so NaN fails them.
func NewMonthlyRecord(
	month string,
	callVolume,
	satisfaction,
	responseTime float64,
) (MonthlyRecord, error) {
	if month == "" {
		return MonthlyRecord{}, goerr.Wrap(ErrInvalidRecord, "month label is empty")
	}
	if !(callVolume >= 0) {
		return MonthlyRecord{}, goerr.Wrap(ErrInvalidRecord, "call volume must not be negative",
			goerr.V("month", month), goerr.V("callVolume", callVolume))
	}
	if !(satisfaction >= MIN_SATISFACTION && satisfaction <= MAX_SATISFACTION) {
		return MonthlyRecord{}, goerr.Wrap(ErrInvalidRecord, "satisfaction out of range",
			goerr.V("month", month), goerr.V("satisfaction", satisfaction))
	}
	if !(responseTime >= 0) {
		return MonthlyRecord{}, goerr.Wrap(ErrInvalidRecord, "response time must not be negative",
			goerr.V("month", month), goerr.V("responseTime", responseTime))
	}

	return MonthlyRecord{
		month,
		callVolume,
		satisfaction,
		responseTime,
	}, nil
}

// MustMonthlyRecord is NewMonthlyRecord for literal data, a bad literal is a programming error.
func MustMonthlyRecord(month string, callVolume, satisfaction, responseTime float64) MonthlyRecord {
	r, err := NewMonthlyRecord(month, callVolume, satisfaction, responseTime)
	if err != nil {
		panic(err)
	}
	return r
}

func (r MonthlyRecord) Month() string {
	return r.month
}

func (r MonthlyRecord) CallVolume() float64 {
	return r.callVolume
}

func (r MonthlyRecord) Satisfaction() float64 {
	return r.satisfaction
}

func (r MonthlyRecord) ResponseTime() float64 {
	return r.responseTime
}

// Field returns the value bound to key, false if the key is unknown.
func (r MonthlyRecord) Field(key FieldKey) (float64, bool) {
	switch key {
	case CALL_VOLUME_FIELD:
		return r.callVolume, true
	case SATISFACTION_FIELD:
		return r.satisfaction, true
	case RESPONSE_TIME_FIELD:
		return r.responseTime, true
	default:
		return 0, false
	}
}

// ValidateSequence checks that records is non-empty and that every month label is unique.
func ValidateSequence(records []MonthlyRecord) error {
	if len(records) == 0 {
		return ErrEmptySequence
	}

	seen := make(map[string]int, len(records))
	for i, r := range records {
		if first, ok := seen[r.month]; ok {
			return goerr.Wrap(ErrDuplicateMonth, "month appears twice",
				goerr.V("month", r.month), goerr.V("first", first), goerr.V("second", i))
		}
		seen[r.month] = i
	}

	return nil
}
