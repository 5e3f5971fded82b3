package proforma

import (
	"math"
	"time"
)

// monthStart normalizes a date to the first day of its month in UTC.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// sameMonth reports whether two dates fall in the same calendar year+month.
func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// completionDate returns the normalized construction-completion date: the
// explicit override when given, otherwise start plus the configured fraction
// of the horizon rounded up to whole months.
func (e *Engine) completionDate(start time.Time, projectionMonths int, explicit *time.Time) time.Time {
	if explicit != nil && !explicit.IsZero() {
		return monthStart(*explicit)
	}
	months := int(math.Ceil(e.cfg.ConstructionFraction * float64(projectionMonths)))
	return monthStart(start).AddDate(0, months, 0)
}

// constructionMonthCount is the number of whole calendar months between the
// normalized start and completion dates, never below one. It equals the
// number of months the main loop classifies as construction, so the
// distributed budget is fully paid out inside the construction phase.
func constructionMonthCount(start, completion time.Time) int {
	s := monthStart(start)
	months := (completion.Year()-s.Year())*12 + int(completion.Month()-s.Month())
	if months < 1 {
		return 1
	}
	return months
}

// classify tags a month as construction or post-construction. Months strictly
// before the completion date are construction.
func classify(month, completion time.Time) Phase {
	if month.Before(completion) {
		return PhaseConstruction
	}
	return PhasePostConstruction
}
