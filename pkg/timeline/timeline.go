// Package timeline maps projection year indexes to ages and calendar
// years for a single plan.
package timeline

// Timeline describes the span of a projection. Year index 0 is the year
// the holder is CurrentAge; the projection runs through LifeExpectancy
// inclusive.
type Timeline struct {
	CurrentAge     int
	RetirementAge  int
	LifeExpectancy int
	BaseYear       int
}

// TotalYears is the number of simulated years.
func (t Timeline) TotalYears() int {
	return t.LifeExpectancy - t.CurrentAge + 1
}

// YearsToRetirement is the number of accumulation years remaining.
func (t Timeline) YearsToRetirement() int {
	n := t.RetirementAge - t.CurrentAge
	if n < 0 {
		return 0
	}
	return n
}

// RetirementDuration is the number of retirement years simulated.
func (t Timeline) RetirementDuration() int {
	return t.LifeExpectancy - t.RetirementAge
}

// AgeAt returns the holder's age during a year index.
func (t Timeline) AgeAt(yearIndex int) int {
	return t.CurrentAge + yearIndex
}

// CalendarYear returns the calendar year for a year index.
func (t Timeline) CalendarYear(yearIndex int) int {
	return t.BaseYear + yearIndex
}

// Retired reports whether the holder is retired during a year index.
func (t Timeline) Retired(yearIndex int) bool {
	return t.AgeAt(yearIndex) >= t.RetirementAge
}
