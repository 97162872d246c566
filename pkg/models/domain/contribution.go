package domain

import "time"

// Level buckets a daily contribution count into one of the five
// intensity steps used by the chart color ramp.
type Level int

const (
	LevelNone Level = iota
	LevelFirstQuartile
	LevelSecondQuartile
	LevelThirdQuartile
	LevelFourthQuartile
)

// LevelFor maps a summed daily count to its intensity bucket.
func LevelFor(count int) Level {
	switch {
	case count <= 0:
		return LevelNone
	case count < 5:
		return LevelFirstQuartile
	case count < 10:
		return LevelSecondQuartile
	case count < 20:
		return LevelThirdQuartile
	default:
		return LevelFourthQuartile
	}
}

// ContributionDay is a single day of one account's calendar as returned
// by the upstream API. Weekday follows the upstream convention,
// Sunday = 0 through Saturday = 6.
type ContributionDay struct {
	Date    time.Time
	Weekday int
	Count   int
}

// Week is one Sunday-start week bucket. Boundary weeks may hold fewer
// than seven days.
type Week struct {
	Days []ContributionDay
}

// AccountSeries is one account's full-year calendar: every day from
// Jan 1 to Dec 31 exactly once, partitioned into chronological weeks.
type AccountSeries struct {
	Login string
	Year  int
	Weeks []Week
}

// MergedDay is one day of the aggregate calendar.
type MergedDay struct {
	Date    time.Time
	Weekday int
	Count   int
	Level   Level
}

type MergedWeek struct {
	Days []MergedDay
}

// MergedSeries is the multi-account aggregate for one year. Its week
// partition mirrors the first input series; Breakdown records each
// account's individual count per date, keyed by DateKey.
type MergedSeries struct {
	Year      int
	Total     int
	Weeks     []MergedWeek
	Breakdown map[string]map[string]int
}

// YearBlock pairs a year with its merged series; blocks are rendered
// top to bottom in the order supplied.
type YearBlock struct {
	Year   int
	Series MergedSeries
}

// DateKey is the canonical map key for a calendar day.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
