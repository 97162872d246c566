package contributions

import (
	"fmt"

	"github.com/bshore/github-contribution-merge/pkg/models/domain"
)

// Merge combines the per-account series for one year into a single
// aggregate series. logins[i] labels seriesList[i].
//
// The first series' week partition is the authoritative template: other
// accounts' data is looked up by date rather than by position, so the
// inputs do not need identical week boundaries. A date missing from the
// accumulation defaults to 0 instead of failing.
func Merge(seriesList []domain.AccountSeries, logins []string) (domain.MergedSeries, error) {
	if len(seriesList) == 0 {
		return domain.MergedSeries{}, fmt.Errorf("at least one account series must be provided")
	}
	if len(seriesList) != len(logins) {
		return domain.MergedSeries{}, fmt.Errorf("series/login count mismatch: %d != %d", len(seriesList), len(logins))
	}

	sums := make(map[string]int)
	breakdown := make(map[string]map[string]int)
	for i, series := range seriesList {
		login := logins[i]
		for _, week := range series.Weeks {
			for _, day := range week.Days {
				key := domain.DateKey(day.Date)
				sums[key] += day.Count
				if breakdown[key] == nil {
					breakdown[key] = make(map[string]int)
				}
				breakdown[key][login] = day.Count
			}
		}
	}

	template := seriesList[0]
	merged := domain.MergedSeries{
		Year:      template.Year,
		Weeks:     make([]domain.MergedWeek, 0, len(template.Weeks)),
		Breakdown: breakdown,
	}
	for _, week := range template.Weeks {
		days := make([]domain.MergedDay, 0, len(week.Days))
		for _, day := range week.Days {
			count := sums[domain.DateKey(day.Date)]
			days = append(days, domain.MergedDay{
				Date:    day.Date,
				Weekday: day.Weekday,
				Count:   count,
				Level:   domain.LevelFor(count),
			})
			merged.Total += count
		}
		merged.Weeks = append(merged.Weeks, domain.MergedWeek{Days: days})
	}

	return merged, nil
}
