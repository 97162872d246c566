package contributions

import (
	"testing"
	"time"

	"github.com/bshore/github-contribution-merge/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seriesForYear builds a full-year series with Sunday-start weeks and
// the given per-date counts (absent dates default to 0).
func seriesForYear(login string, year int, counts map[string]int) domain.AccountSeries {
	series := domain.AccountSeries{Login: login, Year: year}
	week := domain.Week{}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		weekday := int(d.Weekday())
		if weekday == 0 && len(week.Days) > 0 {
			series.Weeks = append(series.Weeks, week)
			week = domain.Week{}
		}
		week.Days = append(week.Days, domain.ContributionDay{
			Date:    d,
			Weekday: weekday,
			Count:   counts[domain.DateKey(d)],
		})
	}
	series.Weeks = append(series.Weeks, week)
	return series
}

func TestMerge_TwoAccountsOneDay(t *testing.T) {
	a := seriesForYear("alice", 2024, map[string]int{"2024-06-01": 3})
	b := seriesForYear("bob", 2024, map[string]int{"2024-06-01": 7})

	merged, err := Merge([]domain.AccountSeries{a, b}, []string{"alice", "bob"})
	require.NoError(t, err)

	assert.Equal(t, 10, merged.Total)

	var day *domain.MergedDay
	for _, week := range merged.Weeks {
		for i := range week.Days {
			if domain.DateKey(week.Days[i].Date) == "2024-06-01" {
				day = &week.Days[i]
			}
		}
	}
	require.NotNil(t, day)
	assert.Equal(t, 10, day.Count)
	assert.Equal(t, domain.LevelThirdQuartile, day.Level)

	breakdown := merged.Breakdown["2024-06-01"]
	assert.Equal(t, 3, breakdown["alice"])
	assert.Equal(t, 7, breakdown["bob"])
}

func TestMerge_SumInvariant(t *testing.T) {
	a := seriesForYear("alice", 2023, map[string]int{
		"2023-01-01": 1, "2023-03-15": 12, "2023-12-31": 4,
	})
	b := seriesForYear("bob", 2023, map[string]int{
		"2023-03-15": 2, "2023-07-04": 30,
	})

	merged, err := Merge([]domain.AccountSeries{a, b}, []string{"alice", "bob"})
	require.NoError(t, err)

	sum := 0
	for _, week := range merged.Weeks {
		for _, day := range week.Days {
			sum += day.Count
			perAccount := 0
			for _, count := range merged.Breakdown[domain.DateKey(day.Date)] {
				perAccount += count
			}
			assert.Equal(t, day.Count, perAccount, "date %s", domain.DateKey(day.Date))
		}
	}
	assert.Equal(t, merged.Total, sum)
	assert.Equal(t, 49, merged.Total)
}

func TestMerge_FirstSeriesIsTemplate(t *testing.T) {
	template := seriesForYear("alice", 2024, nil)

	// A skewed partition: the same days crammed into one giant week.
	// Merge must follow the template's structure, not this one.
	skewed := domain.AccountSeries{Login: "bob", Year: 2024}
	week := domain.Week{}
	for _, w := range seriesForYear("bob", 2024, map[string]int{"2024-02-02": 5}).Weeks {
		week.Days = append(week.Days, w.Days...)
	}
	skewed.Weeks = []domain.Week{week}

	merged, err := Merge([]domain.AccountSeries{template, skewed}, []string{"alice", "bob"})
	require.NoError(t, err)

	require.Len(t, merged.Weeks, len(template.Weeks))
	for i, tw := range template.Weeks {
		require.Len(t, merged.Weeks[i].Days, len(tw.Days), "week %d", i)
		for j, td := range tw.Days {
			assert.Equal(t, td.Date, merged.Weeks[i].Days[j].Date)
			assert.Equal(t, td.Weekday, merged.Weeks[i].Days[j].Weekday)
		}
	}
	assert.Equal(t, 5, merged.Total)
	assert.Equal(t, 5, merged.Breakdown["2024-02-02"]["bob"])
}

func TestMerge_SingleAccount(t *testing.T) {
	a := seriesForYear("alice", 2024, map[string]int{"2024-05-20": 2})

	merged, err := Merge([]domain.AccountSeries{a}, []string{"alice"})
	require.NoError(t, err)
	assert.Equal(t, 2, merged.Total)
	assert.Equal(t, 2024, merged.Year)
}

func TestMerge_Validation(t *testing.T) {
	_, err := Merge(nil, nil)
	assert.Error(t, err)

	a := seriesForYear("alice", 2024, nil)
	_, err = Merge([]domain.AccountSeries{a}, []string{"alice", "bob"})
	assert.Error(t, err)
}
