package chart

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bshore/github-contribution-merge/pkg/errs"
	"github.com/bshore/github-contribution-merge/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) FetchCalendar(ctx context.Context, login string, year int) (domain.AccountSeries, error) {
	args := m.Called(ctx, login, year)
	return args.Get(0).(domain.AccountSeries), args.Error(1)
}

func (m *mockClient) IsAuthorized(ctx context.Context, secondary, primary string) (bool, error) {
	args := m.Called(ctx, secondary, primary)
	return args.Bool(0), args.Error(1)
}

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
}

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

func TestYearSpan(t *testing.T) {
	assert.Equal(t, []int{2024}, yearSpan(2024, 1))
	assert.Equal(t, []int{2024, 2023, 2022}, yearSpan(2024, 3))
	assert.Equal(t, []int{2010, 2009, 2008}, yearSpan(2010, 5))

	span := yearSpan(2024, 100)
	require.Len(t, span, 17)
	assert.Equal(t, 2024, span[0])
	assert.Equal(t, 2008, span[16])
}

func TestRenderChart_SinglePrimary(t *testing.T) {
	client := new(mockClient)
	client.On("FetchCalendar", mock.Anything, "alice", 2024).
		Return(seriesForYear("alice", 2024, map[string]int{"2024-06-01": 3}), nil)

	c := &controller{client: client, now: fixedClock(2024)}
	doc, err := c.RenderChart(context.Background(), domain.ChartRequest{
		Primary: "alice",
		Years:   1,
		Theme:   "dark",
	})
	require.NoError(t, err)

	assert.Contains(t, doc, "Users - alice</text>")
	assert.Equal(t, 1, strings.Count(doc, "Users - "))
	client.AssertExpectations(t)
}

func TestRenderChart_DeniedAccountIsDropped(t *testing.T) {
	client := new(mockClient)
	client.On("IsAuthorized", mock.Anything, "bob", "alice").Return(true, nil)
	client.On("IsAuthorized", mock.Anything, "carol", "alice").Return(false, nil)
	client.On("IsAuthorized", mock.Anything, "dave", "alice").Return(false, fmt.Errorf("boom"))

	for _, login := range []string{"alice", "bob"} {
		client.On("FetchCalendar", mock.Anything, login, 2024).
			Return(seriesForYear(login, 2024, nil), nil)
	}

	c := &controller{client: client, now: fixedClock(2024)}
	doc, err := c.RenderChart(context.Background(), domain.ChartRequest{
		Primary:     "alice",
		Secondaries: []string{"bob", "carol", "dave"},
		Years:       1,
		Theme:       "dark",
	})
	require.NoError(t, err)

	assert.Contains(t, doc, "Users - alice, bob</text>")
	client.AssertNotCalled(t, "FetchCalendar", mock.Anything, "carol", mock.Anything)
	client.AssertNotCalled(t, "FetchCalendar", mock.Anything, "dave", mock.Anything)
}

func TestRenderChart_FetchFailureAbortsRequest(t *testing.T) {
	client := new(mockClient)
	client.On("IsAuthorized", mock.Anything, "bob", "alice").Return(true, nil)
	client.On("FetchCalendar", mock.Anything, "alice", mock.Anything).
		Return(seriesForYear("alice", 2024, nil), nil).Maybe()
	client.On("FetchCalendar", mock.Anything, "bob", mock.Anything).
		Return(domain.AccountSeries{}, errs.NewUpstreamError(nil, "user not found"))

	c := &controller{client: client, now: fixedClock(2024)}
	_, err := c.RenderChart(context.Background(), domain.ChartRequest{
		Primary:     "alice",
		Secondaries: []string{"bob"},
		Years:       2,
		Theme:       "dark",
	})
	require.Error(t, err)
	assert.IsType(t, &errs.UpstreamError{}, err)
}

func TestRenderChart_MultipleYears(t *testing.T) {
	client := new(mockClient)
	for _, year := range []int{2024, 2023, 2022} {
		client.On("FetchCalendar", mock.Anything, "alice", year).
			Return(seriesForYear("alice", year, nil), nil)
	}

	c := &controller{client: client, now: fixedClock(2024)}
	doc, err := c.RenderChart(context.Background(), domain.ChartRequest{
		Primary: "alice",
		Years:   3,
		Theme:   "light",
	})
	require.NoError(t, err)

	for _, year := range []int{2024, 2023, 2022} {
		assert.Contains(t, doc, fmt.Sprintf(`class="year-label">%d`, year))
	}
	client.AssertExpectations(t)
}
