package chart

import (
	"context"
	"sync"
	"time"

	"github.com/bshore/github-contribution-merge/pkg/errs"
	"github.com/bshore/github-contribution-merge/pkg/metrics"
	"github.com/bshore/github-contribution-merge/pkg/models/domain"
	"github.com/bshore/github-contribution-merge/pkg/services/contributions"
	"github.com/bshore/github-contribution-merge/pkg/services/github"
	"github.com/bshore/github-contribution-merge/pkg/services/render"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// FloorYear is the oldest calendar year the chart will reach back to.
const FloorYear = 2008

// Controller runs the full pipeline for one chart request: filter the
// merge set by authorization, fetch every (account, year) calendar,
// merge per year, render the document.
type Controller interface {
	RenderChart(ctx context.Context, req domain.ChartRequest) (string, error)
}

type controller struct {
	client github.Client
	now    func() time.Time
}

func NewController(client github.Client) Controller {
	return &controller{client: client, now: time.Now}
}

func (c *controller) RenderChart(ctx context.Context, req domain.ChartRequest) (string, error) {
	logins := c.filterAuthorized(ctx, req.Primary, req.Secondaries)
	if len(logins) == 0 {
		return "", errs.NewNoAccountsError()
	}

	years := yearSpan(c.now().UTC().Year(), req.Years)

	blocks, err := c.fetchAndMerge(ctx, logins, years)
	if err != nil {
		return "", err
	}

	start := time.Now()
	doc, err := render.Render(blocks, logins, req.Theme)
	if err != nil {
		return "", err
	}
	metrics.RenderDuration.Observe(time.Since(start).Seconds())

	return doc, nil
}

// filterAuthorized checks every secondary account concurrently and
// returns the merge set in request order, primary first. A denied or
// failed check drops that account and never fails the request.
func (c *controller) filterAuthorized(ctx context.Context, primary string, secondaries []string) []string {
	logger := zerolog.Ctx(ctx)

	authorized := make([]bool, len(secondaries))
	var wg sync.WaitGroup
	for i, login := range secondaries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := c.client.IsAuthorized(ctx, login, primary)
			if err != nil {
				logger.Warn().Err(err).Str("account", login).Msg("authorization check failed, excluding account")
				return
			}
			if !ok {
				logger.Warn().Str("account", login).Msg("account has not authorized merging, excluding")
				return
			}
			authorized[i] = true
		}()
	}
	wg.Wait()

	logins := make([]string, 0, len(secondaries)+1)
	logins = append(logins, primary)
	for i, login := range secondaries {
		if authorized[i] {
			logins = append(logins, login)
		}
	}
	return logins
}

// fetchAndMerge fans out one calendar fetch per (account, year) pair.
// All fetches for a year must succeed for that year to merge; the first
// failure aborts the whole request.
func (c *controller) fetchAndMerge(ctx context.Context, logins []string, years []int) ([]domain.YearBlock, error) {
	blocks := make([]domain.YearBlock, len(years))

	g, ctx := errgroup.WithContext(ctx)
	for yi, year := range years {
		g.Go(func() error {
			seriesList := make([]domain.AccountSeries, len(logins))
			yg, ctx := errgroup.WithContext(ctx)
			for li, login := range logins {
				yg.Go(func() error {
					series, err := c.client.FetchCalendar(ctx, login, year)
					if err != nil {
						return err
					}
					seriesList[li] = series
					return nil
				})
			}
			if err := yg.Wait(); err != nil {
				return err
			}

			merged, err := contributions.Merge(seriesList, logins)
			if err != nil {
				return err
			}
			blocks[yi] = domain.YearBlock{Year: year, Series: merged}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return blocks, nil
}

// yearSpan counts back from the current year, stopping when count is
// exhausted or the year would precede the floor year.
func yearSpan(current, count int) []int {
	var years []int
	for year := current; year > current-count && year >= FloorYear; year-- {
		years = append(years, year)
	}
	return years
}
