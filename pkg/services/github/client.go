package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bshore/github-contribution-merge/pkg/errs"
	"github.com/bshore/github-contribution-merge/pkg/metrics"
	"github.com/bshore/github-contribution-merge/pkg/models/api"
	"github.com/bshore/github-contribution-merge/pkg/models/domain"
	"github.com/bshore/github-contribution-merge/pkg/services/config"
	"github.com/rs/zerolog"
)

// AuthFileName is the file a secondary account must include in a public
// gist to opt in to being merged; the gist description names the
// primary account being authorized.
const AuthFileName = "github-contribution-merge.txt"

const calendarQuery = `query($login: String!, $from: DateTime!, $to: DateTime!) {
  user(login: $login) {
    contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            date
            weekday
            contributionCount
          }
        }
      }
    }
  }
}`

const gistsQuery = `query($login: String!) {
  user(login: $login) {
    gists(first: 100, privacy: PUBLIC) {
      nodes {
        name
        description
        files {
          name
        }
      }
    }
  }
}`

// Client is the upstream GitHub collaborator: one calendar fetch per
// (account, year) pair, plus the gist-based authorization predicate.
type Client interface {
	FetchCalendar(ctx context.Context, login string, year int) (domain.AccountSeries, error)
	IsAuthorized(ctx context.Context, secondary, primary string) (bool, error)
}

type client struct {
	http     *http.Client
	endpoint string
	token    string
}

func NewClient(cfg config.GitHubConfig) Client {
	return &client{
		http:     &http.Client{Timeout: cfg.Timeout},
		endpoint: cfg.Endpoint,
		token:    cfg.Token,
	}
}

func (c *client) FetchCalendar(ctx context.Context, login string, year int) (domain.AccountSeries, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)

	resp, err := c.query(ctx, "calendar", calendarQuery, map[string]any{
		"login": login,
		"from":  from.Format(time.RFC3339),
		"to":    to.Format(time.RFC3339),
	})
	if err != nil {
		return domain.AccountSeries{}, errs.NewUpstreamError(err, "failed to fetch calendar for %s/%d", login, year)
	}

	if resp.Data.User == nil || resp.Data.User.ContributionsCollection == nil {
		return domain.AccountSeries{}, errs.NewUpstreamError(nil, "no contribution data for %s/%d", login, year)
	}

	return mapCalendar(login, year, resp.Data.User.ContributionsCollection.ContributionCalendar)
}

func (c *client) IsAuthorized(ctx context.Context, secondary, primary string) (bool, error) {
	logger := zerolog.Ctx(ctx)

	resp, err := c.query(ctx, "gists", gistsQuery, map[string]any{"login": secondary})
	if err != nil {
		return false, errs.NewUpstreamError(err, "failed to list gists for %s", secondary)
	}
	if resp.Data.User == nil || resp.Data.User.Gists == nil {
		return false, nil
	}

	for _, gist := range resp.Data.User.Gists.Nodes {
		if !strings.Contains(gist.Description, primary) {
			continue
		}
		for _, file := range gist.Files {
			if file.Name == AuthFileName {
				logger.Debug().
					Str("secondary", secondary).
					Str("gist", gist.Name).
					Msg("authorization gist found")
				return true, nil
			}
		}
	}
	return false, nil
}

func (c *client) query(ctx context.Context, kind, query string, variables map[string]any) (*api.GraphQLResponse, error) {
	body, err := json.Marshal(api.GraphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(req)
	if err != nil {
		metrics.GitHubCallsTotal.WithLabelValues(kind, "error").Inc()
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		metrics.GitHubCallsTotal.WithLabelValues(kind, "error").Inc()
		return nil, fmt.Errorf("unexpected status %d from GitHub API", httpResp.StatusCode)
	}

	var resp api.GraphQLResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		metrics.GitHubCallsTotal.WithLabelValues(kind, "error").Inc()
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(resp.Errors) > 0 {
		metrics.GitHubCallsTotal.WithLabelValues(kind, "error").Inc()
		return nil, fmt.Errorf("GitHub API error: %s", resp.Errors[0].Message)
	}

	metrics.GitHubCallsTotal.WithLabelValues(kind, "ok").Inc()
	return &resp, nil
}

func mapCalendar(login string, year int, cal api.ContributionCalendar) (domain.AccountSeries, error) {
	series := domain.AccountSeries{
		Login: login,
		Year:  year,
		Weeks: make([]domain.Week, 0, len(cal.Weeks)),
	}
	for _, week := range cal.Weeks {
		days := make([]domain.ContributionDay, 0, len(week.ContributionDays))
		for _, day := range week.ContributionDays {
			date, err := time.Parse("2006-01-02", day.Date)
			if err != nil {
				return domain.AccountSeries{}, errs.NewUpstreamError(err, "malformed date %q for %s/%d", day.Date, login, year)
			}
			days = append(days, domain.ContributionDay{
				Date:    date,
				Weekday: day.Weekday,
				Count:   day.ContributionCount,
			})
		}
		series.Weeks = append(series.Weeks, domain.Week{Days: days})
	}
	return series, nil
}
