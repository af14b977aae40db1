package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/predictkick/oracle-backend/internal/dto"
	"github.com/predictkick/oracle-backend/internal/errs"
	"github.com/predictkick/oracle-backend/pkg/logger"
)

const (
	maxFetchAttempts = 3
	isoDate          = "2006-01-02"
)

// --- Dependencies (minimal interfaces scoped to this service) ---

// footballClient is the sports-data adapter surface used by this service.
type footballClient interface {
	ListTeams(ctx context.Context) ([]dto.Team, error)
	Matches(ctx context.Context, filter dto.MatchFilter) ([]dto.Match, error)
}

type matchService struct {
	football footballClient
	clockNow func() time.Time
	sleep    func(time.Duration)
}

func NewMatchService(football footballClient) *matchService {
	return &matchService{
		football: football,
		clockNow: time.Now,
		sleep:    time.Sleep,
	}
}

// Query validates the filter, resolves an optional team name, fetches the
// matches with bounded retry, and reshapes the result. All validation runs
// before any outbound call.
func (s *matchService) Query(ctx context.Context, q dto.MatchQuery) ([]dto.MatchRecord, error) {
	status := q.Status
	if status == "" {
		status = dto.StatusScheduled
	}
	if status != dto.StatusScheduled && status != dto.StatusFinished {
		return nil, errs.NewValidationError("invalid status, must be SCHEDULED or FINISHED")
	}

	dateFrom, dateTo := s.defaultDates(status, q.DateFrom, q.DateTo)
	if _, err := time.Parse(isoDate, dateFrom); err != nil {
		return nil, errs.NewValidationError("invalid date format, use YYYY-MM-DD")
	}
	if _, err := time.Parse(isoDate, dateTo); err != nil {
		return nil, errs.NewValidationError("invalid date format, use YYYY-MM-DD")
	}

	filter := dto.MatchFilter{Status: status, DateFrom: dateFrom, DateTo: dateTo}
	if q.Team != "" {
		teamID, err := s.resolveTeam(ctx, q.Team)
		if err != nil {
			return nil, err
		}
		filter.TeamID = &teamID
	}

	matches, err := s.fetchWithRetry(ctx, filter)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("matches fetched", "status", status, "count", len(matches))
	return reshapeMatches(matches), nil
}

// ListByStatus is the agent-facing variant: a status-only fetch with the same
// retry behavior and no date or team filtering.
func (s *matchService) ListByStatus(ctx context.Context, status string) ([]dto.Match, error) {
	if status == "" {
		status = dto.StatusScheduled
	}
	if status != dto.StatusScheduled && status != dto.StatusFinished {
		return nil, errs.NewValidationError("invalid status, must be SCHEDULED or FINISHED")
	}
	return s.fetchWithRetry(ctx, dto.MatchFilter{Status: status})
}

// defaultDates fills absent dates by status: scheduled queries target a
// single date 5 days out, finished queries cover the trailing 7-day window.
func (s *matchService) defaultDates(status, dateFrom, dateTo string) (string, string) {
	now := s.clockNow().UTC()
	if status == dto.StatusScheduled {
		target := now.AddDate(0, 0, 5).Format(isoDate)
		if dateFrom == "" {
			dateFrom = target
		}
		if dateTo == "" {
			dateTo = target
		}
		return dateFrom, dateTo
	}
	if dateTo == "" {
		dateTo = now.Format(isoDate)
	}
	if dateFrom == "" {
		dateFrom = now.AddDate(0, 0, -7).Format(isoDate)
	}
	return dateFrom, dateTo
}

// resolveTeam does a case-insensitive exact-name lookup over the competition
// roster; the first match wins.
func (s *matchService) resolveTeam(ctx context.Context, name string) (int, error) {
	teams, err := s.football.ListTeams(ctx)
	if err != nil {
		return 0, err
	}
	for _, team := range teams {
		if strings.EqualFold(team.Name, name) {
			return team.ID, nil
		}
	}
	return 0, errs.NewNotFoundError(fmt.Sprintf("team %q not found in competition", name))
}

// fetchWithRetry retries rate-limited fetches with exponential backoff (1s
// then 2s). Any other upstream failure returns immediately.
func (s *matchService) fetchWithRetry(ctx context.Context, filter dto.MatchFilter) ([]dto.Match, error) {
	log := logger.FromContext(ctx)
	for attempt := 0; attempt < maxFetchAttempts; attempt++ {
		matches, err := s.football.Matches(ctx, filter)
		if err == nil {
			return matches, nil
		}

		var upstream *errs.UpstreamError
		if errors.As(err, &upstream) && upstream.StatusCode == http.StatusTooManyRequests {
			if attempt < maxFetchAttempts-1 {
				delay := time.Duration(1<<attempt) * time.Second
				log.Warn("rate limited, backing off", "attempt", attempt+1, "delay", delay)
				s.sleep(delay)
			}
			continue
		}
		return nil, err
	}
	return nil, errs.NewRateLimitedError("API rate limit exceeded after retries")
}

func reshapeMatches(matches []dto.Match) []dto.MatchRecord {
	records := make([]dto.MatchRecord, 0, len(matches))
	for _, m := range matches {
		record := dto.MatchRecord{
			MatchDate: m.UTCDate,
			Venue:     m.Venue,
			HomeTeam:  m.HomeTeam.Name,
			AwayTeam:  m.AwayTeam.Name,
		}
		if record.Venue == "" {
			record.Venue = "Unknown"
		}
		if m.Status == dto.StatusFinished {
			record.Winner = "unknown"
			if m.Score != nil {
				record.Score = &dto.MatchScore{
					Home: m.Score.FullTime.Home,
					Away: m.Score.FullTime.Away,
				}
				if m.Score.Winner != nil {
					switch *m.Score.Winner {
					case dto.WinnerHomeTeam:
						record.Winner = m.HomeTeam.Name
					case dto.WinnerAwayTeam:
						record.Winner = m.AwayTeam.Name
					case dto.WinnerDraw:
						record.Winner = "draw"
					}
				}
			}
		}
		records = append(records, record)
	}
	return records
}
