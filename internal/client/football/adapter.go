package footballclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/predictkick/oracle-backend/internal/dto"
	"github.com/predictkick/oracle-backend/internal/errs"
)

const serviceName = "football-data"

type Adapter struct {
	httpClient    *http.Client
	baseURL       string
	token         string
	competitionID string
}

func NewAdapter(httpClient *http.Client, baseURL, token, competitionID string) *Adapter {
	return &Adapter{
		httpClient:    httpClient,
		baseURL:       baseURL,
		token:         token,
		competitionID: competitionID,
	}
}

// ListTeams fetches the full roster of the configured competition.
func (a *Adapter) ListTeams(ctx context.Context) ([]dto.Team, error) {
	endpoint := fmt.Sprintf("%s/competitions/%s/teams", a.baseURL, a.competitionID)

	var page dto.TeamsPage
	if err := a.get(ctx, endpoint, nil, &page); err != nil {
		return nil, err
	}
	return page.Teams, nil
}

// Matches fetches matches for the competition, or for a single team when the
// filter carries a team id. Rate-limit handling is the caller's concern; a
// 429 surfaces as an UpstreamError with that status code.
func (a *Adapter) Matches(ctx context.Context, filter dto.MatchFilter) ([]dto.Match, error) {
	endpoint := fmt.Sprintf("%s/competitions/%s/matches", a.baseURL, a.competitionID)
	if filter.TeamID != nil {
		endpoint = fmt.Sprintf("%s/teams/%d/matches", a.baseURL, *filter.TeamID)
	}

	query := url.Values{}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.DateFrom != "" {
		query.Set("dateFrom", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query.Set("dateTo", filter.DateTo)
	}

	var page dto.MatchesPage
	if err := a.get(ctx, endpoint, query, &page); err != nil {
		return nil, err
	}
	return page.Matches, nil
}

func (a *Adapter) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("X-Auth-Token", a.token)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return errs.NewUpstreamError(serviceName, 0, err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewUpstreamError(serviceName, resp.StatusCode, err.Error())
	}
	if resp.StatusCode != http.StatusOK {
		return errs.NewUpstreamError(serviceName, resp.StatusCode, string(body))
	}

	return json.Unmarshal(body, out)
}
