package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/predictkick/oracle-backend/internal/dto"
	"github.com/predictkick/oracle-backend/internal/errs"
	"github.com/predictkick/oracle-backend/internal/response"
	"github.com/predictkick/oracle-backend/pkg/helpers"
	"github.com/predictkick/oracle-backend/pkg/logger"
)

// fakes implementing handler interfaces

type fakeMatchSvc struct {
	records   []dto.MatchRecord
	matches   []dto.Match
	err       error
	gotQuery  dto.MatchQuery
	gotStatus string
}

func (f *fakeMatchSvc) Query(ctx context.Context, q dto.MatchQuery) ([]dto.MatchRecord, error) {
	f.gotQuery = q
	return f.records, f.err
}

func (f *fakeMatchSvc) ListByStatus(ctx context.Context, status string) ([]dto.Match, error) {
	f.gotStatus = status
	return f.matches, f.err
}

type fakeOracleSvc struct {
	hash    string
	err     error
	calls   int
	gotName string
	gotArgs string
}

func (f *fakeOracleSvc) Invoke(ctx context.Context, functionName, argsJSON string) (string, error) {
	f.calls++
	f.gotName = functionName
	f.gotArgs = argsJSON
	return f.hash, f.err
}

func newTestAgentHandler(m *fakeMatchSvc, o *fakeOracleSvc) *agentHandlers {
	log := slog.New(logger.NewTestHandler(slog.LevelInfo))
	deps := &Deps{
		Log:             log,
		ResponseHandler: response.New(log),
		MatchSvc:        m,
		OracleSvc:       o,
	}
	return NewAgentHandlers(deps)
}

func postAction(h *agentHandlers, req dto.ToolInvocationRequest) (*httptest.ResponseRecorder, dto.ToolInvocationResponse) {
	log := slog.New(logger.NewTestHandler(slog.LevelInfo))
	ctx := logger.ToContext(context.Background(), log)

	body, _ := json.Marshal(req)
	httpReq := httptest.NewRequest(http.MethodPost, "/agent/actions", bytes.NewBuffer(body)).WithContext(ctx)
	rr := httptest.NewRecorder()
	h.HandleAction(rr, httpReq)

	var envelope dto.ToolInvocationResponse
	_ = json.Unmarshal(rr.Body.Bytes(), &envelope)
	return rr, envelope
}

func TestAgentMatchesActionReturnsSimplifiedRecords(t *testing.T) {
	m := &fakeMatchSvc{matches: []dto.Match{
		{
			ID:       327,
			UTCDate:  "2025-03-08T15:00:00Z",
			Status:   dto.StatusFinished,
			HomeTeam: dto.TeamRef{Name: "Arsenal"},
			AwayTeam: dto.TeamRef{Name: "Chelsea"},
			Score:    &dto.MatchScoreBlock{Winner: helpers.Ptr(dto.WinnerAwayTeam)},
		},
		{
			ID:       328,
			UTCDate:  "2025-03-15T15:00:00Z",
			Status:   dto.StatusScheduled,
			HomeTeam: dto.TeamRef{Name: "Everton"},
			AwayTeam: dto.TeamRef{Name: "Fulham"},
		},
	}}
	h := newTestAgentHandler(m, &fakeOracleSvc{})

	req := dto.ToolInvocationRequest{
		ActionGroup: "MatchActions",
		APIPath:     "/matches",
		HTTPMethod:  "POST",
		Parameters:  []dto.ToolParameter{{Name: "status", Value: "FINISHED"}},
	}
	rr, envelope := postAction(h, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("transport status = %d", rr.Code)
	}
	if envelope.HTTPStatusCode != http.StatusOK {
		t.Fatalf("envelope status = %d, body=%s", envelope.HTTPStatusCode, rr.Body.String())
	}
	if envelope.ActionGroup != "MatchActions" || envelope.APIPath != "/matches" || envelope.HTTPMethod != "POST" {
		t.Fatalf("envelope must echo the request routing: %+v", envelope)
	}
	if m.gotStatus != "FINISHED" {
		t.Fatalf("status parameter not forwarded, got %q", m.gotStatus)
	}

	var records []dto.SimplifiedMatch
	if err := json.Unmarshal([]byte(envelope.ResponseBody["application/json"].Body), &records); err != nil {
		t.Fatalf("body is not a JSON-encoded array: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].MatchID != 327 || records[0].Winner == nil || *records[0].Winner != dto.WinnerAwayTeam {
		t.Fatalf("winner code must pass through verbatim: %+v", records[0])
	}
	if records[1].Winner != nil {
		t.Fatalf("scheduled match winner must be null: %+v", records[1])
	}
}

func TestAgentMatchesActionMapsRateLimit(t *testing.T) {
	m := &fakeMatchSvc{err: errs.NewRateLimitedError("API rate limit exceeded after retries")}
	h := newTestAgentHandler(m, &fakeOracleSvc{})

	_, envelope := postAction(h, dto.ToolInvocationRequest{APIPath: "/matches"})

	if envelope.HTTPStatusCode != http.StatusTooManyRequests {
		t.Fatalf("envelope status = %d", envelope.HTTPStatusCode)
	}
}

func TestAgentContractActionSubmitsAndReturnsHash(t *testing.T) {
	o := &fakeOracleSvc{hash: "0xdeadbeef"}
	h := newTestAgentHandler(&fakeMatchSvc{}, o)

	req := dto.ToolInvocationRequest{
		ActionGroup: "OracleActions",
		APIPath:     "/invoke-contract",
		HTTPMethod:  "POST",
		Parameters: []dto.ToolParameter{
			{Name: "functionName", Value: "resolveMarket"},
			{Name: "arguments", Value: `[7, 1]`},
		},
	}
	_, envelope := postAction(h, req)

	if envelope.HTTPStatusCode != http.StatusOK {
		t.Fatalf("envelope status = %d", envelope.HTTPStatusCode)
	}
	if o.gotName != "resolveMarket" || o.gotArgs != `[7, 1]` {
		t.Fatalf("unexpected invocation: %q %q", o.gotName, o.gotArgs)
	}

	var result dto.ContractResult
	_ = json.Unmarshal([]byte(envelope.ResponseBody["application/json"].Body), &result)
	if result.Status != dto.ContractStatusSuccess || result.TxHash != "0xdeadbeef" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestAgentContractActionRequiresFunctionName(t *testing.T) {
	o := &fakeOracleSvc{}
	h := newTestAgentHandler(&fakeMatchSvc{}, o)

	req := dto.ToolInvocationRequest{
		APIPath:    "/invoke-contract",
		Parameters: []dto.ToolParameter{{Name: "arguments", Value: "[]"}},
	}
	_, envelope := postAction(h, req)

	if envelope.HTTPStatusCode != http.StatusBadRequest {
		t.Fatalf("envelope status = %d", envelope.HTTPStatusCode)
	}
	if o.calls != 0 {
		t.Fatal("oracle must not be invoked without a function name")
	}
	if !strings.Contains(envelope.ResponseBody["application/json"].Body, "Function name not specified.") {
		t.Fatalf("unexpected body: %s", envelope.ResponseBody["application/json"].Body)
	}
}

func TestAgentContractActionFailureReturnsErrorResult(t *testing.T) {
	o := &fakeOracleSvc{err: errs.NewUnknownFunctionError("mintGold")}
	h := newTestAgentHandler(&fakeMatchSvc{}, o)

	req := dto.ToolInvocationRequest{
		APIPath:    "/invoke-contract",
		Parameters: []dto.ToolParameter{{Name: "functionName", Value: "mintGold"}},
	}
	_, envelope := postAction(h, req)

	if envelope.HTTPStatusCode != http.StatusInternalServerError {
		t.Fatalf("envelope status = %d", envelope.HTTPStatusCode)
	}
	var result dto.ContractResult
	_ = json.Unmarshal([]byte(envelope.ResponseBody["application/json"].Body), &result)
	if result.Status != dto.ContractStatusError || result.Message == "" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestAgentUnrecognizedAPIPath(t *testing.T) {
	h := newTestAgentHandler(&fakeMatchSvc{}, &fakeOracleSvc{})

	_, envelope := postAction(h, dto.ToolInvocationRequest{APIPath: "/no-such-action"})

	if envelope.HTTPStatusCode != http.StatusBadRequest {
		t.Fatalf("envelope status = %d", envelope.HTTPStatusCode)
	}
}
