package handlers

import (
	"context"
	"log/slog"

	"github.com/predictkick/oracle-backend/internal/dto"
	"github.com/predictkick/oracle-backend/internal/response"
)

type MatchService interface {
	Query(ctx context.Context, q dto.MatchQuery) ([]dto.MatchRecord, error)
	ListByStatus(ctx context.Context, status string) ([]dto.Match, error)
}

type OracleService interface {
	Invoke(ctx context.Context, functionName, argsJSON string) (string, error)
}

type RelayService interface {
	HandleMessage(ctx context.Context, msg dto.ChatMessage) error
}

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	MatchSvc        MatchService
	OracleSvc       OracleService
	RelaySvc        RelayService
}
