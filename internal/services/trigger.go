package services

import (
	"context"

	"github.com/predictkick/oracle-backend/pkg/logger"
)

// The recurring task uses one fixed session so the agent keeps its context
// across runs.
const (
	triggerSessionID = "daily-market-creation-task"
	triggerCommand   = "run daily market creation"
)

type triggerService struct {
	agent agentClient
}

func NewTriggerService(agent agentClient) *triggerService {
	return &triggerService{agent: agent}
}

// Run fires the fixed market-creation command at the hosted agent. The
// invocation error is returned to the scheduler rather than swallowed.
func (s *triggerService) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := s.agent.InvokeAgent(ctx, triggerSessionID, triggerCommand); err != nil {
		log.Error("agent trigger failed", "error", err)
		return err
	}

	log.Info("agent invoked for market creation")
	return nil
}
