package services

import (
	"testing"

	"github.com/predictkick/oracle-backend/internal/errs"
	"github.com/predictkick/oracle-backend/pkg/helpers"
)

func TestTriggerRunUsesFixedCommandAndSession(t *testing.T) {
	agent := &fakeAgent{}

	svc := NewTriggerService(agent)
	if err := svc.Run(helpers.TestCtx()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if agent.gotSession != triggerSessionID {
		t.Fatalf("unexpected session %q", agent.gotSession)
	}
	if agent.gotInput != triggerCommand {
		t.Fatalf("unexpected command %q", agent.gotInput)
	}
}

func TestTriggerRunReturnsInvocationError(t *testing.T) {
	agent := &fakeAgent{err: errs.NewUpstreamError("bedrock-agent", 0, "unavailable")}

	svc := NewTriggerService(agent)
	if err := svc.Run(helpers.TestCtx()); err == nil {
		t.Fatal("expected error")
	}
}
