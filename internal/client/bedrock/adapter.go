package bedrockclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"

	"github.com/predictkick/oracle-backend/internal/errs"
)

const serviceName = "bedrock-agent"

type Adapter struct {
	client       *bedrockagentruntime.Client
	agentID      string
	agentAliasID string
}

func NewAdapter(client *bedrockagentruntime.Client, agentID, agentAliasID string) *Adapter {
	return &Adapter{
		client:       client,
		agentID:      agentID,
		agentAliasID: agentAliasID,
	}
}

// InvokeAgent sends inputText to the hosted agent under the given session and
// assembles the streamed completion chunks, in delivery order, into one
// string.
func (a *Adapter) InvokeAgent(ctx context.Context, sessionID, inputText string) (string, error) {
	out, err := a.client.InvokeAgent(ctx, &bedrockagentruntime.InvokeAgentInput{
		AgentId:      aws.String(a.agentID),
		AgentAliasId: aws.String(a.agentAliasID),
		SessionId:    aws.String(sessionID),
		InputText:    aws.String(inputText),
	})
	if err != nil {
		return "", errs.NewUpstreamError(serviceName, 0, err.Error())
	}

	stream := out.GetStream()
	defer stream.Close()

	var reply strings.Builder
	for event := range stream.Events() {
		if chunk, ok := event.(*types.ResponseStreamMemberChunk); ok {
			reply.Write(chunk.Value.Bytes)
		}
	}
	if err := stream.Err(); err != nil {
		return "", fmt.Errorf("agent response stream: %w", err)
	}

	return reply.String(), nil
}
