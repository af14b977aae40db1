package dto

import "encoding/json"

// Tool-invocation envelope used by the hosted agent's action groups.

type ToolParameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type ToolInvocationRequest struct {
	ActionGroup string          `json:"actionGroup"`
	APIPath     string          `json:"apiPath"`
	HTTPMethod  string          `json:"httpMethod"`
	Parameters  []ToolParameter `json:"parameters"`
}

// Params flattens the parameter list into a name→value map; the last write
// wins on duplicate names.
func (r *ToolInvocationRequest) Params() map[string]string {
	params := make(map[string]string, len(r.Parameters))
	for _, p := range r.Parameters {
		params[p.Name] = p.Value
	}
	return params
}

type ToolResponseContent struct {
	Body string `json:"body"`
}

type ToolInvocationResponse struct {
	ActionGroup    string                         `json:"actionGroup"`
	APIPath        string                         `json:"apiPath"`
	HTTPMethod     string                         `json:"httpMethod"`
	HTTPStatusCode int                            `json:"httpStatusCode"`
	ResponseBody   map[string]ToolResponseContent `json:"responseBody"`
}

// NewToolResponse wraps body into the agent's response envelope, echoing the
// request's routing fields. The body is JSON-encoded into a string as the
// protocol requires.
func NewToolResponse(req *ToolInvocationRequest, statusCode int, body any) (*ToolInvocationResponse, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return &ToolInvocationResponse{
		ActionGroup:    req.ActionGroup,
		APIPath:        req.APIPath,
		HTTPMethod:     req.HTTPMethod,
		HTTPStatusCode: statusCode,
		ResponseBody: map[string]ToolResponseContent{
			"application/json": {Body: string(encoded)},
		},
	}, nil
}

// SimplifiedMatch is the trimmed record returned to the agent. Winner is the
// upstream three-way code passed through verbatim when a score object is
// present, null otherwise.
type SimplifiedMatch struct {
	MatchID      int     `json:"matchId"`
	HomeTeam     string  `json:"homeTeam"`
	AwayTeam     string  `json:"awayTeam"`
	StartTimeUTC string  `json:"startTimeUTC"`
	Status       string  `json:"status"`
	Winner       *string `json:"winner"`
}
