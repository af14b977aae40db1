package dto

const (
	ContractStatusSuccess = "SUCCESS"
	ContractStatusError   = "ERROR"
)

// ContractResult is the body returned to the agent after a contract
// invocation attempt.
type ContractResult struct {
	Status  string `json:"status"`
	TxHash  string `json:"tx_hash,omitempty"`
	Message string `json:"message,omitempty"`
}
