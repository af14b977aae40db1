package services

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/predictkick/oracle-backend/internal/errs"
	"github.com/predictkick/oracle-backend/pkg/logger"
)

// --- Dependencies (minimal interfaces scoped to this service) ---

type oracleKeyStore interface {
	GetOracleKey(ctx context.Context) (string, error)
}

type contractRegistry interface {
	Pack(name string, args []any) ([]byte, error)
}

type chainSubmitter interface {
	SubmitTransaction(ctx context.Context, keyHex string, calldata []byte) (string, error)
}

type oracleService struct {
	keys     oracleKeyStore
	registry contractRegistry
	chain    chainSubmitter
}

func NewOracleService(keys oracleKeyStore, registry contractRegistry, chain chainSubmitter) *oracleService {
	return &oracleService{
		keys:     keys,
		registry: registry,
		chain:    chain,
	}
}

// Invoke packs a call to the named contract function, signs it with a
// freshly fetched oracle key, and submits it. The calldata is packed before
// any network or secret-store call, so an unknown function or a bad argument
// list never reaches the chain. Submission is irreversible; this operation
// is not idempotent and is never retried.
func (s *oracleService) Invoke(ctx context.Context, functionName, argsJSON string) (string, error) {
	if argsJSON == "" {
		argsJSON = "[]"
	}

	decoder := json.NewDecoder(strings.NewReader(argsJSON))
	decoder.UseNumber()
	var args []any
	if err := decoder.Decode(&args); err != nil {
		return "", errs.NewValidationError("arguments must be a JSON-encoded array")
	}

	calldata, err := s.registry.Pack(functionName, args)
	if err != nil {
		return "", err
	}

	key, err := s.keys.GetOracleKey(ctx)
	if err != nil {
		return "", err
	}

	txHash, err := s.chain.SubmitTransaction(ctx, key, calldata)
	if err != nil {
		return "", err
	}

	log := logger.FromContext(ctx)
	log.Info("transaction submitted", "function", functionName, "tx_hash", txHash)
	return txHash, nil
}
