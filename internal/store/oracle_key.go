package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// Secret payload shape
// {"oracle_private_key": "<hex key>"}

type oracleKeyStore struct {
	client   *secretsmanager.Client
	secretID string
	testKey  string
}

// NewOracleKeyStore reads the oracle signing key from Secrets Manager. When
// no secret id is configured, testKey is used instead; that path exists for
// local testing only.
func NewOracleKeyStore(client *secretsmanager.Client, secretID, testKey string) *oracleKeyStore {
	return &oracleKeyStore{
		client:   client,
		secretID: secretID,
		testKey:  testKey,
	}
}

// GetOracleKey fetches the signing key for a single invocation. The key is
// never cached; each call goes back to the secret store.
func (s *oracleKeyStore) GetOracleKey(ctx context.Context) (string, error) {
	if s.secretID == "" {
		if s.testKey != "" {
			return s.testKey, nil
		}
		return "", errors.New("no signing credential configured")
	}

	res, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(s.secretID),
	})
	if err != nil {
		return "", fmt.Errorf("fetch signing credential: %w", err)
	}

	var payload struct {
		OraclePrivateKey string `json:"oracle_private_key"`
	}
	if err := json.Unmarshal([]byte(aws.ToString(res.SecretString)), &payload); err != nil {
		return "", fmt.Errorf("decode signing credential: %w", err)
	}
	if payload.OraclePrivateKey == "" {
		return "", errors.New("signing credential missing oracle_private_key")
	}
	return payload.OraclePrivateKey, nil
}
