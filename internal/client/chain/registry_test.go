package chainclient

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/predictkick/oracle-backend/internal/errs"
)

const marketABI = `[
	{"type":"function","name":"createMarket","inputs":[
		{"name":"question","type":"string"},
		{"name":"closeTime","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"resolveMarket","inputs":[
		{"name":"marketId","type":"uint256"},
		{"name":"outcome","type":"uint8"}],"outputs":[]},
	{"type":"function","name":"setOracle","inputs":[
		{"name":"oracle","type":"address"},
		{"name":"enabled","type":"bool"}],"outputs":[]}
]`

func newTestRegistry(t *testing.T) *FunctionRegistry {
	t.Helper()
	registry, err := NewFunctionRegistry(marketABI)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return registry
}

func TestPackKnownFunction(t *testing.T) {
	registry := newTestRegistry(t)

	calldata, err := registry.Pack("createMarket", []any{
		"Will Arsenal beat Chelsea?",
		json.Number("1757260800"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 4-byte selector plus encoded arguments
	if len(calldata) <= 4 {
		t.Fatalf("calldata too short: %d bytes", len(calldata))
	}
}

func TestPackCoercesSizedIntegersAndAddresses(t *testing.T) {
	registry := newTestRegistry(t)

	if _, err := registry.Pack("resolveMarket", []any{json.Number("7"), json.Number("1")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := registry.Pack("setOracle", []any{
		"0x1111111111111111111111111111111111111111",
		true,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPackUnknownFunction(t *testing.T) {
	registry := newTestRegistry(t)

	_, err := registry.Pack("mintGold", nil)

	var unknown *errs.UnknownFunctionError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownFunctionError, got %v", err)
	}
}

func TestPackWrongArgumentCount(t *testing.T) {
	registry := newTestRegistry(t)

	_, err := registry.Pack("resolveMarket", []any{json.Number("7")})

	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestPackRejectsOutOfRangeUint8(t *testing.T) {
	registry := newTestRegistry(t)

	_, err := registry.Pack("resolveMarket", []any{json.Number("7"), json.Number("256")})

	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestPackRejectsMalformedAddress(t *testing.T) {
	registry := newTestRegistry(t)

	_, err := registry.Pack("setOracle", []any{"not-an-address", true})

	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestNewFunctionRegistryRejectsBadInterface(t *testing.T) {
	if _, err := NewFunctionRegistry("{broken"); err == nil {
		t.Fatal("expected error")
	}
}
