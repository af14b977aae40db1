package chainclient

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/predictkick/oracle-backend/internal/errs"
)

// FunctionRegistry maps recognized contract function names to their ABI
// methods, built once from the configured interface description. Unknown
// names fail with an explicit error instead of a late submission failure.
type FunctionRegistry struct {
	contractABI abi.ABI
	methods     map[string]abi.Method
}

func NewFunctionRegistry(abiJSON string) (*FunctionRegistry, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("parse contract interface: %w", err)
	}

	methods := make(map[string]abi.Method, len(parsed.Methods))
	for name, method := range parsed.Methods {
		methods[name] = method
	}

	return &FunctionRegistry{contractABI: parsed, methods: methods}, nil
}

// Pack encodes a call to the named function, coercing JSON-decoded argument
// values to the method's parameter types.
func (r *FunctionRegistry) Pack(name string, args []any) ([]byte, error) {
	method, ok := r.methods[name]
	if !ok {
		return nil, errs.NewUnknownFunctionError(name)
	}

	if len(args) != len(method.Inputs) {
		return nil, errs.NewValidationError(fmt.Sprintf(
			"function %q expects %d arguments, got %d", name, len(method.Inputs), len(args)))
	}

	coerced := make([]any, len(args))
	for i, input := range method.Inputs {
		value, err := coerceArg(input.Type, args[i])
		if err != nil {
			return nil, errs.NewValidationError(fmt.Sprintf(
				"argument %d of %q: %s", i, name, err.Error()))
		}
		coerced[i] = value
	}

	return r.contractABI.Pack(name, coerced...)
}

func coerceArg(t abi.Type, v any) (any, error) {
	switch t.T {
	case abi.UintTy, abi.IntTy:
		n, err := toBigInt(v)
		if err != nil {
			return nil, err
		}
		return sizeInteger(t, n)

	case abi.StringTy:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		return s, nil

	case abi.AddressTy:
		s, ok := v.(string)
		if !ok || !common.IsHexAddress(s) {
			return nil, fmt.Errorf("expected hex address, got %v", v)
		}
		return common.HexToAddress(s), nil

	case abi.BoolTy:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("expected bool, got %T", v)
		}
		return b, nil

	case abi.BytesTy:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected hex string, got %T", v)
		}
		return hexutil.Decode(s)

	case abi.FixedBytesTy:
		if t.Size != 32 {
			return nil, fmt.Errorf("unsupported parameter type bytes%d", t.Size)
		}
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected hex string, got %T", v)
		}
		raw, err := hexutil.Decode(s)
		if err != nil {
			return nil, err
		}
		if len(raw) != 32 {
			return nil, fmt.Errorf("expected 32 bytes, got %d", len(raw))
		}
		var fixed [32]byte
		copy(fixed[:], raw)
		return fixed, nil

	default:
		return nil, fmt.Errorf("unsupported parameter type %s", t.String())
	}
}

// toBigInt accepts the value shapes a JSON argument list can carry for an
// integer: json.Number (decoder with UseNumber), float64, or a decimal
// string for values beyond float precision.
func toBigInt(v any) (*big.Int, error) {
	switch n := v.(type) {
	case json.Number:
		out, ok := new(big.Int).SetString(n.String(), 10)
		if !ok {
			return nil, fmt.Errorf("invalid integer %q", n.String())
		}
		return out, nil
	case float64:
		return big.NewInt(int64(n)), nil
	case string:
		out, ok := new(big.Int).SetString(n, 10)
		if !ok {
			return nil, fmt.Errorf("invalid integer %q", n)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected integer, got %T", v)
	}
}

// sizeInteger converts a big.Int to the exact Go type the ABI encoder expects
// for the method's declared bit size.
func sizeInteger(t abi.Type, n *big.Int) (any, error) {
	if t.Size > 64 {
		return n, nil
	}
	if t.T == abi.UintTy {
		if n.Sign() < 0 || n.BitLen() > t.Size {
			return nil, fmt.Errorf("value %s out of range for uint%d", n.String(), t.Size)
		}
		switch t.Size {
		case 8:
			return uint8(n.Uint64()), nil
		case 16:
			return uint16(n.Uint64()), nil
		case 32:
			return uint32(n.Uint64()), nil
		default:
			return n.Uint64(), nil
		}
	}
	if !n.IsInt64() {
		return nil, fmt.Errorf("value %s out of range for int%d", n.String(), t.Size)
	}
	switch t.Size {
	case 8:
		return int8(n.Int64()), nil
	case 16:
		return int16(n.Int64()), nil
	case 32:
		return int32(n.Int64()), nil
	default:
		return n.Int64(), nil
	}
}
