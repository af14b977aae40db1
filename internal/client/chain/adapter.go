package chainclient

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/params"
)

// Transaction parameters are fixed for the oracle's privileged calls.
const (
	chainID      = 11155111 // Sepolia
	gasLimit     = 500000
	gasPriceGwei = 50
)

type Adapter struct {
	client   *ethclient.Client
	contract common.Address
}

func NewAdapter(rpcURL, contractAddress string) (*Adapter, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", contractAddress)
	}
	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial chain rpc: %w", err)
	}
	return &Adapter{
		client:   client,
		contract: common.HexToAddress(contractAddress),
	}, nil
}

func (a *Adapter) Close() {
	a.client.Close()
}

// SubmitTransaction signs calldata with the given key and submits it to the
// configured contract, returning the hex-encoded transaction hash. The key
// is scoped to this call and never retained.
func (a *Adapter) SubmitTransaction(ctx context.Context, keyHex string, calldata []byte) (string, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(keyHex, "0x"))
	if err != nil {
		return "", fmt.Errorf("parse signing key: %w", err)
	}
	from := crypto.PubkeyToAddress(key.PublicKey)

	nonce, err := a.client.PendingNonceAt(ctx, from)
	if err != nil {
		return "", fmt.Errorf("fetch nonce: %w", err)
	}

	gasPrice := new(big.Int).Mul(big.NewInt(gasPriceGwei), big.NewInt(params.GWei))
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &a.contract,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     calldata,
	})

	signed, err := types.SignTx(tx, types.NewEIP155Signer(big.NewInt(chainID)), key)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	if err := a.client.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}

	return signed.Hash().Hex(), nil
}
