package utils

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"onlynerds/config"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/go-resty/resty/v2"
)

// Read-only client for the on-chain contest contract. Contests live entirely
// in the contract; the backend only exposes eth_call reads.

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

type rpcResponse struct {
	Result string `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// selector returns the 4-byte function selector for a solidity signature.
func selector(signature string) string {
	return hexutil.Encode(crypto.Keccak256([]byte(signature))[:4])
}

// encodeUint256 left-pads a uint to a 32-byte ABI word.
func encodeUint256(v uint64) string {
	return fmt.Sprintf("%064x", v)
}

// encodeAddress left-pads an address to a 32-byte ABI word.
func encodeAddress(address string) string {
	h := strings.ToLower(strings.TrimPrefix(address, "0x"))
	return strings.Repeat("0", 64-len(h)) + h
}

func ethCall(data string) (string, error) {
	if config.AppConfig.ContestContract == "" {
		return "", fmt.Errorf("contest contract address not configured")
	}

	client := resty.New().SetTimeout(10 * time.Second)

	var out rpcResponse
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(rpcRequest{
			JSONRPC: "2.0",
			Method:  "eth_call",
			Params: []interface{}{
				map[string]string{
					"to":   config.AppConfig.ContestContract,
					"data": data,
				},
				"latest",
			},
			ID: 1,
		}).
		SetResult(&out).
		Post(config.AppConfig.RPCUrl)
	if err != nil {
		return "", fmt.Errorf("rpc call failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("rpc call failed with status %d", resp.StatusCode())
	}
	if out.Error != nil {
		return "", fmt.Errorf("rpc error %d: %s", out.Error.Code, out.Error.Message)
	}

	return out.Result, nil
}

// decodeWord parses a single 32-byte ABI return word.
func decodeWord(result string) (*big.Int, error) {
	hex := strings.TrimPrefix(result, "0x")
	if hex == "" {
		return nil, fmt.Errorf("empty eth_call result")
	}
	v, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		return nil, fmt.Errorf("malformed eth_call result: %s", result)
	}
	return v, nil
}

// GetContestCount reads contestCount() from the contract.
func GetContestCount() (uint64, error) {
	result, err := ethCall(selector("contestCount()"))
	if err != nil {
		return 0, err
	}
	v, err := decodeWord(result)
	if err != nil {
		return 0, err
	}
	return v.Uint64(), nil
}

// HasParticipated reads hasParticipated(uint256,address).
func HasParticipated(contestID uint64, address string) (bool, error) {
	data := selector("hasParticipated(uint256,address)") + encodeUint256(contestID) + encodeAddress(address)
	result, err := ethCall(data)
	if err != nil {
		return false, err
	}
	v, err := decodeWord(result)
	if err != nil {
		return false, err
	}
	return v.Sign() != 0, nil
}

// GetParticipantScore reads getParticipantScore(uint256,address).
func GetParticipantScore(contestID uint64, address string) (uint64, error) {
	data := selector("getParticipantScore(uint256,address)") + encodeUint256(contestID) + encodeAddress(address)
	result, err := ethCall(data)
	if err != nil {
		return 0, err
	}
	v, err := decodeWord(result)
	if err != nil {
		return 0, err
	}
	return v.Uint64(), nil
}
