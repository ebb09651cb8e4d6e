package utils

import (
	"crypto/ecdsa"
	"fmt"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signMessage(t *testing.T, key *ecdsa.PrivateKey, message string) string {
	t.Helper()
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	sig, err := crypto.Sign(crypto.Keccak256([]byte(prefixed)), key)
	require.NoError(t, err)
	// wallets report V as 27/28
	sig[64] += 27
	return hexutil.Encode(sig)
}

func TestRecoverSigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	address := strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())

	message := LoginMessage("abc123")
	signature := signMessage(t, key, message)

	recovered, err := RecoverSigner(message, signature)
	require.NoError(t, err)
	assert.Equal(t, address, recovered)
}

func TestRecoverSignerRejectsMalformedSignature(t *testing.T) {
	tests := []struct {
		name      string
		signature string
	}{
		{"not hex", "hello"},
		{"missing prefix", "deadbeef"},
		{"too short", "0xdeadbeef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RecoverSigner("message", tt.signature)
			assert.Error(t, err)
		})
	}
}

func TestVerifySignature(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	address := strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())

	otherKey, err := crypto.GenerateKey()
	require.NoError(t, err)

	message := ChallengeMessage("Solidity Basics")
	signature := signMessage(t, key, message)

	assert.True(t, VerifySignature(address, message, signature))
	// case-insensitive on the claimed address
	assert.True(t, VerifySignature("0x"+strings.ToUpper(address[2:]), message, signature))

	// wrong message
	assert.False(t, VerifySignature(address, ChallengeMessage("Other"), signature))
	// wrong signer
	assert.False(t, VerifySignature(address, message, signMessage(t, otherKey, message)))
}

func TestIsWalletAddress(t *testing.T) {
	assert.True(t, IsWalletAddress("0x"+strings.Repeat("ab", 20)))
	assert.True(t, IsWalletAddress("0x"+strings.Repeat("AB", 20)))
	assert.False(t, IsWalletAddress(strings.Repeat("ab", 21)))
	assert.False(t, IsWalletAddress("0x"+strings.Repeat("zz", 20)))
	assert.False(t, IsWalletAddress("0xabc"))
	assert.False(t, IsWalletAddress(""))
}
