package utils

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// Canonical messages wallets sign. The server only trusts a wallet address
// after recovering it from one of these.
func LoginMessage(nonce string) string {
	return "OnlyNerds Login: " + nonce
}

func ChallengeMessage(name string) string {
	return "OnlyNerds Challenge: " + name
}

func SubmissionMessage(challengeID string) string {
	return "OnlyNerds Submission: " + challengeID
}

// RecoverSigner recovers the wallet address that produced an EIP-191
// personal_sign signature over message. The returned address is lowercased.
func RecoverSigner(message, signature string) (string, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return "", fmt.Errorf("malformed signature: %w", err)
	}
	if len(sig) != 65 {
		return "", fmt.Errorf("signature must be 65 bytes, got %d", len(sig))
	}

	// personal_sign produces V as 27/28; SigToPub expects 0/1
	if sig[64] >= 27 {
		sig[64] -= 27
	}

	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	hash := crypto.Keccak256([]byte(prefixed))

	pubKey, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return "", fmt.Errorf("failed to recover public key: %w", err)
	}

	return strings.ToLower(crypto.PubkeyToAddress(*pubKey).Hex()), nil
}

// VerifySignature checks that signature over message was produced by address.
func VerifySignature(address, message, signature string) bool {
	signer, err := RecoverSigner(message, signature)
	if err != nil {
		return false
	}
	return signer == strings.ToLower(address)
}

// IsWalletAddress reports whether s looks like a 0x-prefixed EVM address.
func IsWalletAddress(s string) bool {
	if len(s) != 42 || !strings.HasPrefix(s, "0x") {
		return false
	}
	for _, r := range s[2:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
