package utils

import (
	"math/rand"
)

// GenerateNonce generates a 32-character hex nonce for wallet login
func GenerateNonce() string {
	const hexChars = "0123456789abcdef"
	nonce := make([]byte, 32)
	for i := range nonce {
		nonce[i] = hexChars[rand.Intn(len(hexChars))]
	}
	return string(nonce)
}
