package utils

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

func CalculateChecksum(data []byte) string {
	hash := sha3.Sum224(data)
	return hex.EncodeToString(hash[:])
}
