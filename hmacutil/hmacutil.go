package hmacutil

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Compute returns lowercase hex of HMAC-SHA256(message) keyed with secret.
func Compute(message string, secret []byte) string {
	h := hmac.New(sha256.New, secret)
	h.Write([]byte(message))
	return hex.EncodeToString(h.Sum(nil))
}
