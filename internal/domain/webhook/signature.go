package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

const (
	SignatureHeader = "X-PuntoEnvio-Signature"
	EventHeader     = "X-PuntoEnvio-Event"
)

// Sign computes the delivery signature header value for a serialized payload:
// "sha256=" + hex(HMAC-SHA256(secret, payload)). Subscribers verify by
// recomputing over the raw body.
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature is the subscriber-side check, used in tests and exposed for
// SDK consumers embedding this package.
func VerifySignature(secret string, payload []byte, header string) bool {
	return hmac.Equal([]byte(Sign(secret, payload)), []byte(header))
}
