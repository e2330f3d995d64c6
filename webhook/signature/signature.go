package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
)

// HeaderName carries the signature of a delivered body
const HeaderName = "X-KC-Signature"

/* Sign returns base64(HMAC-SHA256(secret, body))
 * This is the format the platform uses when it delivers webhooks, so receivers
 * can validate a test request with the same code path
 */
func Sign(secret string, body []byte) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("secret is required")
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// Verify checks a signature using constant-time comparison
func Verify(secret string, body []byte, sig string) (bool, error) {
	expected, err := base64.StdEncoding.DecodeString(sig)
	if err != nil {
		return false, fmt.Errorf("decoding signature: %w", err)
	}

	calculated, err := Sign(secret, body)
	if err != nil {
		return false, fmt.Errorf("calculating signature: %w", err)
	}
	raw, err := base64.StdEncoding.DecodeString(calculated)
	if err != nil {
		return false, fmt.Errorf("decoding calculated signature: %w", err)
	}

	return subtle.ConstantTimeCompare(expected, raw) == 1, nil
}
