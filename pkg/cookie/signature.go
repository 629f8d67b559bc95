package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// separator divides the payload from its signature in a signed token.
const separator = "."

// Sign returns value followed by "." and the unpadded base64 HMAC-SHA256 of
// value keyed with secret. The result is deterministic for a given pair.
func Sign(value, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))
	return value + separator + base64.RawStdEncoding.EncodeToString(mac.Sum(nil))
}

// Unsign verifies a token produced by Sign and returns the embedded value.
// The token is split at the last separator, so values may contain dots.
// It returns ErrNoSecret for an empty secret and ErrInvalidSignature when the
// token was not signed with secret. It never panics on arbitrary input.
func Unsign(token, secret string) (string, error) {
	if secret == "" {
		return "", ErrNoSecret
	}

	// A token without separator yields an empty payload and fails the comparison.
	payload := token[:max(strings.LastIndex(token, separator), 0)]

	if !hmac.Equal([]byte(token), []byte(Sign(payload, secret))) {
		return "", ErrInvalidSignature
	}

	return payload, nil
}
