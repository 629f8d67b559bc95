package cookie

import "slices"

// KeyRing holds the ordered secrets used to sign and verify cookie values.
// The first secret signs new values; every secret is tried, in order, when
// verifying, which lets old cookies survive a key rotation.
//
// A KeyRing is immutable after construction and safe for concurrent use.
type KeyRing struct {
	secrets []string
}

// NewKeyRing creates a key ring from secrets ordered newest first.
// Empty secrets are dropped; a ring with no secrets can neither sign nor verify.
func NewKeyRing(secrets ...string) *KeyRing {
	clean := slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	return &KeyRing{secrets: clean}
}

// Len returns the number of configured secrets.
func (k *KeyRing) Len() int {
	return len(k.secrets)
}

// SigningSecret returns the secret used for new signatures.
func (k *KeyRing) SigningSecret() (string, bool) {
	if len(k.secrets) == 0 {
		return "", false
	}
	return k.secrets[0], true
}

// Sign signs value with the newest secret.
func (k *KeyRing) Sign(value string) (string, error) {
	secret, ok := k.SigningSecret()
	if !ok {
		return "", ErrNoSecret
	}
	return Sign(value, secret), nil
}

// Verify returns the payload of token if any configured secret produced it.
// It returns ErrNoSecret when the ring is empty, before any verification is
// attempted, and ErrInvalidSignature when every secret rejects the token.
func (k *KeyRing) Verify(token string) (string, error) {
	if len(k.secrets) == 0 {
		return "", ErrNoSecret
	}

	for _, secret := range k.secrets {
		if value, err := Unsign(token, secret); err == nil {
			return value, nil
		}
	}

	return "", ErrInvalidSignature
}
