package cookie_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiejar/pkg/cookie"
)

func TestSignUnsign(t *testing.T) {
	t.Parallel()

	values := []struct {
		name  string
		value string
	}{
		{"simple", "bob"},
		{"empty", ""},
		{"with dots", "a.b.c"},
		{"trailing dot", "bob."},
		{"unicode", "héllo wörld"},
		{"long", strings.Repeat("x", 1024)},
	}

	for _, tt := range values {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			token := cookie.Sign(tt.value, "abc")
			assert.True(t, strings.HasPrefix(token, tt.value+"."))

			got, err := cookie.Unsign(token, "abc")
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestSign_Deterministic(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cookie.Sign("bob", "abc"), cookie.Sign("bob", "abc"))
	assert.NotEqual(t, cookie.Sign("bob", "abc"), cookie.Sign("bob", "abd"))
	assert.NotContains(t, cookie.Sign("bob", "abc"), "=", "padding must be stripped")
}

func TestUnsign_Rejects(t *testing.T) {
	t.Parallel()

	token := cookie.Sign("bob", "abc")

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", token, "other"},
		{"tampered value", "eve" + token[3:], "abc"},
		{"tampered signature", tamper(token), "abc"},
		{"truncated", token[:len(token)-2], "abc"},
		{"no separator", "bob", "abc"},
		{"empty token", "", "abc"},
		{"only separator", ".", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := cookie.Unsign(tt.token, tt.secret)
			assert.ErrorIs(t, err, cookie.ErrInvalidSignature)
			assert.Empty(t, got)
		})
	}
}

func TestUnsign_NoSecret(t *testing.T) {
	t.Parallel()

	_, err := cookie.Unsign(cookie.Sign("bob", ""), "")
	assert.ErrorIs(t, err, cookie.ErrNoSecret)
}

// tamper flips the last character of s.
func tamper(s string) string {
	replacement := "A"
	if strings.HasSuffix(s, replacement) {
		replacement = "B"
	}
	return s[:len(s)-1] + replacement
}
