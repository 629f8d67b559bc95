package cookie

import "errors"

// Error variables define specific failure scenarios of the cookie jar.
// Verification failures and malformed request headers are not errors for
// handler code: they surface as UnsignResult{Valid: false} and an empty jar.
var (
	// ErrNoSecret indicates signing or verification was attempted without a configured secret.
	ErrNoSecret = errors.New("cookie: secret key must be provided")

	// ErrInvalidSignature indicates the token does not match any configured secret.
	ErrInvalidSignature = errors.New("cookie: signature verification failed")

	// ErrCookieNotFound indicates the requested cookie doesn't exist in the jar.
	ErrCookieNotFound = errors.New("cookie: not found")

	// ErrInvalidCookie indicates the cookie name, value or attributes cannot be serialized.
	ErrInvalidCookie = errors.New("cookie: invalid cookie")

	// ErrNoJar indicates the request context carries no jar, typically because
	// the plugin middleware is not installed for the route.
	ErrNoJar = errors.New("cookie: jar not found in context")
)
