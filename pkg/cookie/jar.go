package cookie

// Jar is the handler-facing view over the cookies of one request.
// Reads never touch the response; writes and removals keep the response
// Set-Cookie header in sync with the jar.
type Jar interface {
	Get(name string) (string, bool)
	Set(name string, v Value) error
	Remove(name string, opts ...Option)
}

var _ Jar = (*RequestJar)(nil)

// RequestJar is the Jar created by a Plugin for a single request.
// It must not be shared between goroutines.
type RequestJar struct {
	store  *store
	plugin *Plugin
}

// UnsignResult reports the outcome of verifying a signed token.
type UnsignResult struct {
	Valid bool
	Value string
}

// Get returns the raw value of the named cookie. Signed cookies are returned
// as their signed token; use GetSigned or Unsign to recover the payload.
func (j *RequestJar) Get(name string) (string, bool) {
	return j.store.get(name)
}

// Set stores v under name and emits a Set-Cookie header for it, replacing
// any header emitted earlier for the same name.
// It returns ErrNoSecret when v is a SignedValue and no secret is configured,
// and ErrInvalidCookie when the cookie cannot be serialized.
func (j *RequestJar) Set(name string, v Value) error {
	return j.store.set(name, v)
}

// Remove deletes the named cookie and tells the client to drop it.
// Removing a cookie that is not in the jar does nothing.
// WithPath and WithDomain are echoed in the clearing header; other options are ignored.
func (j *RequestJar) Remove(name string, opts ...Option) {
	j.store.remove(name, opts)
}

// Has reports whether the jar holds the named cookie.
func (j *RequestJar) Has(name string) bool {
	_, ok := j.store.get(name)
	return ok
}

// Names returns the current cookie names: request cookies in header order,
// followed by cookies added during the request.
func (j *RequestJar) Names() []string {
	return j.store.names()
}

// Len returns the number of cookies in the jar.
func (j *RequestJar) Len() int {
	return len(j.store.names())
}

// SetString stores a plain value. With options, they override the plugin
// defaults for this write.
func (j *RequestJar) SetString(name, value string, opts ...Option) error {
	if len(opts) == 0 {
		return j.Set(name, PlainValue(value))
	}
	return j.Set(name, AttributedValue{Value: value, Options: opts})
}

// SetSigned signs value with the newest secret and stores the token.
func (j *RequestJar) SetSigned(name, value string, opts ...Option) error {
	return j.Set(name, SignedValue{Value: value, Options: opts})
}

// GetSigned returns the verified payload of a signed cookie.
// It returns ErrNoSecret, ErrCookieNotFound or ErrInvalidSignature.
func (j *RequestJar) GetSigned(name string) (string, error) {
	if j.plugin.ring.Len() == 0 {
		return "", ErrNoSecret
	}

	token, ok := j.store.get(name)
	if !ok {
		return "", ErrCookieNotFound
	}

	return j.plugin.ring.Verify(token)
}

// Unsign verifies token against the plugin secrets.
// See Plugin.UnsignCookie.
func (j *RequestJar) Unsign(token string) (UnsignResult, error) {
	return j.plugin.UnsignCookie(token)
}

// Pending returns the Set-Cookie values the jar has emitted, one per
// written or removed name, in first-write order.
func (j *RequestJar) Pending() []string {
	return j.store.pendingValues()
}
