package cookie

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/cookiejar/pkg/logger"
)

// Plugin holds the process-wide cookie configuration: the key ring and the
// default attributes applied to every write. It is immutable once created
// and safe for concurrent use; every request gets its own RequestJar.
type Plugin struct {
	ring     *KeyRing
	defaults Options
	logger   *slog.Logger
}

// PluginOption configures the Plugin itself (not individual cookies).
type PluginOption func(*Plugin)

// WithLogger sets the logger used for recoverable failures such as malformed
// Cookie headers. Defaults to a logger that discards output.
func WithLogger(l *slog.Logger) PluginOption {
	return func(p *Plugin) {
		if l != nil {
			p.logger = l.With(logger.Component("cookie"))
		}
	}
}

// New creates a plugin with secrets ordered newest first and default cookie
// options. Secrets may be empty: plain cookies work without them, while
// signing and verification return ErrNoSecret.
// Defaults start from Path "/" and are overridden by opts.
func New(secrets []string, opts ...Option) *Plugin {
	return &Plugin{
		ring:     NewKeyRing(secrets...),
		defaults: applyOptions(Options{Path: "/"}, opts),
		logger:   logger.Discard(),
	}
}

// NewWithOptions creates a plugin with additional plugin options.
func NewWithOptions(secrets []string, cookieOpts []Option, pluginOpts ...PluginOption) *Plugin {
	p := New(secrets, cookieOpts...)
	for _, opt := range pluginOpts {
		opt(p)
	}
	return p
}

// KeyRing returns the plugin key ring.
func (p *Plugin) KeyRing() *KeyRing {
	return p.ring
}

// Defaults returns the default cookie options.
func (p *Plugin) Defaults() Options {
	return p.defaults
}

// Jar creates a jar for one request. Nothing is parsed until the jar is first used.
// Set-Cookie values are written to w's header map.
func (p *Plugin) Jar(w http.ResponseWriter, r *http.Request) *RequestJar {
	var h http.Header
	if w != nil {
		h = w.Header()
	}
	return &RequestJar{
		store:  newStore(r, h, p.ring, p.defaults, p.logger),
		plugin: p,
	}
}

// UnsignCookie verifies token against every configured secret.
// A forged or tampered token is a normal outcome reported as
// UnsignResult{Valid: false}; the only error is ErrNoSecret.
func (p *Plugin) UnsignCookie(token string) (UnsignResult, error) {
	value, err := p.ring.Verify(token)
	switch {
	case err == nil:
		return UnsignResult{Valid: true, Value: value}, nil
	case errors.Is(err, ErrInvalidSignature):
		p.logger.Debug("cookie signature rejected", logger.Error(err))
		return UnsignResult{}, nil
	default:
		return UnsignResult{}, err
	}
}
