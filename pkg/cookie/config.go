package cookie

import (
	"net/http"
	"strings"
)

// Config provides environment-based configuration for the cookie plugin.
type Config struct {
	// Secrets is a comma-separated list, newest first. The first secret signs,
	// all of them verify.
	Secrets     string        `env:"COOKIE_SECRETS" envDefault:""`
	Path        string        `env:"COOKIE_PATH" envDefault:"/"`
	Domain      string        `env:"COOKIE_DOMAIN" envDefault:""`
	MaxAge      int           `env:"COOKIE_MAX_AGE" envDefault:"0"`
	Secure      bool          `env:"COOKIE_SECURE" envDefault:"false"`
	HttpOnly    bool          `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	SameSite    http.SameSite `env:"COOKIE_SAME_SITE" envDefault:"2"` // SameSiteLaxMode
	Partitioned bool          `env:"COOKIE_PARTITIONED" envDefault:"false"`
}

// DefaultConfig returns a Config with the same defaults as the env tags.
func DefaultConfig() Config {
	return Config{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// parseSecrets splits comma-separated secrets for key rotation support.
// Blank entries are dropped so they can never act as a key.
func (c Config) parseSecrets() []string {
	if c.Secrets == "" {
		return nil
	}

	parts := strings.Split(c.Secrets, ",")
	secrets := make([]string, 0, len(parts))

	for _, s := range parts {
		s = strings.TrimSpace(s)
		if s != "" {
			secrets = append(secrets, s)
		}
	}

	return secrets
}

// cookieOptions converts the non-zero config values to cookie options.
func (c Config) cookieOptions() []Option {
	opts := make([]Option, 0, 7)

	if c.Path != "" {
		opts = append(opts, WithPath(c.Path))
	}
	if c.Domain != "" {
		opts = append(opts, WithDomain(c.Domain))
	}
	if c.MaxAge != 0 {
		opts = append(opts, WithMaxAge(c.MaxAge))
	}
	if c.Secure {
		opts = append(opts, WithSecure(c.Secure))
	}
	if c.HttpOnly {
		opts = append(opts, WithHTTPOnly(c.HttpOnly))
	}
	if c.SameSite != 0 {
		opts = append(opts, WithSameSite(c.SameSite))
	}
	if c.Partitioned {
		opts = append(opts, WithPartitioned(c.Partitioned))
	}

	return opts
}

// NewFromConfig creates a Plugin from configuration.
// Only non-zero config values override the built-in defaults.
func NewFromConfig(cfg Config, opts ...PluginOption) *Plugin {
	return NewWithOptions(cfg.parseSecrets(), cfg.cookieOptions(), opts...)
}
