package cookie_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiejar/pkg/cookie"
)

func TestPlugin_UnsignCookie(t *testing.T) {
	t.Parallel()

	p := cookie.New([]string{"new", "old"})

	tests := []struct {
		name  string
		token string
		want  cookie.UnsignResult
	}{
		{"newest secret", cookie.Sign("bob", "new"), cookie.UnsignResult{Valid: true, Value: "bob"}},
		{"rotated secret", cookie.Sign("bob", "old"), cookie.UnsignResult{Valid: true, Value: "bob"}},
		{"unknown secret", cookie.Sign("bob", "other"), cookie.UnsignResult{}},
		{"not signed", "bob", cookie.UnsignResult{}},
		{"empty", "", cookie.UnsignResult{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := p.UnsignCookie(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlugin_UnsignCookieWithoutSecret(t *testing.T) {
	t.Parallel()

	_, err := cookie.New([]string{""}).UnsignCookie(cookie.Sign("bob", "abc"))
	assert.ErrorIs(t, err, cookie.ErrNoSecret)
}

func TestPlugin_LogsMalformedHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := cookie.NewWithOptions(nil, nil, cookie.WithLogger(log))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Cookie", "garbage; session=abc")

	jar := p.Jar(httptest.NewRecorder(), req)
	assert.Equal(t, []string{"session"}, jar.Names())
	assert.Contains(t, buf.String(), "skipping malformed cookie pair")
	assert.Contains(t, buf.String(), "component=cookie")
}

func TestPlugin_ConcurrentRequests(t *testing.T) {
	t.Parallel()

	p := cookie.New([]string{"abc"})
	h := p.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jar := cookie.MustFromContext(r.Context())
		name, _ := jar.Get("id")
		_ = jar.SetSigned("id", name)
	}))

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			id := string(rune('a' + i%26))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Cookie", "id="+id)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, []string{"id=" + cookie.Sign(id, "abc") + "; Path=/"}, rec.Header().Values("Set-Cookie"))
		}()
	}
	wg.Wait()
}

func TestContextHelpers(t *testing.T) {
	t.Parallel()

	t.Run("missing jar", func(t *testing.T) {
		t.Parallel()

		_, ok := cookie.FromContext(context.Background())
		assert.False(t, ok)

		_, err := cookie.UnsignCookie(context.Background(), "bob.sig")
		assert.ErrorIs(t, err, cookie.ErrNoJar)

		assert.Panics(t, func() { cookie.MustFromContext(context.Background()) })
	})

	t.Run("stored jar", func(t *testing.T) {
		t.Parallel()

		jar := cookie.New(nil).Jar(nil, httptest.NewRequest(http.MethodGet, "/", nil))
		ctx := cookie.WithContext(context.Background(), jar)

		got, ok := cookie.FromContext(ctx)
		require.True(t, ok)
		assert.Same(t, jar, got)

		_, err := cookie.UnsignCookie(ctx, "bob.sig")
		assert.ErrorIs(t, err, cookie.ErrNoSecret)
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("default config", func(t *testing.T) {
		t.Parallel()

		p := cookie.NewFromConfig(cookie.DefaultConfig())
		assert.Zero(t, p.KeyRing().Len())
		assert.Equal(t, cookie.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode}, p.Defaults())
	})

	t.Run("secrets are split and trimmed", func(t *testing.T) {
		t.Parallel()

		cfg := cookie.DefaultConfig()
		cfg.Secrets = " new , ,old"
		p := cookie.NewFromConfig(cfg)

		assert.Equal(t, 2, p.KeyRing().Len())
		secret, _ := p.KeyRing().SigningSecret()
		assert.Equal(t, "new", secret)
	})

	t.Run("attributes", func(t *testing.T) {
		t.Parallel()

		p := cookie.NewFromConfig(cookie.Config{
			Path:        "/app",
			Domain:      "example.com",
			MaxAge:      3600,
			Secure:      true,
			SameSite:    http.SameSiteStrictMode,
			Partitioned: true,
		})

		assert.Equal(t, cookie.Options{
			Path:        "/app",
			Domain:      "example.com",
			MaxAge:      3600,
			Secure:      true,
			SameSite:    http.SameSiteStrictMode,
			Partitioned: true,
		}, p.Defaults())
	})
}

func TestConfig_FromEnv(t *testing.T) {
	t.Setenv("COOKIE_SECRETS", "new,old")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("COOKIE_SAME_SITE", "3")

	var cfg cookie.Config
	require.NoError(t, env.Parse(&cfg))

	assert.Equal(t, "new,old", cfg.Secrets)
	assert.Equal(t, "/", cfg.Path)
	assert.True(t, cfg.Secure)
	assert.True(t, cfg.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cfg.SameSite)

	p := cookie.NewFromConfig(cfg)
	assert.Equal(t, 2, p.KeyRing().Len())
}
