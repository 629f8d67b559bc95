package main

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/dmitrymomot/cookiejar/pkg/cookie"
	"github.com/dmitrymomot/cookiejar/pkg/httpserver"
	"github.com/dmitrymomot/cookiejar/pkg/logger"
)

const (
	counterCookie = "counter"
	nameCookie    = "name"
	visitorCookie = "visitor"

	visitorMaxAge = 365 * 24 * 60 * 60
)

func newRouter(plugin *cookie.Plugin, log *slog.Logger) http.Handler {
	h := &handlers{log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(plugin.Middleware)

	r.Get("/", h.counter)
	r.Get("/cookie", h.biscuit)
	r.Get("/sign/{name}", h.signIn)
	r.Get("/sign-out", h.signOut)
	r.With(h.requireCookie(nameCookie)).Get("/auth", h.auth)
	r.Get("/visitor", h.visitor)
	r.Get("/health", httpserver.HealthCheckHandler(log))

	return r
}

type handlers struct {
	log *slog.Logger
}

// counter increments a plain cookie on every visit.
func (h *handlers) counter(w http.ResponseWriter, r *http.Request) {
	jar := cookie.MustFromContext(r.Context())

	count := 1
	if raw, ok := jar.Get(counterCookie); ok {
		if n, err := strconv.Atoi(raw); err == nil {
			count = n + 1
		}
	}

	value := strconv.Itoa(count)
	if err := jar.SetString(counterCookie, value); err != nil {
		h.fail(w, r, err)
		return
	}
	_, _ = w.Write([]byte(value))
}

func (h *handlers) biscuit(w http.ResponseWriter, r *http.Request) {
	if err := cookie.MustFromContext(r.Context()).SetString("biscuit", "tea"); err != nil {
		h.fail(w, r, err)
		return
	}
	_, _ = w.Write([]byte("tea"))
}

func (h *handlers) signIn(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := cookie.MustFromContext(r.Context()).SetSigned(nameCookie, name); err != nil {
		h.fail(w, r, err)
		return
	}
	_, _ = w.Write([]byte(name))
}

func (h *handlers) signOut(w http.ResponseWriter, r *http.Request) {
	cookie.MustFromContext(r.Context()).Remove(nameCookie)
	_, _ = w.Write([]byte("signed out"))
}

// auth answers with the verified signed name.
func (h *handlers) auth(w http.ResponseWriter, r *http.Request) {
	token, _ := cookie.MustFromContext(r.Context()).Get(nameCookie)

	res, err := cookie.UnsignCookie(r.Context(), token)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !res.Valid {
		h.unauthorized(w, r, "invalid signature")
		return
	}
	_, _ = w.Write([]byte(res.Value))
}

// visitor assigns a signed visitor id on the first visit and echoes it on later ones.
func (h *handlers) visitor(w http.ResponseWriter, r *http.Request) {
	jar := cookie.MustFromContext(r.Context())

	id, err := jar.GetSigned(visitorCookie)
	switch {
	case err == nil:
	case errors.Is(err, cookie.ErrCookieNotFound), errors.Is(err, cookie.ErrInvalidSignature):
		id = uuid.NewString()
		if err := jar.SetSigned(visitorCookie, id, cookie.WithMaxAge(visitorMaxAge), cookie.WithHTTPOnly(true)); err != nil {
			h.fail(w, r, err)
			return
		}
		h.log.DebugContext(r.Context(), "visitor id assigned", logger.Cookie(visitorCookie))
	default:
		h.fail(w, r, err)
		return
	}

	_, _ = w.Write([]byte(id))
}

func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "cookie handler failed",
		request(r),
		logger.Status(http.StatusInternalServerError),
		logger.Error(err),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *handlers) unauthorized(w http.ResponseWriter, r *http.Request, reason string) {
	h.log.WarnContext(r.Context(), "request rejected",
		request(r),
		logger.Status(http.StatusUnauthorized),
		slog.String("reason", reason),
	)
	http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}

// request groups the method and path of r for log records.
func request(r *http.Request) slog.Attr {
	return logger.Group("request", logger.Method(r.Method), logger.Path(r.URL.Path))
}

// requireCookie rejects requests that do not carry the named cookie.
func (h *handlers) requireCookie(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cookie.MustFromContext(r.Context()).Has(name) {
				h.unauthorized(w, r, "missing cookie "+name)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
