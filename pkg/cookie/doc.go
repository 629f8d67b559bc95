// Package cookie provides a per-request cookie jar for net/http handlers.
// The jar parses the Cookie request header lazily, signs and verifies values
// with rotating secrets, and keeps the Set-Cookie response header in sync with
// every write and removal, so handlers never serialize cookies themselves.
//
// # Basic Usage
//
// Create a plugin once and install its middleware:
//
//	import "github.com/dmitrymomot/cookiejar/pkg/cookie"
//
//	plugin := cookie.New([]string{"newest-secret", "previous-secret"},
//		cookie.WithHTTPOnly(true),
//	)
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//		jar := cookie.MustFromContext(r.Context())
//
//		if _, ok := jar.Get("visited"); !ok {
//			_ = jar.Set("visited", cookie.PlainValue("yes"))
//		}
//	})
//
//	http.ListenAndServe(":8080", plugin.Middleware(mux))
//
// # Values
//
// Writes take one of three values:
//
//	jar.Set("theme", cookie.PlainValue("dark"))                              // plugin defaults
//	jar.Set("lang", cookie.WithAttributes("en", cookie.WithMaxAge(3600)))   // defaults + overrides
//	jar.Set("user", cookie.Signed("bob", cookie.WithSecure(true)))          // signed token
//
// Writing the same name twice in one request leaves a single Set-Cookie
// header carrying the last value. Removing a name emits
// "name=; Expires=Thu, 01 Jan 1970 00:00:00 GMT"; removing a name the jar
// does not hold emits nothing.
//
// # Signed Cookies
//
// Signed values use the format value + "." + base64(HMAC-SHA256). The first
// secret signs; every secret verifies, so secrets can be rotated without
// invalidating existing cookies:
//
//	token, _ := jar.Get("user")
//	res, err := cookie.UnsignCookie(r.Context(), token)
//	if err != nil {
//		// ErrNoSecret: the plugin has no secret
//	}
//	if !res.Valid {
//		// forged or tampered
//	}
//
// Signing or verifying without a secret returns ErrNoSecret at the point of
// use; a plugin without secrets still serves plain cookies.
//
// # Configuration
//
// Config is loaded from the environment (COOKIE_SECRETS is comma-separated):
//
//	var cfg cookie.Config
//	config.MustLoad(&cfg)
//	plugin := cookie.NewFromConfig(cfg, cookie.WithLogger(log))
//
// # Concurrency
//
// A Plugin and its KeyRing are immutable and shared by all requests.
// A RequestJar belongs to one request and must not be used concurrently.
package cookie
