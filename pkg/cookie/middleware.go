package cookie

import "net/http"

// Middleware attaches a fresh jar to every request context.
// Handlers reach it with FromContext. Cookie writes must happen before the
// handler writes the response status, as with any response header.
func (p *Plugin) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jar := p.Jar(w, r)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), jar)))
	})
}
