package middleware

import (
	"net/http"
	"strings"
)

// corsAllowedMethods is the set of methods the tasks API serves.
var corsAllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}

// corsAllowedHeaders covers both auth factors plus content negotiation.
var corsAllowedHeaders = []string{"Accept", "Authorization", "Content-Type", "X-API-Key"}

// CORS returns a middleware that sets CORS response headers and handles OPTIONS preflight
// when origins is non-empty. When origins is empty, the middleware is a no-op (same-origin only).
func CORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	originSet := make(map[string]bool)
	for _, o := range origins {
		originSet[o] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && originSet[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(corsAllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(corsAllowedHeaders, ", "))
				w.Header().Set("Access-Control-Max-Age", "86400")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
