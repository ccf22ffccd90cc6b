package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"runtime/debug"
)

// Recovery converts a handler panic into a JSON 500 response. Unlike the
// stock recovery handler it writes a body, so clients always get the
// structured error shape.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())

				body, _ := json.Marshal(map[string]interface{}{
					"error":   "Internal server error",
					"success": false,
				})
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write(body)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
