// File: internal/middleware/recovery.go

package middleware

import (
	"encoding/json"
	"log"
	"net/http"
)

// RecoverPanic converts handler panics into a generic 500 response instead
// of tearing down the connection with no reply.
func RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("[PANIC] %v", err)

				w.Header().Set("Connection", "close")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "Something went wrong on our end."})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
