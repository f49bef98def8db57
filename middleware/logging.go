package middleware

import (
	"log"
	"net"
	"net/http"
	"strings"
	"time"
)

// LoggingMiddleware records every API request with caller identity when
// a JWT has already been validated upstream.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		userID := "-"
		if claims := GetClaims(r); claims != nil {
			userID = claims.UserID
		}
		log.Printf("[API] %s %s user=%s ip=%s took=%s",
			r.Method, r.URL.Path, userID, getClientIP(r), time.Since(start))
	})
}

// Extracts client IP from headers or remote addr
func getClientIP(r *http.Request) string {
	// Priority: X-Forwarded-For → X-Real-IP → RemoteAddr
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return strings.Split(ip, ",")[0]
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
