package auth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const emailContextKey contextKey = "accessEmail"

// Middleware rejects requests that carry no Cloudflare Access identity and
// stores the normalized caller email on the request context. With a
// non-empty assertionSecret the JWT assertion header is required and
// validated; otherwise the plain email header is trusted (header lookup is
// case-insensitive, so both historical spellings are accepted).
func Middleware(assertionSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var email string
			if assertionSecret != "" {
				assertion := r.Header.Get(AssertionHeader)
				if assertion == "" {
					missingIdentity(w)
					return
				}
				claims, err := ValidateAssertion(assertionSecret, assertion)
				if err != nil {
					missingIdentity(w)
					return
				}
				email = claims.Email
			} else {
				email = r.Header.Get(EmailHeader)
			}
			if strings.TrimSpace(email) == "" {
				missingIdentity(w)
				return
			}
			ctx := context.WithValue(r.Context(), emailContextKey, NormalizeEmail(email))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetEmail returns the normalized caller email set by Middleware, or ""
// outside of it.
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(emailContextKey).(string)
	return email
}

func missingIdentity(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"Missing Cloudflare Access identity."}`))
}
