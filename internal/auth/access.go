// Package auth extracts the caller identity that Cloudflare Access stamps
// onto every request it lets through. The gateway never authenticates
// credentials itself.
package auth

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// EmailHeader carries the verified email of the authenticated caller.
const EmailHeader = "Cf-Access-Authenticated-User-Email"

// AssertionHeader carries the signed JWT form of the same identity. It is
// validated instead of the plain header when an assertion secret is
// configured, for deployments where ingress cannot be trusted to strip
// client-supplied identity headers.
const AssertionHeader = "Cf-Access-Jwt-Assertion"

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func ValidateAssertion(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	return claims, nil
}

// NormalizeEmail puts an email into the form used as a lecturer-map and
// admin-list key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
