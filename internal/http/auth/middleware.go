package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ctxKey int

const claimsKey ctxKey = iota

// Claims carries the tenant scope extracted from a verified bearer
// token. Authentication itself lives in the surrounding identity
// service; this middleware only verifies and decodes.
type Claims struct {
	BusinessID uuid.UUID
	EmployeeID uuid.UUID
}

type tokenClaims struct {
	jwt.RegisteredClaims

	BusinessID string `json:"business_id"`
}

// Middleware verifies the Authorization bearer token and scopes the
// request to the token's business and employee.
func Middleware(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			var tc tokenClaims

			parsed, err := jwt.ParseWithClaims(token, &tc, func(t *jwt.Token) (any, error) {
				return key, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !parsed.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			businessID, err := uuid.Parse(tc.BusinessID)
			if err != nil {
				http.Error(w, "invalid business claim", http.StatusUnauthorized)
				return
			}

			employeeID, err := uuid.Parse(tc.Subject)
			if err != nil {
				http.Error(w, "invalid subject claim", http.StatusUnauthorized)
				return
			}

			claims := Claims{BusinessID: businessID, EmployeeID: employeeID}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
		})
	}
}

// FromContext returns the claims stored by Middleware.
func FromContext(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(Claims)
	return claims, ok
}
