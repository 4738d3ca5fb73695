package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"

	"cookbook/globals"
)

// JWT claims
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

var errNoToken = errors.New("missing bearer token")

// ValidateJWT parses an "Authorization: Bearer <token>" header value signed
// HS256 with secret.
func ValidateJWT(secret []byte, header string) (*Claims, error) {
	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		return nil, errNoToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// OptionalAuth puts the caller's user id in the request context when a valid
// bearer token is present. Requests are never rejected. An empty secret
// disables token parsing.
func OptionalAuth(secret []byte) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			if len(secret) > 0 {
				if claims, err := ValidateJWT(secret, r.Header.Get("Authorization")); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), globals.UserIDKey, claims.UserID))
				}
			}
			// Proceed regardless of token state
			next(w, r, ps)
		}
	}
}
