package auth

import (
	"fmt"
	"net/http"
	"strings"

	apperrors "campusparking/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// AdminAuthMiddleware requires a bearer JWT issued by the auth service
// whose is_user claim is false. The signing secret is injected once at
// wiring time; it is the same value the auth service signs with.
func AdminAuthMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, apperrors.ErrUnauthorized("Unauthorized"))
				return
			}

			claims, err := parseToken(strings.TrimPrefix(header, "Bearer "), jwtSecret)
			if err != nil {
				writeError(w, apperrors.ErrUnauthorized("Unauthorized"))
				return
			}
			if isUser, ok := claims["is_user"].(bool); !ok || isUser {
				writeError(w, apperrors.NewHTTPError(http.StatusForbidden, "Forbidden"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, e *apperrors.HTTPError) {
	http.Error(w, e.Message, e.Code)
}

func parseToken(tokenString, secret string) (jwt.MapClaims, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret not configured")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
