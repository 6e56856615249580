package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"gardenbook/infrastructure/config"
	"gardenbook/pkg/common"

	"github.com/golang-jwt/jwt/v5"
)

// Authenticate creates an authentication middleware that resolves the caller
// identity for every request. Ownership checks downstream rely on the caller
// ID placed in the request context here.
func Authenticate(cfg *config.Config) func(next http.Handler) http.Handler {
	// In Lambda, the API Gateway JWT authorizer has already validated the
	// token; the caller identity arrives in headers.
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		return authenticateFromGateway()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondUnauthorized(w, "Missing authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				respondUnauthorized(w, "Invalid authorization header format")
				return
			}

			callerID, err := validateToken(parts[1], cfg)
			if err != nil {
				respondUnauthorized(w, "Invalid token")
				return
			}

			ctx := common.WithCallerID(r.Context(), callerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// authenticateFromGateway trusts the identity headers set by the API Gateway
// JWT authorizer
func authenticateFromGateway() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			callerID := r.Header.Get("X-User-ID")
			if callerID == "" {
				respondUnauthorized(w, "Missing user context from API Gateway")
				return
			}

			ctx := common.WithCallerID(r.Context(), callerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// validateToken parses and verifies an HS256 JWT and returns its subject
func validateToken(tokenString string, cfg *config.Config) (string, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"HS256"}),
	}
	if cfg.JWTIssuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(cfg.JWTIssuer))
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, parserOpts...)
	if err != nil {
		return "", err
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("token has no subject claim")
	}

	return subject, nil
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", message)
}
