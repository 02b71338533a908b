package security

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies bearer tokens carrying {id, role}
// claims. The signing key and validity window are fixed at construction
// and immutable for the life of the process.
type TokenService struct {
	auth *jwtauth.JWTAuth
	exp  time.Duration
}

func NewTokenService(secret []byte, exp time.Duration) *TokenService {
	return &TokenService{
		auth: jwtauth.New("HS256", secret, nil),
		exp:  exp,
	}
}

// Auth exposes the underlying verifier for router-level middleware.
func (s *TokenService) Auth() *jwtauth.JWTAuth {
	return s.auth
}

func (s *TokenService) Issue(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":   userID,
		"role": role,
		"exp":  time.Now().Add(s.exp).Unix(),
		"iat":  time.Now().Unix(),
	}
	_, tokenString, err := s.auth.Encode(claims)
	return tokenString, err
}

// Helper functions to extract claims, used by the auth middleware.
func GetUserIDFromClaims(claims map[string]interface{}) (string, error) {
	id, ok := claims["id"].(string)
	if !ok {
		return "", errors.New("id claim is missing or not a string")
	}
	return id, nil
}

func GetUserRoleFromClaims(claims map[string]interface{}) (string, error) {
	role, ok := claims["role"].(string)
	if !ok {
		return "", errors.New("role claim is missing or not a string")
	}
	return role, nil
}
