package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims carries the identity baked into a session token. The token is
// the only session state; there is no server-side revocation list.
type SessionClaims struct {
	UserID   string
	Username string
	IsAdmin  bool
}

// GenerateSessionToken mints a signed session token for a user
func GenerateSessionToken(claims SessionClaims, secret string, lifetime time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      claims.UserID,
		"username": claims.Username,
		"is_admin": claims.IsAdmin,
		"exp":      time.Now().Add(lifetime).Unix(),
	})

	return token.SignedString([]byte(secret))
}

// ValidateSessionToken parses a session token and returns the identity it carries
func ValidateSessionToken(tokenString, secret string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	userID, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	isAdmin, _ := claims["is_admin"].(bool)
	if userID == "" {
		return nil, errors.New("invalid token claims")
	}

	return &SessionClaims{
		UserID:   userID,
		Username: username,
		IsAdmin:  isAdmin,
	}, nil
}

// GenerateRandomString generates a random URL-safe string of the specified byte length
func GenerateRandomString(length int) (string, error) {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}

	return base64.URLEncoding.EncodeToString(b), nil
}
