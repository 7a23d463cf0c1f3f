package util

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/amitxthedev/Zenox-Dev-Apis/models"
)

// CreateAccessToken signs an HS256 token whose subject is the user's id.
// The token is the only authentication mechanism; there is no server-side
// session store, so it cannot be revoked before it expires.
func CreateAccessToken(user *models.User, secret string, expiryHours int) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour * time.Duration(expiryHours))),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// IsAuthorized reports whether the token is well-formed, signed with secret
// and unexpired.
func IsAuthorized(requestToken string, secret string) (bool, error) {
	_, err := parse(requestToken, secret)
	if err != nil {
		return false, err
	}
	return true, nil
}

// ExtractIDFromToken verifies the token and returns the user id it carries.
func ExtractIDFromToken(requestToken string, secret string) (uint, error) {
	token, err := parse(requestToken, secret)
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token subject: %w", err)
	}
	return uint(id), nil
}

func parse(requestToken, secret string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(requestToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
}
