package utils

import (
	"errors"
	"fmt"
	"time"

	"amusicbible-backend/models"

	"github.com/golang-jwt/jwt"
)

// ErrEmptySecret is returned when no signing key is configured.
var ErrEmptySecret = errors.New("jwt secret is empty")

func GenerateJWT(user models.User, secret string, hours int) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour * time.Duration(hours)).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func DecodeJWT(tokenString string, secret string) (jwt.MapClaims, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signature method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid or expired token")
}
