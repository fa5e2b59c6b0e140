package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

const sessionTTL = 24 * time.Hour

type SessionClaims struct {
	UserID string
	Name   string
	Email  string
	Role   string
}

func CreateJWTToken(userID string, userName string, email string, role string, jwtSecretKey string, jwtKid string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["userID"] = userID
	claims["name"] = userName
	claims["email"] = email
	claims["role"] = role
	claims["exp"] = time.Now().Add(sessionTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token.Header["kid"] = jwtKid

	return token.SignedString([]byte(jwtSecretKey))
}

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token expired")
)

// ParseJWTToken verifies the signature and expiry and returns the session claims.
func ParseJWTToken(tokenString string, jwtSecretKey string) (SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return SessionClaims{}, ErrExpiredToken
		}
		return SessionClaims{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return SessionClaims{}, ErrInvalidToken
	}

	userID, _ := claims["userID"].(string)
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if userID == "" || role == "" {
		return SessionClaims{}, ErrInvalidToken
	}

	return SessionClaims{UserID: userID, Name: name, Email: email, Role: role}, nil
}
