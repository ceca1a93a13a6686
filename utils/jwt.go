package utils

import (
	"errors"
	"time"

	"sufra/helper"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// GetJWTClaim extracts the email and role claims from the session
// cookie issued after the upstream login.
func GetJWTClaim(c *gin.Context) (email string, role string, err error) {
	JWTToken, err := c.Cookie("Authorization")
	if JWTToken == "" || err != nil {
		return "", "", errors.New("no authorization token available")
	}

	hmacSecret := []byte(helper.GetEnvVariables().JWTSecret)

	token, err := jwt.Parse(JWTToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return hmacSecret, nil
	})
	if err != nil {
		return "", "", errors.New("request unauthorized")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("request unauthorized")
	}

	expirationTime, ok := claims["exp"].(float64)
	if !ok {
		return "", "", errors.New("request unauthorized")
	}
	if time.Now().After(time.Unix(int64(expirationTime), 0)) {
		return "", "", errors.New("request unauthorized")
	}

	email, _ = claims["email"].(string)
	role, _ = claims["role"].(string)
	if email == "" || role == "" {
		return "", "", errors.New("request unauthorized")
	}
	return email, role, nil
}
