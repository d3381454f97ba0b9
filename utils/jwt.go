package utils

import (
	"errors"
	"time"

	"shramic/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "shramic-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken creates a signed JWT for a verified owner. The subject is the
// provider-assigned uid; the phone claim carries the canonical phone number.
func GenerateToken(subject, phoneNumber string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"phone": phoneNumber,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractIdentityFromToken returns the uid and phone number claims from a
// valid token string.
func ExtractIdentityFromToken(tokenString string) (uid, phone string, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	uid, ok = claims["sub"].(string)
	if !ok || uid == "" {
		return "", "", errors.New("token does not contain a valid 'sub' claim")
	}
	phone, ok = claims["phone"].(string)
	if !ok || phone == "" {
		return "", "", errors.New("token does not contain a valid 'phone' claim")
	}
	return uid, phone, nil
}
