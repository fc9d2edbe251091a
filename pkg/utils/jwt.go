package utils

import (
	"time"

	"github.com/abdulbasset-benz/misskitty-api/pkg/errs"
	"github.com/golang-jwt/jwt"
)

func CreateJWTToken(adminID int64, email string, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["adminID"] = adminID
	claims["email"] = email
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(jwtSecretKey))
}

// ParseJWTToken verifies the signature and expiry and returns the admin id
// the token was issued for.
func ParseJWTToken(tokenString string, jwtSecretKey string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrNotLoggedIn
		}
		return []byte(jwtSecretKey), nil
	})
	if err != nil {
		if vErr, ok := err.(*jwt.ValidationError); ok && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return 0, errs.ErrExpiredToken
		}
		return 0, errs.ErrNotLoggedIn
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, errs.ErrNotLoggedIn
	}

	adminID, ok := claims["adminID"].(float64)
	if !ok {
		return 0, errs.ErrNotLoggedIn
	}

	return int64(adminID), nil
}
