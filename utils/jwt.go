package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTClaims define el payload del token.
type JWTClaims struct {
	UserID uint   `json:"user_id"`
	Rol    string `json:"rol"`
	jwt.RegisteredClaims
}

// GenerateToken crea el JWT cuando el login es exitoso.
func GenerateToken(secret string, userID uint, rol string) (string, error) {
	if secret == "" {
		return "", errors.New("JWT_SECRET no está configurado")
	}

	claims := JWTClaims{
		UserID: userID,
		Rol:    rol,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)), // expira en 24h
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "gamestore-api",
		},
	}

	// Token firmado con HS256
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken valida y parsea el JWT, devuelve los claims.
func VerifyToken(secret, tokenStr string) (*JWTClaims, error) {
	if secret == "" {
		return nil, errors.New("JWT_SECRET no está configurado")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("token no válido o expirado")
}
