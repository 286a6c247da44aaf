package models

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	ScopeShare = "share"
	ScopeAdmin = "admin"
)

const tokenIssuer = "palette-studio"

type JWTClaims struct {
	PaletteID string `json:"paletteId,omitempty"`
	Scope     string `json:"scope"`
	jwt.RegisteredClaims
}

// NewShareToken signs a read-only link to a saved palette.
func NewShareToken(paletteID string, secret string, duration time.Duration) (string, time.Time, error) {
	return signToken(JWTClaims{PaletteID: paletteID, Scope: ScopeShare}, paletteID, secret, duration)
}

// NewAdminToken signs a bearer token accepted by admin endpoints.
func NewAdminToken(subject string, secret string, duration time.Duration) (string, time.Time, error) {
	return signToken(JWTClaims{Scope: ScopeAdmin}, subject, secret, duration)
}

func signToken(claims JWTClaims, subject string, secret string, duration time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiry := now.Add(duration)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiry),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("error signing %s token: %w", claims.Scope, err)
	}
	return signed, expiry, nil
}

func ValidateJWTToken(tokenString string, secret string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer))

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// ValidateScopedToken validates tokenString and requires the given scope.
func ValidateScopedToken(tokenString string, secret string, scope string) (*JWTClaims, error) {
	claims, err := ValidateJWTToken(tokenString, secret)
	if err != nil {
		return nil, err
	}
	if claims.Scope != scope {
		return nil, fmt.Errorf("token scope %q does not grant %q", claims.Scope, scope)
	}
	return claims, nil
}
