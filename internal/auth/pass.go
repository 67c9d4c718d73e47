package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PassClaims represents the JWT claims for a viewing pass, minted after a
// verified viewing-package payment. The pass is held by the client; its
// expiry is the grant expiry.
type PassClaims struct {
	Tier string `json:"tier"`
	jwt.RegisteredClaims
}

// GeneratePass creates a signed viewing pass for the given tier that
// expires at the given time.
func GeneratePass(secret, tier string, expiresAt time.Time) (string, error) {
	jti, err := generateJTI()
	if err != nil {
		return "", fmt.Errorf("generating JTI: %w", err)
	}

	claims := PassClaims{
		Tier: tier,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing pass: %w", err)
	}
	return signed, nil
}

// ValidatePass parses and validates a viewing pass, returning the claims.
// Expired passes fail validation.
func ValidatePass(secret, tokenStr string) (*PassClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &PassClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing pass: %w", err)
	}

	claims, ok := token.Claims.(*PassClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid pass")
	}

	return claims, nil
}
