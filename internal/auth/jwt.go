package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tenantnotes/internal/model"
)

var (
	jwtSecret []byte
	tokenTTL  = time.Hour
)

// SetSecret sets the JWT signing secret (e.g., from config)
func SetSecret(secret string) {
	jwtSecret = []byte(secret)
}

// SetTokenTTL overrides the default 1h token lifetime
func SetTokenTTL(ttl time.Duration) {
	if ttl > 0 {
		tokenTTL = ttl
	}
}

// Claims represents the JWT payload
type Claims struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Role       model.Role `json:"role"`
	TenantSlug string     `json:"tenantSlug"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for the given user
func GenerateToken(u *model.User) (string, error) {
	if len(jwtSecret) == 0 {
		return "", errors.New("JWT secret not set")
	}

	claims := Claims{
		ID:         u.ID.String(),
		Email:      u.Email,
		Role:       u.Role,
		TenantSlug: u.TenantSlug,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidateToken parses and verifies a JWT string
func ValidateToken(tokenStr string) (*Claims, error) {
	if len(jwtSecret) == 0 {
		return nil, errors.New("JWT secret not set")
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	return claims, nil
}
