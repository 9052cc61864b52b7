package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/JohanBenade/schools-pwa-sub000/app/config"
	"github.com/JohanBenade/schools-pwa-sub000/app/models"
)

// Claims is the token payload. Identity is established by the front door;
// this service only verifies the token and reads the coarse role.
type Claims struct {
	StaffID     string           `json:"staff_id"`
	DisplayName string           `json:"display_name"`
	Role        models.StaffRole `json:"role"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "schoolops-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken issues a signed token for a staff member.
func GenerateToken(staffID, displayName string, role models.StaffRole) (string, error) {
	claims := Claims{
		StaffID:     staffID,
		DisplayName: displayName,
		Role:        role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "schoolops",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidateToken parses and verifies a token string.
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrInvalidKey
}
