package auth

import (
	"errors"
	"time"

	"artizia_backend/internal/config"
	"artizia_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carried by every bearer token. The registered ID (jti) doubles as
// the key of the AccessToken row, which is what logout deletes.
type Claims struct {
	UserID string          `json:"user_id"`
	Role   models.RoleName `json:"role"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

// GenerateToken signs a new bearer token for the user. Returns the token
// string, its jti, and its expiry; the caller persists the jti so the token
// can be revoked.
func GenerateToken(userID string, role models.RoleName) (token string, tokenID string, expiresAt time.Time, err error) {
	cfg := config.GetConfig()

	tokenID = uuid.NewString()
	expiresAt = time.Now().Add(time.Duration(cfg.JWT.TTL) * time.Minute)

	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = t.SignedString([]byte(cfg.JWT.Secret))
	return token, tokenID, expiresAt, err
}

// ParseToken validates the signature and expiry and returns the claims.
// Revocation is checked separately against the access_tokens table.
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
