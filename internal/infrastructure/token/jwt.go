package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
	"github.com/mikiasgoitom/FoodBridge/internal/usecase"
)

// Claims are the signed token claims: subject is the user ID.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues HS256-signed, time-bounded bearer tokens. It is the
// hardened alternative to LegacyCodec, selected with TOKEN_MODE=signed.
type JWTService struct {
	secret []byte
	expiry time.Duration
}

// NewJWTService creates a signed token service.
func NewJWTService(secret string, expiry time.Duration) *JWTService {
	return &JWTService{secret: []byte(secret), expiry: expiry}
}

// check if JWTService implements usecase.TokenService at compile time
var _ usecase.TokenService = (*JWTService)(nil)

// Issue produces a signed token for the user.
func (s *JWTService) Issue(user *entity.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Decode verifies the signature and expiry and returns the subject user ID.
func (s *JWTService) Decode(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return "", entity.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", entity.ErrInvalidToken
	}
	return claims.Subject, nil
}
