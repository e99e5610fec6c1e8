package token

import (
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
	"github.com/mikiasgoitom/FoodBridge/internal/usecase"
)

const (
	legacyPrefix    = "token"
	legacySeparator = "_"
)

// LegacyCodec implements the historical unsigned bearer token format
//
//	token_<userId>_<issueEpochMillis>
//
// kept for wire compatibility with existing clients. The token carries no
// signature and no expiry; authenticity rests entirely on the user-store
// lookup performed by the caller. New deployments should prefer JWTService.
type LegacyCodec struct{}

// NewLegacyCodec creates the legacy codec.
func NewLegacyCodec() *LegacyCodec {
	return &LegacyCodec{}
}

// check if LegacyCodec implements usecase.TokenService at compile time
var _ usecase.TokenService = (*LegacyCodec)(nil)

// Issue produces a legacy token for the user.
func (c *LegacyCodec) Issue(user *entity.User) (string, error) {
	issuedAt := time.Now().UnixMilli()
	return fmt.Sprintf("%s%s%s%s%d", legacyPrefix, legacySeparator, user.ID, legacySeparator, issuedAt), nil
}

// Decode extracts the embedded user ID. The token must start with the fixed
// prefix and split into exactly three parts; the timestamp part is not
// validated.
func (c *LegacyCodec) Decode(token string) (string, error) {
	if !strings.HasPrefix(token, legacyPrefix+legacySeparator) {
		return "", entity.ErrInvalidToken
	}
	parts := strings.Split(token, legacySeparator)
	if len(parts) != 3 {
		return "", entity.ErrInvalidToken
	}
	return parts[1], nil
}
