package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mikiasgoitom/FoodBridge/internal/domain/entity"
	"github.com/mikiasgoitom/FoodBridge/internal/infrastructure/token"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	svc := token.NewJWTService("test-secret", time.Hour)
	user := &entity.User{ID: "1755000000000", Role: entity.UserRoleNGO}

	issued, err := svc.Issue(user)
	assert.NoError(t, err)

	userID, err := svc.Decode(issued)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestJWTServiceRejectsWrongSecret(t *testing.T) {
	issuer := token.NewJWTService("secret-a", time.Hour)
	verifier := token.NewJWTService("secret-b", time.Hour)

	issued, err := issuer.Issue(&entity.User{ID: "1", Role: entity.UserRoleDonor})
	assert.NoError(t, err)

	_, err = verifier.Decode(issued)
	assert.ErrorIs(t, err, entity.ErrInvalidToken)
}

func TestJWTServiceRejectsExpired(t *testing.T) {
	svc := token.NewJWTService("test-secret", -time.Minute)

	issued, err := svc.Issue(&entity.User{ID: "1", Role: entity.UserRoleDonor})
	assert.NoError(t, err)

	_, err = svc.Decode(issued)
	assert.ErrorIs(t, err, entity.ErrInvalidToken)
}

func TestJWTServiceRejectsLegacyToken(t *testing.T) {
	svc := token.NewJWTService("test-secret", time.Hour)

	_, err := svc.Decode("token_1_1700000000000")
	assert.ErrorIs(t, err, entity.ErrInvalidToken)
}
