package jwt

import (
	"testing"
	"time"

	"github.com/DillonStreator/typedid/domain"
	"github.com/DillonStreator/typedid/entityid"
	jwtgo "github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser() entityid.Identified[domain.User] {
	return entityid.NewIdentified(entityid.New[domain.User](), domain.User{Email: "ada@example.com"})
}

func TestSignVerify(t *testing.T) {
	signer := NewSigner("secret", time.Minute)
	user := newUser()

	token, err := signer.Sign(user)
	require.NoError(t, err)

	claims, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID(), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestVerify(t *testing.T) {
	signer := NewSigner("secret", time.Minute)

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewSigner("other", time.Minute).Sign(newUser())
		require.NoError(t, err)
		_, err = signer.Verify(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := NewSigner("secret", -time.Minute).Sign(newUser())
		require.NoError(t, err)
		_, err = signer.Verify(token)
		assert.ErrorIs(t, err, ErrExpired)
	})

	t.Run("id of another kind", func(t *testing.T) {
		token, err := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, jwtgo.MapClaims{
			"userId": entityid.New[domain.Todo]().String(),
			"exp":    time.Now().Add(time.Minute).Unix(),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = signer.Verify(token)
		assert.Error(t, err)
	})

	t.Run("missing user id", func(t *testing.T) {
		token, err := jwtgo.NewWithClaims(jwtgo.SigningMethodHS256, jwtgo.MapClaims{
			"exp": time.Now().Add(time.Minute).Unix(),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = signer.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
