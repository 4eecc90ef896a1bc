package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	t.Run("Round trip", func(t *testing.T) {
		token, err := manager.GenerateToken("seed", ScopeKnowledgeWrite)
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "seed", claims.ClientID)
		assert.Equal(t, ScopeKnowledgeWrite, claims.Scope)
		assert.Equal(t, "seed", claims.Subject)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token, err := NewJWTManager("other", time.Hour).GenerateToken("seed", ScopeKnowledgeWrite)
		require.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := NewJWTManager("test-secret", -time.Minute).GenerateToken("seed", ScopeKnowledgeWrite)
		require.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := manager.ValidateToken("not-a-token")
		assert.Error(t, err)
	})

	assert.Equal(t, time.Hour, manager.GetTokenDuration())
}
