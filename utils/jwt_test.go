package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeeshan-maqsoood/POS-BACKEND-sub000/entity"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, entity.RoleManager, 3, "Downtown", "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, entity.RoleManager, claims.Role)
	assert.Equal(t, uint(3), claims.BranchID)
	assert.Equal(t, "Downtown", claims.BranchName)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(1, entity.RoleAdmin, 0, "", "secret", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other")
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	token, err := GenerateToken(1, entity.RoleAdmin, 0, "", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	assert.Error(t, err)
}

func TestActorBranchAccess(t *testing.T) {
	admin := Actor{UserID: 1, Role: entity.RoleAdmin}
	assert.True(t, admin.CanAccessBranch(1))
	assert.True(t, admin.CanAccessBranch(99))

	mgr := Actor{UserID: 2, Role: entity.RoleManager, BranchID: 4}
	assert.True(t, mgr.CanAccessBranch(4))
	assert.False(t, mgr.CanAccessBranch(5))
}
