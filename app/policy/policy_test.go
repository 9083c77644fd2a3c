package policy

import (
	"testing"

	jwtutil "authd/app/jwt"

	"github.com/stretchr/testify/require"
)

func claimsWithRole(role string) *jwtutil.Claims {
	return &jwtutil.Claims{UserID: 1, Username: "alice", Role: role}
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	admin := RequireRole("admin")
	require.True(t, admin(claimsWithRole("admin")))
	require.False(t, admin(claimsWithRole("user")))
	require.False(t, admin(claimsWithRole("")))
	require.False(t, admin(claimsWithRole("Admin")))
	require.False(t, admin(nil))
}

func TestAdmin(t *testing.T) {
	t.Parallel()

	require.True(t, Admin()(claimsWithRole("admin")))
	require.False(t, Admin()(claimsWithRole("user")))
}

func TestCombinators(t *testing.T) {
	t.Parallel()

	isAdmin := RequireRole("admin")
	isUser := RequireRole("user")

	ownerOrAdmin := Any(isAdmin, isUser)
	require.True(t, ownerOrAdmin(claimsWithRole("admin")))
	require.True(t, ownerOrAdmin(claimsWithRole("user")))
	require.False(t, ownerOrAdmin(claimsWithRole("guest")))
	require.False(t, Any()(claimsWithRole("admin")))

	both := All(isAdmin, isUser)
	require.False(t, both(claimsWithRole("admin")))
	require.True(t, All(isAdmin)(claimsWithRole("admin")))
	require.True(t, All()(claimsWithRole("guest")))
}
