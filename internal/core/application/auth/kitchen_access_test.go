package auth_test

import (
	"testing"

	"canteen/internal/core/application/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantKitchenAccess(t *testing.T) {
	access := auth.GrantKitchenAccess()

	require.NoError(t, access.Validate())
}

func TestKitchenAccess_ZeroValueIsRejected(t *testing.T) {
	var access auth.KitchenAccess

	err := access.Validate()

	require.Error(t, err)
	assert.Equal(t, auth.ErrKitchenAccessIsNotGranted, err)
}
