package auth

import (
	"testing"

	"eventhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTSnapshots_RoundTrip(t *testing.T) {
	snapshots := NewJWTSnapshots("test-secret")

	signed, err := snapshots.Sign(&domain.SessionSnapshot{
		UserID: "42",
		Name:   "Jane Smith",
		Email:  "jane@example.com",
		Role:   domain.RoleOrganizer,
	})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	restored, err := snapshots.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "42", restored.UserID)
	assert.Equal(t, "Jane Smith", restored.Name)
	assert.Equal(t, "jane@example.com", restored.Email)
	assert.Equal(t, domain.RoleOrganizer, restored.Role)
}

func TestJWTSnapshots_Verify(t *testing.T) {
	snapshots := NewJWTSnapshots("test-secret")

	t.Run("garbage input", func(t *testing.T) {
		_, err := snapshots.Verify("not a token")
		assert.Error(t, err)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := snapshots.Verify("")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTSnapshots("different-secret")
		signed, err := other.Sign(&domain.SessionSnapshot{UserID: "42"})
		require.NoError(t, err)

		_, err = snapshots.Verify(signed)
		assert.Error(t, err)
	})

	t.Run("tampered payload", func(t *testing.T) {
		signed, err := snapshots.Sign(&domain.SessionSnapshot{UserID: "42"})
		require.NoError(t, err)

		tampered := signed[:len(signed)-4] + "AAAA"
		_, err = snapshots.Verify(tampered)
		assert.Error(t, err)
	})
}
