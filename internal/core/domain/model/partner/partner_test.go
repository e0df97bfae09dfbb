package partner_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/partner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPartner(t *testing.T) *partner.Partner {
	t.Helper()
	p, err := partner.NewPartner(kernel.NewUUID(), nil)
	require.NoError(t, err)
	return p
}

func TestNewPartner(t *testing.T) {
	t.Run("starts available with zero position", func(t *testing.T) {
		p := newPartner(t)

		assert.True(t, p.IsAvailable())
		assert.Equal(t, float64(0), p.Location().Latitude())
		assert.Equal(t, float64(0), p.Location().Longitude())
		assert.Nil(t, p.UserID())
	})

	t.Run("keeps the optional user link", func(t *testing.T) {
		userID := kernel.NewUUID()
		p, err := partner.NewPartner(kernel.NewUUID(), &userID)

		require.NoError(t, err)
		require.NotNil(t, p.UserID())
		assert.True(t, p.UserID().IsEqual(userID))
	})

	t.Run("rejects invalid id", func(t *testing.T) {
		_, err := partner.NewPartner(kernel.UUID{}, nil)
		require.Error(t, err)
	})
}

func TestPartner_MarkBusy(t *testing.T) {
	p := newPartner(t)

	require.NoError(t, p.MarkBusy())
	assert.False(t, p.IsAvailable())

	// A busy partner cannot be claimed again.
	require.ErrorIs(t, p.MarkBusy(), partner.ErrPartnerUnavailable)
}

func TestPartner_Release(t *testing.T) {
	p := newPartner(t)
	require.NoError(t, p.MarkBusy())

	p.Release()

	assert.True(t, p.IsAvailable())
	require.NoError(t, p.MarkBusy())
}

func TestPartner_ReportLocation(t *testing.T) {
	point, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)

	t.Run("updates position", func(t *testing.T) {
		p := newPartner(t)

		require.NoError(t, p.ReportLocation(point, false))

		assert.True(t, p.Location().IsEqual(point))
	})

	t.Run("heartbeat flips a busy partner back to available when policy is on", func(t *testing.T) {
		p := newPartner(t)
		require.NoError(t, p.MarkBusy())

		require.NoError(t, p.ReportLocation(point, true))

		assert.True(t, p.IsAvailable())
	})

	t.Run("position-only report keeps the partner busy", func(t *testing.T) {
		p := newPartner(t)
		require.NoError(t, p.MarkBusy())

		require.NoError(t, p.ReportLocation(point, false))

		assert.False(t, p.IsAvailable())
	})

	t.Run("rejects an unconstructed point", func(t *testing.T) {
		p := newPartner(t)
		require.Error(t, p.ReportLocation(kernel.GeoPoint{}, true))
	})
}

func TestRestorePartner(t *testing.T) {
	point, err := kernel.NewGeoPoint(1, 2)
	require.NoError(t, err)
	id := kernel.NewUUID()

	p, err := partner.RestorePartner(id, nil, point, false, 7)

	require.NoError(t, err)
	assert.True(t, p.ID().IsEqual(id))
	assert.False(t, p.IsAvailable())
	assert.Equal(t, int64(7), p.Version())
}

func TestPartner_Validate(t *testing.T) {
	var p partner.Partner
	require.ErrorIs(t, p.Validate(), partner.ErrPartnerIsNotConstructed)

	var nilPartner *partner.Partner
	require.ErrorIs(t, nilPartner.Validate(), partner.ErrPartnerIsNotConstructed)
}
