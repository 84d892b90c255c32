package services_test

import (
	"testing"

	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/core/domain/model/material"
	"packnow/internal/core/domain/model/packer"
	"packnow/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	point, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return point
}

func mustPacker(t *testing.T, name string, location kernel.GeoPoint, inventory packer.Inventory, rating float64) *packer.Packer {
	t.Helper()
	p, err := packer.NewPacker(kernel.NewUUID(), name, location, inventory, rating)
	require.NoError(t, err)
	return p
}

func wrapAndTape() material.Requirement {
	return material.Requirement{
		material.BubbleWrap:  2,
		material.PackingTape: 1,
	}
}

func fullInventory() packer.Inventory {
	return packer.Inventory{
		material.BubbleWrap:  100,
		material.PackingTape: 50,
	}
}

func TestPackerDispatcher_FindNearestPacker(t *testing.T) {
	dispatcher := services.NewPackerDispatcher(services.DefaultSearchRadiusKm)
	pickup := mustPoint(t, 19.076, 72.8777)

	t.Run("should select the nearest qualifying packer", func(t *testing.T) {
		// roughly 1.1 km and 5.6 km north of the pickup point
		near := mustPacker(t, "near", mustPoint(t, 19.086, 72.8777), fullInventory(), 4.0)
		far := mustPacker(t, "far", mustPoint(t, 19.126, 72.8777), fullInventory(), 5.0)

		selected, distanceKm, err := dispatcher.FindNearestPacker(
			pickup, wrapAndTape(), []*packer.Packer{far, near})

		require.NoError(t, err)
		assert.True(t, selected.IsEqual(near))
		assert.InDelta(t, 1.11, distanceKm, 0.05)
	})

	t.Run("should break distance ties by higher rating", func(t *testing.T) {
		location := mustPoint(t, 19.094, 72.8777)
		lowRated := mustPacker(t, "low", location, fullInventory(), 4.0)
		highRated := mustPacker(t, "high", location, fullInventory(), 4.8)

		selected, _, err := dispatcher.FindNearestPacker(
			pickup, wrapAndTape(), []*packer.Packer{lowRated, highRated})

		require.NoError(t, err)
		assert.True(t, selected.IsEqual(highRated))
	})

	t.Run("should skip unavailable packers", func(t *testing.T) {
		unavailable := mustPacker(t, "busy", mustPoint(t, 19.086, 72.8777), fullInventory(), 5.0)
		unavailable.MarkUnavailable()
		available := mustPacker(t, "free", mustPoint(t, 19.126, 72.8777), fullInventory(), 3.0)

		selected, _, err := dispatcher.FindNearestPacker(
			pickup, wrapAndTape(), []*packer.Packer{unavailable, available})

		require.NoError(t, err)
		assert.True(t, selected.IsEqual(available))
	})

	t.Run("should skip packers with insufficient inventory", func(t *testing.T) {
		short := mustPacker(t, "short", mustPoint(t, 19.086, 72.8777),
			packer.Inventory{material.BubbleWrap: 1}, 5.0)
		stocked := mustPacker(t, "stocked", mustPoint(t, 19.126, 72.8777), fullInventory(), 3.0)

		selected, _, err := dispatcher.FindNearestPacker(
			pickup, wrapAndTape(), []*packer.Packer{short, stocked})

		require.NoError(t, err)
		assert.True(t, selected.IsEqual(stocked))
	})

	t.Run("should skip packers missing a required material entirely", func(t *testing.T) {
		noTape := mustPacker(t, "no-tape", mustPoint(t, 19.086, 72.8777),
			packer.Inventory{material.BubbleWrap: 100}, 5.0)

		_, _, err := dispatcher.FindNearestPacker(
			pickup, wrapAndTape(), []*packer.Packer{noTape})

		require.ErrorIs(t, err, services.ErrPackerNotFound)
	})

	t.Run("should exclude packers beyond the search radius", func(t *testing.T) {
		// Pune is roughly 120 km from Mumbai
		distant := mustPacker(t, "distant", mustPoint(t, 18.5204, 73.8567), fullInventory(), 5.0)

		_, _, err := dispatcher.FindNearestPacker(
			pickup, wrapAndTape(), []*packer.Packer{distant})

		require.ErrorIs(t, err, services.ErrPackerNotFound)
	})

	t.Run("should report not found for an empty candidate pool", func(t *testing.T) {
		_, _, err := dispatcher.FindNearestPacker(pickup, wrapAndTape(), nil)

		require.ErrorIs(t, err, services.ErrPackerNotFound)
	})

	t.Run("should reject an unconstructed pickup point", func(t *testing.T) {
		_, _, err := dispatcher.FindNearestPacker(
			kernel.GeoPoint{}, wrapAndTape(), []*packer.Packer{})

		require.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrPackerNotFound)
	})

	t.Run("should reject an unconstructed candidate", func(t *testing.T) {
		_, _, err := dispatcher.FindNearestPacker(
			pickup, wrapAndTape(), []*packer.Packer{{}})

		require.Error(t, err)
	})

	t.Run("should not mutate candidate inventories", func(t *testing.T) {
		candidate := mustPacker(t, "near", mustPoint(t, 19.086, 72.8777), fullInventory(), 4.0)

		_, _, err := dispatcher.FindNearestPacker(
			pickup, wrapAndTape(), []*packer.Packer{candidate})

		require.NoError(t, err)
		assert.Equal(t, 100, candidate.Inventory()[material.BubbleWrap])
		assert.True(t, candidate.IsAvailable())
	})
}

func TestNewPackerDispatcher(t *testing.T) {
	t.Run("should fall back to the default radius", func(t *testing.T) {
		dispatcher := services.NewPackerDispatcher(0)

		assert.InDelta(t, services.DefaultSearchRadiusKm, dispatcher.SearchRadiusKm(), 1e-9)
	})

	t.Run("should keep a configured radius", func(t *testing.T) {
		dispatcher := services.NewPackerDispatcher(25)

		assert.InDelta(t, 25.0, dispatcher.SearchRadiusKm(), 1e-9)
	})
}
