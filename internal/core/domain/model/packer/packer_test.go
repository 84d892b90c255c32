package packer_test

import (
	"testing"

	"packnow/internal/core/domain/model/kernel"
	"packnow/internal/core/domain/model/material"
	"packnow/internal/core/domain/model/packer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T) kernel.GeoPoint {
	t.Helper()
	location, err := kernel.NewGeoPoint(19.076, 72.8777)
	require.NoError(t, err)
	return location
}

func startingInventory() packer.Inventory {
	return packer.Inventory{
		material.BubbleWrap:         100,
		material.PackingTape:        50,
		material.CardboardBoxMedium: 20,
	}
}

func newTestPacker(t *testing.T) *packer.Packer {
	t.Helper()
	p, err := packer.NewPacker(kernel.NewUUID(), "Asha", mustLocation(t), startingInventory(), 4.5)
	require.NoError(t, err)
	return p
}

func TestPacker_NewPacker(t *testing.T) {
	t.Run("should create packer with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := packer.NewPacker(id, "Asha", mustLocation(t), startingInventory(), 4.5)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, id, p.ID())
		assert.Equal(t, "Asha", p.Name())
		assert.True(t, p.IsAvailable())
		assert.InDelta(t, 4.5, p.Rating(), 1e-9)
		assert.Equal(t, 100, p.Inventory()[material.BubbleWrap])
	})

	t.Run("should reject invalid parameters", func(t *testing.T) {
		location := mustLocation(t)

		testCases := []struct {
			name string
			make func() (*packer.Packer, error)
		}{
			{"empty UUID", func() (*packer.Packer, error) {
				return packer.NewPacker(kernel.UUID{}, "Asha", location, startingInventory(), 4.5)
			}},
			{"empty name", func() (*packer.Packer, error) {
				return packer.NewPacker(kernel.NewUUID(), "", location, startingInventory(), 4.5)
			}},
			{"unconstructed location", func() (*packer.Packer, error) {
				return packer.NewPacker(kernel.NewUUID(), "Asha", kernel.GeoPoint{}, startingInventory(), 4.5)
			}},
			{"nil inventory", func() (*packer.Packer, error) {
				return packer.NewPacker(kernel.NewUUID(), "Asha", location, nil, 4.5)
			}},
			{"rating below range", func() (*packer.Packer, error) {
				return packer.NewPacker(kernel.NewUUID(), "Asha", location, startingInventory(), -0.1)
			}},
			{"rating above range", func() (*packer.Packer, error) {
				return packer.NewPacker(kernel.NewUUID(), "Asha", location, startingInventory(), 5.1)
			}},
		}

		for _, tc := range testCases {
			t.Run("should reject "+tc.name, func(t *testing.T) {
				p, err := tc.make()

				require.Error(t, err)
				assert.Nil(t, p)
			})
		}
	})

	t.Run("should accept boundary ratings", func(t *testing.T) {
		_, err := packer.NewPacker(kernel.NewUUID(), "Asha", mustLocation(t), startingInventory(), 0)
		require.NoError(t, err)

		_, err = packer.NewPacker(kernel.NewUUID(), "Asha", mustLocation(t), startingInventory(), 5)
		require.NoError(t, err)
	})

	t.Run("should copy the starting inventory", func(t *testing.T) {
		inventory := startingInventory()
		p, err := packer.NewPacker(kernel.NewUUID(), "Asha", mustLocation(t), inventory, 4.5)
		require.NoError(t, err)

		inventory[material.BubbleWrap] = 0

		assert.Equal(t, 100, p.Inventory()[material.BubbleWrap])
	})
}

func TestPacker_RestorePacker(t *testing.T) {
	t.Run("should restore an unavailable packer", func(t *testing.T) {
		p, err := packer.RestorePacker(
			kernel.NewUUID(), "Asha", mustLocation(t), startingInventory(), false, 4.5)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.False(t, p.IsAvailable())
	})
}

func TestPacker_Validate(t *testing.T) {
	t.Run("should reject nil packer", func(t *testing.T) {
		var p *packer.Packer

		assert.ErrorIs(t, p.Validate(), packer.ErrPackerIsNotConstructed)
	})

	t.Run("should reject directly instantiated packer", func(t *testing.T) {
		p := &packer.Packer{}

		assert.ErrorIs(t, p.Validate(), packer.ErrPackerIsNotConstructed)
	})
}

func TestPacker_Availability(t *testing.T) {
	t.Run("should toggle availability", func(t *testing.T) {
		p := newTestPacker(t)
		require.True(t, p.IsAvailable())

		p.MarkUnavailable()
		assert.False(t, p.IsAvailable())

		p.MarkAvailable()
		assert.True(t, p.IsAvailable())
	})
}

func TestPacker_MoveTo(t *testing.T) {
	t.Run("should update the location", func(t *testing.T) {
		p := newTestPacker(t)
		destination, err := kernel.NewGeoPoint(18.5204, 73.8567)
		require.NoError(t, err)

		require.NoError(t, p.MoveTo(destination))

		moved, err := p.Location().IsEqual(destination)
		require.NoError(t, err)
		assert.True(t, moved)
	})

	t.Run("should reject an unconstructed location", func(t *testing.T) {
		p := newTestPacker(t)

		require.Error(t, p.MoveTo(kernel.GeoPoint{}))
	})
}

func TestPacker_ApplyInventory(t *testing.T) {
	t.Run("should replace the stock", func(t *testing.T) {
		p := newTestPacker(t)
		deducted := p.Inventory().Deduct(material.Requirement{material.BubbleWrap: 2.7})

		require.NoError(t, p.ApplyInventory(deducted))

		assert.Equal(t, 97, p.Inventory()[material.BubbleWrap])
	})

	t.Run("should reject a nil inventory", func(t *testing.T) {
		p := newTestPacker(t)

		require.Error(t, p.ApplyInventory(nil))
	})
}

func TestPacker_Restock(t *testing.T) {
	t.Run("should add stock and insert untracked materials", func(t *testing.T) {
		p := newTestPacker(t)

		err := p.Restock(map[string]int{
			material.BubbleWrap: 50,
			material.FoamSheet:  10,
		})

		require.NoError(t, err)
		assert.Equal(t, 150, p.Inventory()[material.BubbleWrap])
		assert.Equal(t, 10, p.Inventory()[material.FoamSheet])
	})

	t.Run("should reject negative quantities without changing stock", func(t *testing.T) {
		p := newTestPacker(t)

		err := p.Restock(map[string]int{
			material.BubbleWrap: 50,
			material.FoamSheet:  -1,
		})

		require.Error(t, err)
		assert.Equal(t, 100, p.Inventory()[material.BubbleWrap])
	})
}

func TestPacker_IsEqual(t *testing.T) {
	t.Run("should compare packers by ID", func(t *testing.T) {
		packer1 := newTestPacker(t)
		packer2 := newTestPacker(t)

		assert.True(t, packer1.IsEqual(packer1))
		assert.False(t, packer1.IsEqual(packer2))
		assert.False(t, packer1.IsEqual(nil))
	})
}
