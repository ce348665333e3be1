package inventory_test

import (
	"testing"
	"time"

	"vehicletrack/internal/core/domain/model/inventory"
	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T, details inventory.Details) *inventory.InventoryItem {
	t.Helper()

	item, err := inventory.NewItem(kernel.NewUUID(), "P-100", details)
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("status defaults to IN_STOCK without deriving", func(t *testing.T) {
		// Quantity 5 with reorder level 10 would derive LOW_STOCK, but
		// creation skips the derivation.
		item := newTestItem(t, inventory.Details{
			PartName:        "Brake Pad",
			QuantityInStock: 5,
			ReorderLevel:    10,
		})

		assert.Equal(t, inventory.StatusInStock, item.Status())
		assert.Nil(t, item.LastRestocked())
	})

	t.Run("rejects missing part number", func(t *testing.T) {
		_, err := inventory.NewItem(kernel.NewUUID(), "", inventory.Details{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestInventoryItem_UpdateDetails(t *testing.T) {
	t.Run("recomputes status from the new quantity", func(t *testing.T) {
		item := newTestItem(t, inventory.Details{QuantityInStock: 5, ReorderLevel: 10})
		require.Equal(t, inventory.StatusInStock, item.Status())

		// Same quantity, but an explicit update runs the derivation.
		require.NoError(t, item.UpdateDetails(item.Details()))
		assert.Equal(t, inventory.StatusLowStock, item.Status())
	})

	t.Run("zero quantity becomes OUT_OF_STOCK", func(t *testing.T) {
		item := newTestItem(t, inventory.Details{QuantityInStock: 20, ReorderLevel: 10})

		details := item.Details()
		details.QuantityInStock = 0
		require.NoError(t, item.UpdateDetails(details))

		assert.Equal(t, inventory.StatusOutOfStock, item.Status())
	})

	t.Run("part number is not touched by update", func(t *testing.T) {
		item := newTestItem(t, inventory.Details{QuantityInStock: 1})

		require.NoError(t, item.UpdateDetails(inventory.Details{PartName: "Oil Filter"}))
		assert.Equal(t, "P-100", item.PartNumber())
	})
}

func TestInventoryItem_AdjustStock(t *testing.T) {
	t.Run("positive delta stamps lastRestocked", func(t *testing.T) {
		item := newTestItem(t, inventory.Details{QuantityInStock: 5, ReorderLevel: 3})
		before := time.Now()

		require.NoError(t, item.AdjustStock(10))

		assert.Equal(t, 15, item.QuantityInStock())
		assert.Equal(t, inventory.StatusInStock, item.Status())
		require.NotNil(t, item.LastRestocked())
		assert.False(t, item.LastRestocked().Before(before))
	})

	t.Run("negative delta leaves lastRestocked alone", func(t *testing.T) {
		item := newTestItem(t, inventory.Details{QuantityInStock: 15, ReorderLevel: 10})

		require.NoError(t, item.AdjustStock(-10))

		assert.Equal(t, 5, item.QuantityInStock())
		assert.Equal(t, inventory.StatusLowStock, item.Status())
		assert.Nil(t, item.LastRestocked())
	})

	t.Run("zero delta does not stamp lastRestocked", func(t *testing.T) {
		item := newTestItem(t, inventory.Details{QuantityInStock: 15, ReorderLevel: 10})

		require.NoError(t, item.AdjustStock(0))
		assert.Nil(t, item.LastRestocked())
	})

	t.Run("unchecked arithmetic allows a negative result", func(t *testing.T) {
		item := newTestItem(t, inventory.Details{QuantityInStock: 3, ReorderLevel: 10})

		require.NoError(t, item.AdjustStock(-5))

		// A negative quantity is not zero, so it derives LOW_STOCK rather
		// than OUT_OF_STOCK.
		assert.Equal(t, -2, item.QuantityInStock())
		assert.Equal(t, inventory.StatusLowStock, item.Status())
	})

	t.Run("draining to zero derives OUT_OF_STOCK", func(t *testing.T) {
		item := newTestItem(t, inventory.Details{QuantityInStock: 4, ReorderLevel: 2})

		require.NoError(t, item.AdjustStock(-4))
		assert.Equal(t, inventory.StatusOutOfStock, item.Status())
	})
}

func TestInventoryItem_Validate(t *testing.T) {
	require.NoError(t, newTestItem(t, inventory.Details{}).Validate())

	var item inventory.InventoryItem
	require.ErrorIs(t, item.Validate(), inventory.ErrItemIsNotConstructed)
}

func TestRestoreItem(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	restockedAt := time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC)

	item, err := inventory.RestoreItem(
		kernel.NewUUID(),
		"P-200",
		inventory.Details{PartName: "Spark Plug", QuantityInStock: 2, ReorderLevel: 5},
		inventory.StatusLowStock,
		&restockedAt,
		createdAt, restockedAt,
	)
	require.NoError(t, err)

	assert.Equal(t, inventory.StatusLowStock, item.Status())
	assert.Equal(t, createdAt, item.CreatedAt())
	require.NotNil(t, item.LastRestocked())
	assert.Equal(t, restockedAt, *item.LastRestocked())
}
