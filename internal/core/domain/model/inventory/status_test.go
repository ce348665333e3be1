package inventory_test

import (
	"testing"

	"vehicletrack/internal/core/domain/model/inventory"
	"vehicletrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		reorderLevel int
		want         inventory.Status
	}{
		{"zero quantity is out of stock", 0, 10, inventory.StatusOutOfStock},
		{"quantity below reorder level is low stock", 3, 10, inventory.StatusLowStock},
		{"quantity equal to reorder level is low stock", 10, 10, inventory.StatusLowStock},
		{"quantity above reorder level is in stock", 11, 10, inventory.StatusInStock},
		{"zero reorder level keeps positive stock in stock", 1, 0, inventory.StatusInStock},
		{"zero wins over reorder comparison", 0, 0, inventory.StatusOutOfStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inventory.DeriveStatus(tt.quantity, tt.reorderLevel))
		})
	}
}

func TestStatusFromString(t *testing.T) {
	for _, status := range []inventory.Status{
		inventory.StatusInStock,
		inventory.StatusLowStock,
		inventory.StatusOutOfStock,
	} {
		parsed, err := inventory.StatusFromString(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := inventory.StatusFromString("BACKORDERED")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = inventory.StatusFromString("UNKNOWN")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, inventory.StatusInStock.Validate())
	require.ErrorIs(t, inventory.StatusUnknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, inventory.Status(42).Validate(), errs.ErrValueIsInvalid)
}
