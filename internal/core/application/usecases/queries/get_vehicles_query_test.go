package queries_test

import (
	"testing"

	"vehicletrack/internal/core/application/usecases/queries"
	"vehicletrack/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewGetVehiclesQuery(t *testing.T) {
	t.Run("accepts empty filter", func(t *testing.T) {
		q, err := queries.NewGetVehiclesQuery(queries.VehiclesFilter{})
		require.NoError(t, err)
		require.NoError(t, q.Validate())
	})

	t.Run("accepts valid status filter", func(t *testing.T) {
		_, err := queries.NewGetVehiclesQuery(queries.VehiclesFilter{Status: "IN_PRODUCTION"})
		require.NoError(t, err)
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		_, err := queries.NewGetVehiclesQuery(queries.VehiclesFilter{Status: "PARKED"})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestGetVehiclesQuery_Validate_NotConstructed(t *testing.T) {
	var q queries.GetVehiclesQuery
	require.ErrorIs(t, q.Validate(), queries.ErrGetVehiclesQueryIsNotConstructed)
}

func TestNewGetProductionOrdersQuery(t *testing.T) {
	t.Run("rejects unknown stage filter", func(t *testing.T) {
		_, err := queries.NewGetProductionOrdersQuery(queries.ProductionOrdersFilter{Stage: "WELDING"})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		_, err := queries.NewGetProductionOrdersQuery(queries.ProductionOrdersFilter{Status: "PAUSED"})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("accepts combined valid filters", func(t *testing.T) {
		q, err := queries.NewGetProductionOrdersQuery(queries.ProductionOrdersFilter{
			Status: "IN_PROGRESS",
			Stage:  "PAINTING",
		})
		require.NoError(t, err)
		require.NoError(t, q.Validate())
	})
}

func TestNewGetPurchaseOrdersQuery_RejectsUnknownStatus(t *testing.T) {
	_, err := queries.NewGetPurchaseOrdersQuery(queries.PurchaseOrdersFilter{Status: "SHIPPED"})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewGetInventoryItemsQuery(t *testing.T) {
	q := queries.NewGetInventoryItemsQuery(queries.InventoryItemsFilter{LowStock: true})
	require.NoError(t, q.Validate())
}
