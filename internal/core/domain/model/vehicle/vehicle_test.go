package vehicle_test

import (
	"testing"
	"time"

	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/vehicle"
	"vehicletrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()

	v, err := vehicle.NewVehicle(
		kernel.NewUUID(),
		"1HGCM82633A004352", "Civic", "Honda", 2024, "Black", "Sedan",
		vehicle.StatusUnknown,
		vehicle.Details{},
	)
	require.NoError(t, err)
	return v
}

func TestNewVehicle(t *testing.T) {
	t.Run("defaults status to IN_PRODUCTION", func(t *testing.T) {
		v := newTestVehicle(t)

		assert.Equal(t, vehicle.StatusInProduction, v.Status())
		assert.Equal(t, "1HGCM82633A004352", v.VIN())
		assert.False(t, v.CreatedAt().IsZero())
		assert.Equal(t, v.CreatedAt(), v.UpdatedAt())
	})

	t.Run("keeps explicit status", func(t *testing.T) {
		v, err := vehicle.NewVehicle(
			kernel.NewUUID(),
			"VIN-1", "Model S", "Tesla", 2023, "Red", "Sedan",
			vehicle.StatusQualityCheck,
			vehicle.Details{EngineType: "Electric", Price: 79990},
		)
		require.NoError(t, err)

		assert.Equal(t, vehicle.StatusQualityCheck, v.Status())
		assert.Equal(t, "Electric", v.Details().EngineType)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		tests := []struct {
			name string
			fn   func() (*vehicle.Vehicle, error)
		}{
			{"vin", func() (*vehicle.Vehicle, error) {
				return vehicle.NewVehicle(kernel.NewUUID(), "", "Civic", "Honda", 2024, "Black", "Sedan", vehicle.StatusUnknown, vehicle.Details{})
			}},
			{"model", func() (*vehicle.Vehicle, error) {
				return vehicle.NewVehicle(kernel.NewUUID(), "VIN-1", "", "Honda", 2024, "Black", "Sedan", vehicle.StatusUnknown, vehicle.Details{})
			}},
			{"make", func() (*vehicle.Vehicle, error) {
				return vehicle.NewVehicle(kernel.NewUUID(), "VIN-1", "Civic", "", 2024, "Black", "Sedan", vehicle.StatusUnknown, vehicle.Details{})
			}},
			{"year", func() (*vehicle.Vehicle, error) {
				return vehicle.NewVehicle(kernel.NewUUID(), "VIN-1", "Civic", "Honda", 0, "Black", "Sedan", vehicle.StatusUnknown, vehicle.Details{})
			}},
			{"color", func() (*vehicle.Vehicle, error) {
				return vehicle.NewVehicle(kernel.NewUUID(), "VIN-1", "Civic", "Honda", 2024, "", "Sedan", vehicle.StatusUnknown, vehicle.Details{})
			}},
			{"type", func() (*vehicle.Vehicle, error) {
				return vehicle.NewVehicle(kernel.NewUUID(), "VIN-1", "Civic", "Honda", 2024, "Black", "", vehicle.StatusUnknown, vehicle.Details{})
			}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := tt.fn()
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})

	t.Run("rejects invalid id", func(t *testing.T) {
		var zeroID kernel.UUID
		_, err := vehicle.NewVehicle(zeroID, "VIN-1", "Civic", "Honda", 2024, "Black", "Sedan", vehicle.StatusUnknown, vehicle.Details{})
		require.Error(t, err)
	})
}

func TestVehicle_ChangeStatus(t *testing.T) {
	t.Run("overwrites status unconditionally", func(t *testing.T) {
		v := newTestVehicle(t)

		// Jump straight from IN_PRODUCTION to DELIVERED. Transition
		// legality is intentionally not enforced.
		require.NoError(t, v.ChangeStatus(vehicle.StatusDelivered))
		assert.Equal(t, vehicle.StatusDelivered, v.Status())

		// And back again.
		require.NoError(t, v.ChangeStatus(vehicle.StatusInProduction))
		assert.Equal(t, vehicle.StatusInProduction, v.Status())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		v := newTestVehicle(t)

		require.ErrorIs(t, v.ChangeStatus(vehicle.StatusUnknown), errs.ErrValueIsInvalid)
		assert.Equal(t, vehicle.StatusInProduction, v.Status())
	})

	t.Run("advances updatedAt", func(t *testing.T) {
		v := newTestVehicle(t)
		before := v.UpdatedAt()

		time.Sleep(time.Millisecond)
		require.NoError(t, v.ChangeStatus(vehicle.StatusShipped))

		assert.True(t, v.UpdatedAt().After(before))
	})
}

func TestVehicle_UpdateDetails(t *testing.T) {
	t.Run("replaces all fields wholesale", func(t *testing.T) {
		v := newTestVehicle(t)

		err := v.UpdateDetails("Accord", "Honda", 2025, "White", "Sedan",
			vehicle.StatusQualityCheck,
			vehicle.Details{Transmission: "CVT"})
		require.NoError(t, err)

		assert.Equal(t, "Accord", v.Model())
		assert.Equal(t, 2025, v.Year())
		assert.Equal(t, "White", v.Color())
		assert.Equal(t, vehicle.StatusQualityCheck, v.Status())
		assert.Equal(t, "CVT", v.Details().Transmission)
		// Optional fields not supplied are cleared, not merged.
		assert.Empty(t, v.Details().EngineType)
	})

	t.Run("vin is not touched by update", func(t *testing.T) {
		v := newTestVehicle(t)

		require.NoError(t, v.UpdateDetails("Accord", "Honda", 2025, "White", "Sedan",
			vehicle.StatusShipped, vehicle.Details{}))

		assert.Equal(t, "1HGCM82633A004352", v.VIN())
	})

	t.Run("rejects missing required field", func(t *testing.T) {
		v := newTestVehicle(t)

		err := v.UpdateDetails("", "Honda", 2025, "White", "Sedan",
			vehicle.StatusShipped, vehicle.Details{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestVehicle_Validate(t *testing.T) {
	t.Run("constructed vehicle is valid", func(t *testing.T) {
		require.NoError(t, newTestVehicle(t).Validate())
	})

	t.Run("zero value is rejected", func(t *testing.T) {
		var v vehicle.Vehicle
		require.ErrorIs(t, v.Validate(), vehicle.ErrVehicleIsNotConstructed)
	})

	t.Run("nil is rejected", func(t *testing.T) {
		var v *vehicle.Vehicle
		require.ErrorIs(t, v.Validate(), vehicle.ErrVehicleIsNotConstructed)
	})
}

func TestRestoreVehicle(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	v, err := vehicle.RestoreVehicle(
		kernel.NewUUID(),
		"VIN-9", "Mustang", "Ford", 2022, "Blue", "Coupe",
		vehicle.StatusInService,
		vehicle.Details{Price: 45000},
		createdAt, updatedAt,
	)
	require.NoError(t, err)

	assert.Equal(t, createdAt, v.CreatedAt())
	assert.Equal(t, updatedAt, v.UpdatedAt())
	assert.Equal(t, vehicle.StatusInService, v.Status())
}

func TestVehicle_Snapshot(t *testing.T) {
	v := newTestVehicle(t)

	snap := v.Snapshot()

	assert.Equal(t, v.ID().String(), snap.ID)
	assert.Equal(t, "1HGCM82633A004352", snap.VIN)
	assert.Equal(t, "IN_PRODUCTION", snap.Status)
	assert.Equal(t, "Sedan", snap.Type)
}
