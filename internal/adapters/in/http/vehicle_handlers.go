package http

import (
	"net/http"
	"strconv"

	"vehicletrack/internal/core/application/usecases/commands"
	"vehicletrack/internal/core/application/usecases/queries"
	"vehicletrack/internal/core/domain/model/kernel"
	"vehicletrack/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var req NewVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	status := vehicle.StatusUnknown
	if req.Status != "" {
		parsed, err := vehicle.StatusFromString(req.Status)
		if err != nil {
			return respondError(ctx, err)
		}
		status = parsed
	}

	vehicleID := kernel.NewUUID()
	cmd, err := commands.NewCreateVehicleCommand(
		vehicleID,
		req.VIN, req.Model, req.Make,
		req.Year,
		req.Color, req.VehicleType,
		status,
		vehicle.Details{
			EngineType:        req.EngineType,
			Transmission:      req.Transmission,
			Price:             req.Price,
			ManufacturingDate: req.ManufacturingDate,
		},
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": vehicleID.String()})
}

// GetVehicles handles GET /api/v1/vehicles.
func (s *Server) GetVehicles(ctx echo.Context) error {
	year := 0
	if raw := ctx.QueryParam("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return respondBadRequest(ctx, "Invalid year filter")
		}
		year = parsed
	}

	query, err := queries.NewGetVehiclesQuery(queries.VehiclesFilter{
		Status: ctx.QueryParam("status"),
		Make:   ctx.QueryParam("make"),
		Model:  ctx.QueryParam("model"),
		Year:   year,
		VIN:    ctx.QueryParam("vin"),
	})
	if err != nil {
		return respondError(ctx, err)
	}

	vehicles, err := s.getVehiclesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicles)
}

// GetVehicle handles GET /api/v1/vehicles/:id.
func (s *Server) GetVehicle(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.uowFactory.Create().VehicleRepository().Get(ctx.Request().Context(), id)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleResponse(aggregate))
}

// GetVehicleByVIN handles GET /api/v1/vehicles/vin/:vin.
func (s *Server) GetVehicleByVIN(ctx echo.Context) error {
	aggregate, err := s.uowFactory.Create().VehicleRepository().GetByVIN(
		ctx.Request().Context(), ctx.Param("vin"))
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleResponse(aggregate))
}

// UpdateVehicle handles PUT /api/v1/vehicles/:id.
func (s *Server) UpdateVehicle(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateVehicleRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	status, err := vehicle.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateVehicleCommand(
		id,
		req.Model, req.Make,
		req.Year,
		req.Color, req.VehicleType,
		status,
		vehicle.Details{
			EngineType:        req.EngineType,
			Transmission:      req.Transmission,
			Price:             req.Price,
			ManufacturingDate: req.ManufacturingDate,
		},
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.updateVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ChangeVehicleStatus handles PATCH /api/v1/vehicles/:id/status.
func (s *Server) ChangeVehicleStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req ChangeStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "Invalid request body")
	}

	status, err := vehicle.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeVehicleStatusCommand(id, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.changeVehicleStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// DeleteVehicle handles DELETE /api/v1/vehicles/:id.
func (s *Server) DeleteVehicle(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteVehicleCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.deleteVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
