package queries

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVehiclesQueryHandler lists vehicles from the database, optionally
// narrowed by status, make, model, year or VIN.
type GetVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetVehiclesQueryHandler creates a handler for vehicle listings.
func NewGetVehiclesQueryHandler(db *gorm.DB) GetVehiclesQueryHandler {
	return GetVehiclesQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted by creation time,
// newest first.
func (h GetVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetVehiclesQuery,
) ([]GetVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := query.Filter()
	conditions := make([]string, 0)
	args := make([]any, 0)

	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if filter.Make != "" {
		conditions = append(conditions, "make = ?")
		args = append(args, filter.Make)
	}
	if filter.Model != "" {
		conditions = append(conditions, "model = ?")
		args = append(args, filter.Model)
	}
	if filter.Year != 0 {
		conditions = append(conditions, "year = ?")
		args = append(args, filter.Year)
	}
	if filter.VIN != "" {
		conditions = append(conditions, "vin = ?")
		args = append(args, filter.VIN)
	}

	sqlQuery := `
		SELECT
			id,
			vin,
			model,
			make,
			year,
			color,
			vehicle_type,
			engine_type,
			transmission,
			price,
			status,
			manufacturing_date,
			created_at,
			updated_at
		FROM vehicles
	`
	if len(conditions) > 0 {
		sqlQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	sqlQuery += " ORDER BY created_at DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]GetVehiclesQueryResponse, 0)

	for rows.Next() {
		var resp GetVehiclesQueryResponse
		var id uuid.UUID
		var engineType, transmission sql.NullString
		var price sql.NullFloat64
		var manufacturingDate sql.NullTime

		err = rows.Scan(
			&id,
			&resp.VIN,
			&resp.Model,
			&resp.Make,
			&resp.Year,
			&resp.Color,
			&resp.Type,
			&engineType,
			&transmission,
			&price,
			&resp.Status,
			&manufacturingDate,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID = id.String()
		resp.EngineType = engineType.String
		resp.Transmission = transmission.String
		resp.Price = price.Float64
		if manufacturingDate.Valid {
			date := manufacturingDate.Time
			resp.ManufacturingDate = &date
		}

		vehicles = append(vehicles, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
