package queries

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductionOrdersQueryHandler lists production orders from the database,
// optionally narrowed by status, stage or order number.
type GetProductionOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetProductionOrdersQueryHandler creates a handler for production order listings.
func NewGetProductionOrdersQueryHandler(db *gorm.DB) GetProductionOrdersQueryHandler {
	return GetProductionOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted by creation time,
// newest first.
func (h GetProductionOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetProductionOrdersQuery,
) ([]GetProductionOrdersQueryResponse, error) {
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
	if filter.Stage != "" {
		conditions = append(conditions, "current_stage = ?")
		args = append(args, filter.Stage)
	}
	if filter.OrderNumber != "" {
		conditions = append(conditions, "order_number = ?")
		args = append(args, filter.OrderNumber)
	}

	sqlQuery := `
		SELECT
			id,
			order_number,
			vehicle_vin,
			vehicle_model,
			vehicle_make,
			current_stage,
			status,
			quantity,
			start_date,
			expected_completion_date,
			actual_completion_date,
			assigned_line,
			completion_percentage,
			notes,
			created_at,
			updated_at
		FROM production_orders
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

	orders := make([]GetProductionOrdersQueryResponse, 0)

	for rows.Next() {
		var resp GetProductionOrdersQueryResponse
		var id uuid.UUID
		var vehicleVIN, vehicleModel, vehicleMake, assignedLine, notes sql.NullString
		var quantity sql.NullInt64
		var startDate, expectedCompletionDate, actualCompletionDate sql.NullTime

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&vehicleVIN,
			&vehicleModel,
			&vehicleMake,
			&resp.CurrentStage,
			&resp.Status,
			&quantity,
			&startDate,
			&expectedCompletionDate,
			&actualCompletionDate,
			&assignedLine,
			&resp.CompletionPercentage,
			&notes,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID = id.String()
		resp.VehicleVIN = vehicleVIN.String
		resp.VehicleModel = vehicleModel.String
		resp.VehicleMake = vehicleMake.String
		resp.AssignedLine = assignedLine.String
		resp.Notes = notes.String
		resp.Quantity = int(quantity.Int64)
		if startDate.Valid {
			date := startDate.Time
			resp.StartDate = &date
		}
		if expectedCompletionDate.Valid {
			date := expectedCompletionDate.Time
			resp.ExpectedCompletionDate = &date
		}
		if actualCompletionDate.Valid {
			date := actualCompletionDate.Time
			resp.ActualCompletionDate = &date
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
