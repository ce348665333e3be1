package queries

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPurchaseOrdersQueryHandler lists purchase orders from the database,
// optionally narrowed by status, customer or order number.
type GetPurchaseOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPurchaseOrdersQueryHandler creates a handler for purchase order listings.
func NewGetPurchaseOrdersQueryHandler(db *gorm.DB) GetPurchaseOrdersQueryHandler {
	return GetPurchaseOrdersQueryHandler{db: db}
}

// Handle executes the listing query. Results are sorted by order date,
// newest first.
func (h GetPurchaseOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPurchaseOrdersQuery,
) ([]GetPurchaseOrdersQueryResponse, error) {
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
	if filter.CustomerID != "" {
		conditions = append(conditions, "customer_id = ?")
		args = append(args, filter.CustomerID)
	}
	if filter.OrderNumber != "" {
		conditions = append(conditions, "order_number = ?")
		args = append(args, filter.OrderNumber)
	}

	sqlQuery := `
		SELECT
			id,
			order_number,
			customer_id,
			customer_name,
			customer_email,
			customer_phone,
			vehicle_vin,
			vehicle_model,
			vehicle_make,
			vehicle_year,
			vehicle_color,
			total_price,
			deposit_amount,
			status,
			order_date,
			expected_delivery_date,
			actual_delivery_date,
			delivery_address,
			notes,
			created_at,
			updated_at
		FROM purchase_orders
	`
	if len(conditions) > 0 {
		sqlQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	sqlQuery += " ORDER BY order_date DESC"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetPurchaseOrdersQueryResponse, 0)

	for rows.Next() {
		var resp GetPurchaseOrdersQueryResponse
		var id uuid.UUID
		var customerID, customerName, customerEmail, customerPhone sql.NullString
		var vehicleVIN, vehicleModel, vehicleColor, deliveryAddress, notes sql.NullString
		var vehicleMake sql.NullString
		var vehicleYear sql.NullInt64
		var totalPrice, depositAmount sql.NullFloat64
		var expectedDeliveryDate, actualDeliveryDate sql.NullTime

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&customerID,
			&customerName,
			&customerEmail,
			&customerPhone,
			&vehicleVIN,
			&vehicleModel,
			&vehicleMake,
			&vehicleYear,
			&vehicleColor,
			&totalPrice,
			&depositAmount,
			&resp.Status,
			&resp.OrderDate,
			&expectedDeliveryDate,
			&actualDeliveryDate,
			&deliveryAddress,
			&notes,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID = id.String()
		resp.CustomerID = customerID.String
		resp.CustomerName = customerName.String
		resp.CustomerEmail = customerEmail.String
		resp.CustomerPhone = customerPhone.String
		resp.VehicleVIN = vehicleVIN.String
		resp.VehicleModel = vehicleModel.String
		resp.VehicleMake = vehicleMake.String
		resp.VehicleYear = int(vehicleYear.Int64)
		resp.VehicleColor = vehicleColor.String
		resp.TotalPrice = totalPrice.Float64
		resp.DepositAmount = depositAmount.Float64
		resp.DeliveryAddress = deliveryAddress.String
		resp.Notes = notes.String
		if expectedDeliveryDate.Valid {
			date := expectedDeliveryDate.Time
			resp.ExpectedDeliveryDate = &date
		}
		if actualDeliveryDate.Valid {
			date := actualDeliveryDate.Time
			resp.ActualDeliveryDate = &date
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
