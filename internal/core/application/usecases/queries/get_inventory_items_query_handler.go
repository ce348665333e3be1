package queries

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInventoryItemsQueryHandler lists inventory items from the database,
// optionally narrowed by category, part number or low-stock condition.
type GetInventoryItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryItemsQueryHandler creates a handler for inventory listings.
func NewGetInventoryItemsQueryHandler(db *gorm.DB) GetInventoryItemsQueryHandler {
	return GetInventoryItemsQueryHandler{db: db}
}

// Handle executes the listing query. The low-stock filter compares quantity
// against reorder level directly, so items whose stored status is stale
// (created low, never updated) are still reported.
func (h GetInventoryItemsQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryItemsQuery,
) ([]GetInventoryItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := query.Filter()
	conditions := make([]string, 0)
	args := make([]any, 0)

	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.PartNumber != "" {
		conditions = append(conditions, "part_number = ?")
		args = append(args, filter.PartNumber)
	}
	if filter.LowStock {
		conditions = append(conditions, "quantity_in_stock <= reorder_level")
	}

	sqlQuery := `
		SELECT
			id,
			part_number,
			part_name,
			category,
			description,
			quantity_in_stock,
			reorder_level,
			max_stock_level,
			supplier,
			unit_price,
			location,
			status,
			last_restocked,
			created_at,
			updated_at
		FROM inventory_items
	`
	if len(conditions) > 0 {
		sqlQuery += " WHERE " + strings.Join(conditions, " AND ")
	}
	sqlQuery += " ORDER BY part_number"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetInventoryItemsQueryResponse, 0)

	for rows.Next() {
		var resp GetInventoryItemsQueryResponse
		var id uuid.UUID
		var partName, category, description, supplier, location sql.NullString
		var maxStockLevel sql.NullInt64
		var unitPrice sql.NullFloat64
		var lastRestocked sql.NullTime

		err = rows.Scan(
			&id,
			&resp.PartNumber,
			&partName,
			&category,
			&description,
			&resp.QuantityInStock,
			&resp.ReorderLevel,
			&maxStockLevel,
			&supplier,
			&unitPrice,
			&location,
			&resp.Status,
			&lastRestocked,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID = id.String()
		resp.PartName = partName.String
		resp.Category = category.String
		resp.Description = description.String
		resp.MaxStockLevel = int(maxStockLevel.Int64)
		resp.Supplier = supplier.String
		resp.UnitPrice = unitPrice.Float64
		resp.Location = location.String
		if lastRestocked.Valid {
			date := lastRestocked.Time
			resp.LastRestocked = &date
		}

		items = append(items, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
