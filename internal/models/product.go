package models

import "time"

// Product columns as stored in the products table.
const (
	ColumnID           = "id"
	ColumnName         = "name"
	ColumnPrice        = "price"
	ColumnAvailability = "availability"
	ColumnCreatedAt    = "created_at"
	ColumnUpdatedAt    = "updated_at"
)

// ProductColumns lists every product column in select order.
var ProductColumns = []string{
	ColumnID,
	ColumnName,
	ColumnPrice,
	ColumnAvailability,
	ColumnCreatedAt,
	ColumnUpdatedAt,
}

// TimestampColumns are the audit columns most reads leave out.
var TimestampColumns = []string{ColumnCreatedAt, ColumnUpdatedAt}

type Product struct {
	ID           int64
	Name         string
	Price        float64
	Availability bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateProductRequest struct {
	Name         string
	Price        float64
	Availability bool
}

type UpdateProductRequest struct {
	ID           int64
	Name         string
	Price        float64
	Availability bool
}

type GetProductParams struct {
	ProductID int64
}

type UpdateAvailabilityParams struct {
	ProductID int64
}

type DeleteProductParams struct {
	ProductID int64
}

// Order sorts a read by a single column.
type Order struct {
	Column string
	Desc   bool
}

// FindOptions controls ordering and column exclusion for repository reads.
type FindOptions struct {
	Order   []Order
	Exclude []string
}
