package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/nhalm/pgxkit"
	"github.com/yourorg/products-api/internal/models"
)

type ProductRepository struct {
	db *pgxkit.DB
}

func NewProductRepository(db *pgxkit.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	cols := models.ProductColumns
	query := `INSERT INTO products (name, price, availability)
		VALUES ($1, $2, $3)
		RETURNING ` + strings.Join(cols, ", ")

	product, err := scanProduct(r.db.QueryRow(ctx, query, req.Name, req.Price, req.Availability), cols)
	if err != nil {
		return nil, translateError("create product", err)
	}
	return product, nil
}

func (r *ProductRepository) FindAll(ctx context.Context, opts models.FindOptions) ([]*models.Product, error) {
	cols, err := selectColumns(opts.Exclude)
	if err != nil {
		return nil, err
	}
	order, err := orderClause(opts.Order)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, "SELECT "+strings.Join(cols, ", ")+" FROM products"+order)
	if err != nil {
		return nil, translateError("list products", err)
	}
	defer rows.Close()

	products := make([]*models.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows, cols)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError("list products", err)
	}

	return products, nil
}

func (r *ProductRepository) FindByPK(ctx context.Context, id int64, opts models.FindOptions) (*models.Product, error) {
	cols, err := selectColumns(opts.Exclude)
	if err != nil {
		return nil, err
	}

	query := "SELECT " + strings.Join(cols, ", ") + " FROM products WHERE id = $1"
	product, err := scanProduct(r.db.QueryRow(ctx, query, id), cols)
	if err != nil {
		return nil, translateError("find product", err)
	}
	return product, nil
}

// Save writes name, price and availability of an existing product and
// returns the stored row with opts.Exclude applied.
func (r *ProductRepository) Save(ctx context.Context, p *models.Product, opts models.FindOptions) (*models.Product, error) {
	cols, err := selectColumns(opts.Exclude)
	if err != nil {
		return nil, err
	}

	query := `UPDATE products
		SET name = $2, price = $3, availability = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + strings.Join(cols, ", ")

	product, err := scanProduct(r.db.QueryRow(ctx, query, p.ID, p.Name, p.Price, p.Availability), cols)
	if err != nil {
		return nil, translateError("save product", err)
	}
	return product, nil
}

func (r *ProductRepository) Destroy(ctx context.Context, p *models.Product) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, p.ID)
	if err != nil {
		return translateError("delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
