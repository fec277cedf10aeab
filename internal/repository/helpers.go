package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yourorg/products-api/internal/apperrors"
	"github.com/yourorg/products-api/internal/models"
)

// selectColumns returns the product columns minus excluded ones. The id
// column is always kept.
func selectColumns(exclude []string) ([]string, error) {
	for _, col := range exclude {
		if !slices.Contains(models.ProductColumns, col) {
			return nil, fmt.Errorf("unknown column %q", col)
		}
	}

	cols := make([]string, 0, len(models.ProductColumns))
	for _, col := range models.ProductColumns {
		if col != models.ColumnID && slices.Contains(exclude, col) {
			continue
		}
		cols = append(cols, col)
	}
	return cols, nil
}

func orderClause(order []models.Order) (string, error) {
	if len(order) == 0 {
		return "", nil
	}

	parts := make([]string, 0, len(order))
	for _, o := range order {
		if !slices.Contains(models.ProductColumns, o.Column) {
			return "", fmt.Errorf("unknown order column %q", o.Column)
		}
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		parts = append(parts, o.Column+" "+dir)
	}
	return " ORDER BY " + strings.Join(parts, ", "), nil
}

func scanTargets(p *models.Product, cols []string) []any {
	targets := make([]any, len(cols))
	for i, col := range cols {
		switch col {
		case models.ColumnID:
			targets[i] = &p.ID
		case models.ColumnName:
			targets[i] = &p.Name
		case models.ColumnPrice:
			targets[i] = &p.Price
		case models.ColumnAvailability:
			targets[i] = &p.Availability
		case models.ColumnCreatedAt:
			targets[i] = &p.CreatedAt
		case models.ColumnUpdatedAt:
			targets[i] = &p.UpdatedAt
		}
	}
	return targets
}

func scanProduct(row pgx.Row, cols []string) (*models.Product, error) {
	var p models.Product
	if err := row.Scan(scanTargets(&p, cols)...); err != nil {
		return nil, err
	}
	return &p, nil
}

// translateError maps driver failures onto the repository and app error types.
func translateError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.NewTimeoutError(op, err)
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return apperrors.NewServiceUnavailableError("database unreachable", err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
