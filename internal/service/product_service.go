package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/yourorg/products-api/internal/apperrors"
	"github.com/yourorg/products-api/internal/models"
	"github.com/yourorg/products-api/internal/repository"
)

// ProductRepository is the persistence collaborator the service writes through.
type ProductRepository interface {
	Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	FindAll(ctx context.Context, opts models.FindOptions) ([]*models.Product, error)
	FindByPK(ctx context.Context, id int64, opts models.FindOptions) (*models.Product, error)
	Save(ctx context.Context, p *models.Product, opts models.FindOptions) (*models.Product, error)
	Destroy(ctx context.Context, p *models.Product) error
}

var withoutTimestamps = models.FindOptions{Exclude: models.TimestampColumns}

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	// Structural validation (required fields, price > 0) is handled by the API layer
	return s.repo.Create(ctx, req)
}

func (s *ProductService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return s.repo.FindAll(ctx, models.FindOptions{
		Order:   []models.Order{{Column: models.ColumnName, Desc: true}},
		Exclude: models.TimestampColumns,
	})
}

func (s *ProductService) GetProduct(ctx context.Context, params models.GetProductParams) (*models.Product, error) {
	return s.find(ctx, params.ProductID, withoutTimestamps)
}

func (s *ProductService) UpdateProduct(ctx context.Context, req *models.UpdateProductRequest) (*models.Product, error) {
	current, err := s.find(ctx, req.ID, withoutTimestamps)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Name = req.Name
	updated.Price = req.Price
	updated.Availability = req.Availability

	return s.save(ctx, &updated)
}

func (s *ProductService) UpdateAvailability(ctx context.Context, params models.UpdateAvailabilityParams) (*models.Product, error) {
	current, err := s.find(ctx, params.ProductID, withoutTimestamps)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.Availability = !current.Availability

	return s.save(ctx, &updated)
}

func (s *ProductService) DeleteProduct(ctx context.Context, params models.DeleteProductParams) error {
	product, err := s.find(ctx, params.ProductID, models.FindOptions{})
	if err != nil {
		return err
	}

	if err := s.repo.Destroy(ctx, product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFoundError("product", strconv.FormatInt(product.ID, 10))
		}
		return err
	}
	return nil
}

func (s *ProductService) find(ctx context.Context, id int64, opts models.FindOptions) (*models.Product, error) {
	product, err := s.repo.FindByPK(ctx, id, opts)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("product", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	return product, nil
}

// save maps a row vanishing between read and write-back to not found.
func (s *ProductService) save(ctx context.Context, p *models.Product) (*models.Product, error) {
	saved, err := s.repo.Save(ctx, p, withoutTimestamps)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("product", strconv.FormatInt(p.ID, 10))
		}
		return nil, err
	}

	return saved, nil
}
