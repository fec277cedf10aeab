package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/yourorg/products-api/internal/models"
	"github.com/yourorg/products-api/internal/repository"
	"github.com/yourorg/products-api/internal/testutil"
)

type ProductRepositorySuite struct {
	testutil.DBIntegrationSuite
	repo *repository.ProductRepository
}

func TestProductRepositorySuite(t *testing.T) {
	suite.Run(t, new(ProductRepositorySuite))
}

func (s *ProductRepositorySuite) SetupTest() {
	s.repo = repository.NewProductRepository(s.DB)
	s.TruncateTables("products")
}

func (s *ProductRepositorySuite) create(name string, price float64) *models.Product {
	p, err := s.repo.Create(context.Background(), &models.CreateProductRequest{
		Name:         name,
		Price:        price,
		Availability: true,
	})
	s.Require().NoError(err)
	return p
}

func (s *ProductRepositorySuite) TestCreate_AssignsIDAndTimestamps() {
	p := s.create("LaunchPad Novation", 990)

	s.Equal(int64(1), p.ID)
	s.Equal("LaunchPad Novation", p.Name)
	s.InDelta(990, p.Price, 1e-9)
	s.True(p.Availability)
	s.False(p.CreatedAt.IsZero())
	s.False(p.UpdatedAt.IsZero())
}

func (s *ProductRepositorySuite) TestCreate_KeepsSmallPrices() {
	p := s.create("Sticker", 0.001)

	found, err := s.repo.FindByPK(context.Background(), p.ID, models.FindOptions{})
	s.Require().NoError(err)
	s.Greater(found.Price, 0.0)
}

func (s *ProductRepositorySuite) TestFindByPK() {
	ctx := context.Background()
	created := s.create("Monitor", 150)

	found, err := s.repo.FindByPK(ctx, created.ID, models.FindOptions{Exclude: models.TimestampColumns})
	s.Require().NoError(err)
	s.Equal(created.ID, found.ID)
	s.Equal("Monitor", found.Name)
	s.True(found.CreatedAt.IsZero())
	s.True(found.UpdatedAt.IsZero())

	_, err = s.repo.FindByPK(ctx, 2000, models.FindOptions{})
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *ProductRepositorySuite) TestFindAll_OrdersByNameDescending() {
	s.create("b", 1)
	s.create("c", 2)
	s.create("a", 3)

	products, err := s.repo.FindAll(context.Background(), models.FindOptions{
		Order:   []models.Order{{Column: models.ColumnName, Desc: true}},
		Exclude: models.TimestampColumns,
	})
	s.Require().NoError(err)
	s.Require().Len(products, 3)
	s.Equal("c", products[0].Name)
	s.Equal("b", products[1].Name)
	s.Equal("a", products[2].Name)
	s.True(products[0].CreatedAt.IsZero())
}

func (s *ProductRepositorySuite) TestFindAll_Empty() {
	products, err := s.repo.FindAll(context.Background(), models.FindOptions{})
	s.Require().NoError(err)
	s.NotNil(products)
	s.Empty(products)
}

func (s *ProductRepositorySuite) TestSave() {
	ctx := context.Background()
	created := s.create("Monitor", 150)

	changed := *created
	changed.Name = "Monitor 4K"
	changed.Price = 399.5
	changed.Availability = false

	saved, err := s.repo.Save(ctx, &changed, models.FindOptions{})
	s.Require().NoError(err)
	s.Equal("Monitor 4K", saved.Name)
	s.InDelta(399.5, saved.Price, 1e-9)
	s.False(saved.Availability)
	s.False(saved.UpdatedAt.Before(created.UpdatedAt))

	missing := models.Product{ID: 2000, Name: "x", Price: 1}
	_, err = s.repo.Save(ctx, &missing, models.FindOptions{})
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *ProductRepositorySuite) TestDestroy() {
	ctx := context.Background()
	created := s.create("Headset", 149.9)

	s.Require().NoError(s.repo.Destroy(ctx, created))

	_, err := s.repo.FindByPK(ctx, created.ID, models.FindOptions{})
	s.ErrorIs(err, repository.ErrNotFound)

	s.ErrorIs(s.repo.Destroy(ctx, created), repository.ErrNotFound)
}
