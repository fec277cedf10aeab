// Package testutil holds shared test doubles and the database suite.
package testutil

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yourorg/products-api/internal/models"
	"github.com/yourorg/products-api/internal/repository"
)

// MemoryProductRepository is an in-memory service.ProductRepository.
type MemoryProductRepository struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]models.Product

	// Err, when set, is returned by every method.
	Err error
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{items: make(map[int64]models.Product)}
}

func (m *MemoryProductRepository) Create(_ context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	m.nextID++
	now := time.Now().UTC()
	p := models.Product{
		ID:           m.nextID,
		Name:         req.Name,
		Price:        req.Price,
		Availability: req.Availability,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.items[p.ID] = p
	return &p, nil
}

func (m *MemoryProductRepository) FindAll(_ context.Context, opts models.FindOptions) ([]*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	out := make([]*models.Product, 0, len(m.items))
	for _, p := range m.items {
		out = append(out, project(p, opts.Exclude))
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	for i := len(opts.Order) - 1; i >= 0; i-- {
		o := opts.Order[i]
		sort.SliceStable(out, func(a, b int) bool {
			c := compare(out[a], out[b], o.Column)
			if o.Desc {
				return c > 0
			}
			return c < 0
		})
	}
	return out, nil
}

func (m *MemoryProductRepository) FindByPK(_ context.Context, id int64, opts models.FindOptions) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	p, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return project(p, opts.Exclude), nil
}

func (m *MemoryProductRepository) Save(_ context.Context, p *models.Product, opts models.FindOptions) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	stored, ok := m.items[p.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	stored.Name = p.Name
	stored.Price = p.Price
	stored.Availability = p.Availability
	stored.UpdatedAt = time.Now().UTC()
	m.items[p.ID] = stored
	return project(stored, opts.Exclude), nil
}

func (m *MemoryProductRepository) Destroy(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	if _, ok := m.items[p.ID]; !ok {
		return repository.ErrNotFound
	}
	delete(m.items, p.ID)
	return nil
}

// Len reports how many products are stored.
func (m *MemoryProductRepository) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

func project(p models.Product, exclude []string) *models.Product {
	if slices.Contains(exclude, models.ColumnCreatedAt) {
		p.CreatedAt = time.Time{}
	}
	if slices.Contains(exclude, models.ColumnUpdatedAt) {
		p.UpdatedAt = time.Time{}
	}
	return &p
}

func compare(a, b *models.Product, column string) int {
	switch column {
	case models.ColumnName:
		return strings.Compare(a.Name, b.Name)
	case models.ColumnPrice:
		switch {
		case a.Price < b.Price:
			return -1
		case a.Price > b.Price:
			return 1
		}
	}
	switch {
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	}
	return 0
}
