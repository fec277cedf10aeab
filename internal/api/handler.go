package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/nhalm/canonlog"
	"github.com/yourorg/products-api/internal/apperrors"
	"github.com/yourorg/products-api/internal/models"
)

// ProductService defines only the methods the API layer needs from the product service.
type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	ListProducts(ctx context.Context) ([]*models.Product, error)
	GetProduct(ctx context.Context, params models.GetProductParams) (*models.Product, error)
	UpdateProduct(ctx context.Context, req *models.UpdateProductRequest) (*models.Product, error)
	UpdateAvailability(ctx context.Context, params models.UpdateAvailabilityParams) (*models.Product, error)
	DeleteProduct(ctx context.Context, params models.DeleteProductParams) error
}

const productDeletedMessage = "product deleted"

type Handler struct {
	productSvc ProductService
}

func NewHandler(productSvc ProductService) *Handler {
	return &Handler{
		productSvc: productSvc,
	}
}

// CreateProduct godoc
// @Summary Creates a new product
// @Tags Products
// @Accept json
// @Produce json
// @Param product body CreateProductRequest true "Product to create"
// @Success 201 {object} DataResponse{data=ProductResponse}
// @Failure 400 {object} ValidationErrorResponse
// @Router /products [post]
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	req := createRequestFromInput(inputFromContext(r.Context()))

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"product_name": req.Name,
	})

	serviceReq := models.CreateProductRequest{
		Name:         req.Name,
		Price:        req.Price,
		Availability: true,
	}
	if req.Availability != nil {
		serviceReq.Availability = *req.Availability
	}

	product, err := h.productSvc.CreateProduct(r.Context(), &serviceReq)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Created(w, convertToProductResponse(product))
}

// ListProducts godoc
// @Summary Get a list of products
// @Description Products ordered by name, descending
// @Tags Products
// @Produce json
// @Success 200 {object} DataResponse{data=[]ProductResponse}
// @Router /products [get]
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productSvc.ListProducts(r.Context())
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = convertToProductResponse(p)
	}

	Success(w, responses)
}

// GetProduct godoc
// @Summary Get a product by id
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} DataResponse{data=ProductResponse}
// @Failure 400 {object} ValidationErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	product, err := h.productSvc.GetProduct(r.Context(), models.GetProductParams{
		ProductID: id,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, convertToProductResponse(product))
}

// UpdateProduct godoc
// @Summary Updates a product with user input
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body UpdateProductRequest true "Replacement values"
// @Success 200 {object} DataResponse{data=ProductResponse}
// @Failure 400 {object} ValidationErrorResponse "Invalid ID or invalid input"
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [put]
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	req := updateRequestFromInput(inputFromContext(r.Context()))

	serviceReq := models.UpdateProductRequest{
		ID:           id,
		Name:         req.Name,
		Price:        req.Price,
		Availability: req.Availability,
	}

	product, err := h.productSvc.UpdateProduct(r.Context(), &serviceReq)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, convertToProductResponse(product))
}

// UpdateAvailability godoc
// @Summary Update product availability
// @Description Flips the availability flag
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} DataResponse{data=ProductResponse}
// @Failure 400 {object} ValidationErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [patch]
func (h *Handler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	product, err := h.productSvc.UpdateAvailability(r.Context(), models.UpdateAvailabilityParams{
		ProductID: id,
	})
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, convertToProductResponse(product))
}

// DeleteProduct godoc
// @Summary Deletes a product by id
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} DataResponse{data=string}
// @Failure 400 {object} ValidationErrorResponse "Invalid ID"
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [delete]
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	if err := h.productSvc.DeleteProduct(r.Context(), models.DeleteProductParams{
		ProductID: id,
	}); err != nil {
		handleServiceError(w, r, err)
		return
	}

	Success(w, productDeletedMessage)
}

// productID reads the already validated id param. Integers too large for
// int64 cannot name a stored product, so they resolve to not found.
func productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := inputFromContext(r.Context()).Param("id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		NotFound(w, r, apperrors.NewNotFoundError("product", raw), productNotFoundMessage)
		return 0, false
	}

	canonlog.AddRequestFields(r.Context(), map[string]any{
		"product_id": id,
	})
	return id, true
}

func convertToProductResponse(product *models.Product) ProductResponse {
	resp := ProductResponse{
		ID:           product.ID,
		Name:         product.Name,
		Price:        product.Price,
		Availability: product.Availability,
	}
	if !product.CreatedAt.IsZero() {
		resp.CreatedAt = product.CreatedAt.Format(time.RFC3339)
	}
	if !product.UpdatedAt.IsZero() {
		resp.UpdatedAt = product.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}
