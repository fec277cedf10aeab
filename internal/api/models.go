package api

// CreateProductRequest represents the request body for creating a product.
// @Description Request payload for creating a product
type CreateProductRequest struct {
	Name         string  `json:"name" example:"Imac"`
	Price        float64 `json:"price" example:"200"`
	Availability *bool   `json:"availability,omitempty" example:"true"`
}

// UpdateProductRequest represents the request body for replacing a product.
// @Description Request payload for updating a product
type UpdateProductRequest struct {
	Name         string  `json:"name" example:"Imac"`
	Price        float64 `json:"price" example:"200"`
	Availability bool    `json:"availability" example:"true"`
}

// ProductResponse represents a product resource in API responses.
// Timestamps are only present where the read includes them.
// @Description Product resource
type ProductResponse struct {
	ID           int64   `json:"id" example:"1"`
	Name         string  `json:"name" example:"LaunchPad Novation"`
	Price        float64 `json:"price" example:"990"`
	Availability bool    `json:"availability" example:"true"`
	CreatedAt    string  `json:"createdAt,omitempty"`
	UpdatedAt    string  `json:"updatedAt,omitempty"`
}

func createRequestFromInput(in Input) CreateProductRequest {
	req := CreateProductRequest{
		Name:  in.String("name"),
		Price: in.Float("price"),
	}
	if availability, ok := in.Bool("availability"); ok {
		req.Availability = &availability
	}
	return req
}

func updateRequestFromInput(in Input) UpdateProductRequest {
	availability, _ := in.Bool("availability")
	return UpdateProductRequest{
		Name:         in.String("name"),
		Price:        in.Float("price"),
		Availability: availability,
	}
}
