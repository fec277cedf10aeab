package api

// DataResponse wraps every successful payload.
// @Description Successful response envelope
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorResponse is the shape of every non-validation error.
// @Description Error response
type ErrorResponse struct {
	Error string `json:"error" example:"Product Not Found"`
}

// ValidationErrorResponse carries the violations of a rejected request.
// Errors is never empty.
// @Description Validation error response
type ValidationErrorResponse struct {
	Errors []Violation `json:"errors"`
}

// Violation is one failed rule.
// @Description A single validation failure
type Violation struct {
	Type     string   `json:"type" example:"field"`
	Value    any      `json:"value,omitempty" swaggertype:"string" example:"Hola"`
	Msg      string   `json:"msg" example:"price must be a number"`
	Path     string   `json:"path" example:"price"`
	Location Location `json:"location" swaggertype:"string" example:"body"`
}

func NewDataResponse(data any) *DataResponse {
	return &DataResponse{Data: data}
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}

func NewValidationErrorResponse(result ValidationResult) *ValidationErrorResponse {
	return &ValidationErrorResponse{Errors: result}
}
