package response

import "ugel-backend/pkg/apperror"

// Response represents the standard API envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Pagination describes a paginated listing
type Pagination struct {
	Total        int64 `json:"total"`
	Pagina       int   `json:"pagina"`
	Limite       int   `json:"limite"`
	TotalPaginas int64 `json:"totalPaginas"`
}

// Paginated wraps listing data with its pagination block
type Paginated struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// Success returns a success envelope wrapping the data
func Success(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Error returns an error envelope with a human-readable message
func Error(message string) Response {
	return Response{Success: false, Message: message}
}

// ValidationError returns an error envelope carrying the field breakdown
func ValidationError(ve *apperror.ValidationError) Response {
	return Response{
		Success: false,
		Message: "Error de validación",
		Errors:  ve.Fields,
	}
}

// List returns a paginated listing envelope
func List(data interface{}, total int64, pagina, limite int) Paginated {
	totalPaginas := int64(0)
	if limite > 0 {
		totalPaginas = (total + int64(limite) - 1) / int64(limite)
	}
	return Paginated{
		Success: true,
		Data:    data,
		Pagination: Pagination{
			Total:        total,
			Pagina:       pagina,
			Limite:       limite,
			TotalPaginas: totalPaginas,
		},
	}
}
