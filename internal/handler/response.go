package handler

// ErrorResponse is the error body for every non-2xx API response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CreatedResponse carries the surrogate id of a newly inserted row.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

func NewCreatedResponse(id int64) CreatedResponse {
	return CreatedResponse{ID: id}
}
