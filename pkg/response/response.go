package response

// Response is the standard API envelope shared by every endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

// Meta carries pagination bookkeeping for list endpoints.
type Meta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int64 `json:"pages"`
}

// Success wraps data in a success envelope.
func Success(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// SuccessWithMessage wraps data with a human-readable message.
func SuccessWithMessage(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

// SuccessWithPagination wraps a list page together with its meta block.
func SuccessWithPagination(data interface{}, page, limit int, total int64) Response {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return Response{
		Success: true,
		Data:    data,
		Meta:    &Meta{Total: total, Page: page, Limit: limit, Pages: pages},
	}
}

// Error wraps an error message in the standard envelope.
func Error(err string) Response {
	return Response{Success: false, Error: err}
}
