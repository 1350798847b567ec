package smartcloth

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid button"`
}

// StatusResponse acknowledges a command.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// ListResponse wraps a collection with its length.
type ListResponse[T any] struct {
	Count int `json:"count"`
	Items []T `json:"items"`
}

// NewList builds a ListResponse; a nil slice is rendered as [].
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Count: len(items), Items: items}
}
