package pagination

// Response is a generic paginated response wrapper.
// T is the type of data items (e.g., ArticleDTO).
type Response[T any] struct {
	Data       []T      `json:"data"`       // Items on the current page, never null
	Pagination Metadata `json:"pagination"` // total, current_page, per_page, last_page
}

// NewResponse creates a new paginated response with data and metadata.
// A nil slice is replaced by an empty one so the JSON is [] rather than null.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	if data == nil {
		data = []T{}
	}
	return Response[T]{
		Data:       data,
		Pagination: metadata,
	}
}
