package pagination

// Metadata describes where a page sits in the full result set.
type Metadata struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	LastPage    int   `json:"last_page"` // never below 1, even for an empty set
}

// NewMetadata builds the metadata for params given the total item count.
func NewMetadata(params Params, total int64) Metadata {
	last := 1
	if total > 0 && params.PerPage > 0 {
		per := int64(params.PerPage)
		last = int((total + per - 1) / per)
	}
	return Metadata{
		Total:       total,
		CurrentPage: params.Page,
		PerPage:     params.PerPage,
		LastPage:    last,
	}
}
