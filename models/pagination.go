package models

// PageParams are the common list parameters. Zero values are omitted from
// the query string.
type PageParams struct {
	Page     int `url:"page,omitempty"`
	PageSize int `url:"page_size,omitempty"`
}

// Page is the paginated response envelope used by every list endpoint.
type Page[T any] struct {
	Results  []T     `json:"results"`
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
}

// HasNext reports whether the backend advertised a following page.
func (p Page[T]) HasNext() bool {
	return p.Next != nil && *p.Next != ""
}

// Results is the `{"results": [...]}` envelope of the unpaginated search
// endpoints.
type Results[T any] struct {
	Results []T `json:"results"`
}
