package models

// SearchSort orders search results.
type SearchSort string

const (
	SearchSortRelevance SearchSort = "relevance"
	SearchSortLatest    SearchSort = "latest"
	SearchSortHot       SearchSort = "hot"
)

// SearchParams are shared by every keyword search endpoint. Size is the
// page size as named by the search API.
type SearchParams struct {
	Keyword string     `url:"keyword"`
	Page    int        `url:"page,omitempty"`
	Size    int        `url:"size,omitempty"`
	Sort    SearchSort `url:"sort,omitempty"`
}

// PostSearchParams narrows a post search to a board or an author.
type PostSearchParams struct {
	SearchParams
	Tieba  int64 `url:"tieba,omitempty"`
	Author int64 `url:"author,omitempty"`
}

// TiebaSearchParams narrows a board search to a category.
type TiebaSearchParams struct {
	Keyword  string `url:"keyword"`
	Page     int    `url:"page,omitempty"`
	Size     int    `url:"size,omitempty"`
	Category int64  `url:"category,omitempty"`
}

// UserSearchParams is the query of GET /search/users/.
type UserSearchParams struct {
	Keyword string `url:"keyword"`
	Page    int    `url:"page,omitempty"`
	Size    int    `url:"size,omitempty"`
}

// SearchAllResult is the payload of GET /search/all/.
type SearchAllResult struct {
	Posts  []Post  `json:"posts"`
	Tiebas []Tieba `json:"tiebas"`
	Users  []User  `json:"users"`
}

type PostSearchResult struct {
	Posts      []Post `json:"posts"`
	TotalCount int    `json:"total_count"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
}

type TiebaSearchResult struct {
	Tiebas     []Tieba `json:"tiebas"`
	TotalCount int     `json:"total_count"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
}

type UserSearchResult struct {
	Users      []User `json:"users"`
	TotalCount int    `json:"total_count"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
}

type CommentSearchResult struct {
	Comments   []Comment `json:"comments"`
	TotalCount int       `json:"total_count"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
}

// SearchKeyword is an entry of the hot, history, suggestion and related
// keyword lists.
type SearchKeyword struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count,omitempty"`
}
