package api

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-tieba/internal/adapter"
	"github.com/MKhiriev/go-tieba/models"
)

// SearchAPI wraps the /search endpoints.
type SearchAPI struct {
	r Requester
}

func NewSearchAPI(r Requester) *SearchAPI {
	return &SearchAPI{r: r}
}

// SearchAll searches posts, boards and users at once.
func (s *SearchAPI) SearchAll(ctx context.Context, params models.SearchParams) (models.SearchAllResult, error) {
	if params.Keyword == "" {
		return models.SearchAllResult{}, ErrEmptyQuery
	}
	return get[models.SearchAllResult](ctx, s.r, "/search/all/", adapter.WithParams(params))
}

func (s *SearchAPI) SearchPosts(ctx context.Context, params models.PostSearchParams) (models.PostSearchResult, error) {
	if params.Keyword == "" {
		return models.PostSearchResult{}, ErrEmptyQuery
	}
	return get[models.PostSearchResult](ctx, s.r, "/search/posts/", adapter.WithParams(params))
}

func (s *SearchAPI) SearchTieba(ctx context.Context, params models.TiebaSearchParams) (models.TiebaSearchResult, error) {
	if params.Keyword == "" {
		return models.TiebaSearchResult{}, ErrEmptyQuery
	}
	return get[models.TiebaSearchResult](ctx, s.r, "/search/tieba/", adapter.WithParams(params))
}

func (s *SearchAPI) SearchUsers(ctx context.Context, params models.UserSearchParams) (models.UserSearchResult, error) {
	if params.Keyword == "" {
		return models.UserSearchResult{}, ErrEmptyQuery
	}
	return get[models.UserSearchResult](ctx, s.r, "/search/users/", adapter.WithParams(params))
}

func (s *SearchAPI) GetSuggestions(ctx context.Context, keyword string) ([]models.SearchKeyword, error) {
	return s.keywords(ctx, "/search/suggestions/", byQuery(keyword))
}

func (s *SearchAPI) GetHotSearches(ctx context.Context) ([]models.SearchKeyword, error) {
	return s.keywords(ctx, "/search/hot/")
}

func (s *SearchAPI) GetSearchHistory(ctx context.Context) ([]models.SearchKeyword, error) {
	return s.keywords(ctx, "/search/history/")
}

func (s *SearchAPI) ClearSearchHistory(ctx context.Context) error {
	return s.r.Do(ctx, http.MethodDelete, "/search/history/", nil, nil)
}

func (s *SearchAPI) GetRelatedSearches(ctx context.Context, keyword string) ([]models.SearchKeyword, error) {
	return s.keywords(ctx, "/search/related/", byQuery(keyword))
}

func (s *SearchAPI) keywords(ctx context.Context, path string, opts ...adapter.RequestOption) ([]models.SearchKeyword, error) {
	res, err := get[models.Results[models.SearchKeyword]](ctx, s.r, path, opts...)
	return res.Results, err
}
