package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-tieba/internal/adapter"
	"github.com/MKhiriev/go-tieba/models"
)

// API groups the resource wrappers sharing one [Requester].
type API struct {
	Auth     *AuthAPI
	Users    *UsersAPI
	Tieba    *TiebaAPI
	Posts    *PostsAPI
	Comments *CommentsAPI
	Search   *SearchAPI
	Upload   *UploadAPI
}

// New builds every wrapper on top of r. uploads holds the client-side limits
// checked before a file is sent.
func New(r Requester, uploads models.UploadConfig) *API {
	return &API{
		Auth:     NewAuthAPI(r),
		Users:    NewUsersAPI(r),
		Tieba:    NewTiebaAPI(r),
		Posts:    NewPostsAPI(r),
		Comments: NewCommentsAPI(r),
		Search:   NewSearchAPI(r),
		Upload:   NewUploadAPI(r, uploads),
	}
}

// call performs one request and decodes the response into a fresh T. The
// zero T is returned on error.
func call[T any](ctx context.Context, r Requester, method, path string, payload any, opts ...adapter.RequestOption) (T, error) {
	var out T
	if err := r.Do(ctx, method, path, payload, &out, opts...); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func get[T any](ctx context.Context, r Requester, path string, opts ...adapter.RequestOption) (T, error) {
	return call[T](ctx, r, http.MethodGet, path, nil, opts...)
}

func post[T any](ctx context.Context, r Requester, path string, payload any, opts ...adapter.RequestOption) (T, error) {
	return call[T](ctx, r, http.MethodPost, path, payload, opts...)
}

// byQuery is the `?q=` option shared by the simple search endpoints.
func byQuery(q string) adapter.RequestOption {
	return adapter.WithQuery(url.Values{"q": {q}})
}

func itemPath(format string, id int64) string {
	return fmt.Sprintf(format, id)
}

func withPage(page models.PageParams) adapter.RequestOption {
	return adapter.WithParams(page)
}
