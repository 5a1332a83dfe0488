package api

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-tieba/internal/adapter"
	"github.com/MKhiriev/go-tieba/models"
)

// PostsAPI wraps the /posts endpoints.
type PostsAPI struct {
	r Requester
}

func NewPostsAPI(r Requester) *PostsAPI {
	return &PostsAPI{r: r}
}

func (p *PostsAPI) GetPostList(ctx context.Context, params models.PostListParams) (models.Page[models.Post], error) {
	return get[models.Page[models.Post]](ctx, p.r, "/posts/posts/", adapter.WithParams(params))
}

func (p *PostsAPI) GetPostDetail(ctx context.Context, postID int64) (models.Post, error) {
	return get[models.Post](ctx, p.r, itemPath("/posts/posts/%d/", postID))
}

// CreatePost sends the post as multipart form data. Every image and
// attachment becomes its own part under the images and attachments fields.
func (p *PostsAPI) CreatePost(ctx context.Context, data models.PostCreate) (models.PostResponse, error) {
	form := adapter.NewForm().
		AddField("title", data.Title).
		AddField("content", data.Content).
		AddField("tieba", formatID(data.Tieba))
	addBool(form, "is_anonymous", data.IsAnonymous)

	images, err := fileParts(data.Images)
	if err != nil {
		return models.PostResponse{}, err
	}
	attachments, err := fileParts(data.Attachments)
	if err != nil {
		return models.PostResponse{}, err
	}
	form.AddFiles("images", images...).AddFiles("attachments", attachments...)

	return post[models.PostResponse](ctx, p.r, "/posts/posts/create/", nil, adapter.WithMultipart(form))
}

func (p *PostsAPI) UpdatePost(ctx context.Context, postID int64, update models.PostUpdate) (models.PostResponse, error) {
	return call[models.PostResponse](ctx, p.r, http.MethodPut, itemPath("/posts/posts/%d/update/", postID), update)
}

func (p *PostsAPI) DeletePost(ctx context.Context, postID int64) (models.MessageResponse, error) {
	return call[models.MessageResponse](ctx, p.r, http.MethodDelete, itemPath("/posts/posts/%d/delete/", postID), nil)
}

// LikePost toggles the like of the current user.
func (p *PostsAPI) LikePost(ctx context.Context, postID int64) (models.LikeResponse, error) {
	return post[models.LikeResponse](ctx, p.r, itemPath("/posts/posts/%d/like/", postID), nil)
}

// CollectPost toggles the bookmark of the current user.
func (p *PostsAPI) CollectPost(ctx context.Context, postID int64) (models.CollectResponse, error) {
	return post[models.CollectResponse](ctx, p.r, itemPath("/posts/posts/%d/collect/", postID), nil)
}

func (p *PostsAPI) ReportPost(ctx context.Context, postID int64, report models.ReportData) (models.ReportResponse, error) {
	return post[models.ReportResponse](ctx, p.r, itemPath("/posts/posts/%d/report/", postID), report)
}

func (p *PostsAPI) GetHotPosts(ctx context.Context) ([]models.Post, error) {
	res, err := get[models.HotPosts](ctx, p.r, "/posts/hot/")
	return res.Posts, err
}

func (p *PostsAPI) GetRecommendedPosts(ctx context.Context) ([]models.Post, error) {
	res, err := get[models.RecommendedPosts](ctx, p.r, "/posts/recommended/")
	return res.Posts, err
}

// GetUserPostHistory lists the posts the current user has viewed.
func (p *PostsAPI) GetUserPostHistory(ctx context.Context, page models.PageParams) (models.Page[models.Post], error) {
	return get[models.Page[models.Post]](ctx, p.r, "/posts/user/history/", withPage(page))
}
