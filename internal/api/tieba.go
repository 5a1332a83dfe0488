package api

import (
	"context"

	"github.com/MKhiriev/go-tieba/internal/adapter"
	"github.com/MKhiriev/go-tieba/models"
)

// TiebaAPI wraps the /tieba endpoints.
type TiebaAPI struct {
	r Requester
}

func NewTiebaAPI(r Requester) *TiebaAPI {
	return &TiebaAPI{r: r}
}

func (t *TiebaAPI) GetCategories(ctx context.Context) ([]models.Category, error) {
	return get[[]models.Category](ctx, t.r, "/tieba/categories/")
}

func (t *TiebaAPI) GetTiebaList(ctx context.Context, params models.TiebaListParams) (models.Page[models.Tieba], error) {
	return get[models.Page[models.Tieba]](ctx, t.r, "/tieba/tiebas/", adapter.WithParams(params))
}

func (t *TiebaAPI) GetTiebaDetail(ctx context.Context, tiebaID int64) (models.Tieba, error) {
	return get[models.Tieba](ctx, t.r, itemPath("/tieba/tiebas/%d/", tiebaID))
}

// CreateTieba sends the board as multipart form data. Avatar and Banner are
// only attached when set.
func (t *TiebaAPI) CreateTieba(ctx context.Context, data models.TiebaCreate) (models.TiebaCreateResponse, error) {
	form := adapter.NewForm().
		AddField("name", data.Name).
		AddField("description", data.Description).
		AddField("category", formatID(data.Category))

	images := []struct {
		field string
		file  *models.File
	}{
		{"avatar", data.Avatar},
		{"banner", data.Banner},
	}
	for _, img := range images {
		if img.file == nil {
			continue
		}
		part, err := filePart(*img.file)
		if err != nil {
			return models.TiebaCreateResponse{}, err
		}
		form.AddFile(img.field, part)
	}

	return post[models.TiebaCreateResponse](ctx, t.r, "/tieba/tiebas/create/", nil, adapter.WithMultipart(form))
}

func (t *TiebaAPI) JoinTieba(ctx context.Context, tiebaID int64) (models.MembershipResponse, error) {
	return post[models.MembershipResponse](ctx, t.r, itemPath("/tieba/tiebas/%d/join/", tiebaID), nil)
}

func (t *TiebaAPI) LeaveTieba(ctx context.Context, tiebaID int64) (models.MembershipResponse, error) {
	return post[models.MembershipResponse](ctx, t.r, itemPath("/tieba/tiebas/%d/leave/", tiebaID), nil)
}

func (t *TiebaAPI) GetTiebaMembers(ctx context.Context, tiebaID int64, page models.PageParams) (models.Page[models.TiebaMember], error) {
	return get[models.Page[models.TiebaMember]](ctx, t.r, itemPath("/tieba/tiebas/%d/members/", tiebaID), withPage(page))
}

func (t *TiebaAPI) GetTiebaAnnouncements(ctx context.Context, tiebaID int64) ([]models.TiebaAnnouncement, error) {
	return get[[]models.TiebaAnnouncement](ctx, t.r, itemPath("/tieba/tiebas/%d/announcements/", tiebaID))
}

func (t *TiebaAPI) GetRecommendedTiebas(ctx context.Context) ([]models.Tieba, error) {
	res, err := get[models.RecommendedTiebas](ctx, t.r, "/tieba/recommended/")
	return res.Tiebas, err
}

func (t *TiebaAPI) GetHotTiebas(ctx context.Context) ([]models.Tieba, error) {
	res, err := get[models.HotTiebas](ctx, t.r, "/tieba/hot/")
	return res.Tiebas, err
}

func (t *TiebaAPI) SearchTiebas(ctx context.Context, q string) ([]models.Tieba, error) {
	if q == "" {
		return nil, ErrEmptyQuery
	}
	res, err := get[models.Results[models.Tieba]](ctx, t.r, "/tieba/search/", byQuery(q))
	return res.Results, err
}
