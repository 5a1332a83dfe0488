package api

import (
	"context"

	"github.com/MKhiriev/go-tieba/models"
)

// UsersAPI wraps the /users endpoints.
type UsersAPI struct {
	r Requester
}

func NewUsersAPI(r Requester) *UsersAPI {
	return &UsersAPI{r: r}
}

func (u *UsersAPI) GetUserDetail(ctx context.Context, userID int64) (models.UserProfile, error) {
	return get[models.UserProfile](ctx, u.r, itemPath("/users/%d/", userID))
}

// SearchUsers matches users by username or nickname.
func (u *UsersAPI) SearchUsers(ctx context.Context, q string) ([]models.User, error) {
	if q == "" {
		return nil, ErrEmptyQuery
	}
	res, err := get[models.Results[models.User]](ctx, u.r, "/users/search/", byQuery(q))
	return res.Results, err
}

func (u *UsersAPI) FollowUser(ctx context.Context, userID int64) (models.FollowResponse, error) {
	return post[models.FollowResponse](ctx, u.r, itemPath("/users/%d/follow/", userID), nil)
}

func (u *UsersAPI) UnfollowUser(ctx context.Context, userID int64) (models.FollowResponse, error) {
	return post[models.FollowResponse](ctx, u.r, itemPath("/users/%d/unfollow/", userID), nil)
}

func (u *UsersAPI) GetFollowers(ctx context.Context, userID int64, page models.PageParams) (models.Page[models.FollowRelationship], error) {
	return get[models.Page[models.FollowRelationship]](ctx, u.r, itemPath("/users/%d/followers/", userID), withPage(page))
}

func (u *UsersAPI) GetFollowing(ctx context.Context, userID int64, page models.PageParams) (models.Page[models.FollowRelationship], error) {
	return get[models.Page[models.FollowRelationship]](ctx, u.r, itemPath("/users/%d/following/", userID), withPage(page))
}
