package api

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-tieba/internal/adapter"
	"github.com/MKhiriev/go-tieba/models"
)

const (
	pathLogin          = "/auth/login/"
	pathRegister       = "/auth/register/"
	pathLogout         = "/auth/logout/"
	pathCurrentUser    = "/auth/user/"
	pathProfile        = "/auth/profile/"
	pathPasswordChange = "/auth/password/change/"
	pathPasswordReset  = "/auth/password/reset/"
)

// AuthAPI wraps the /auth endpoints.
type AuthAPI struct {
	r Requester
}

func NewAuthAPI(r Requester) *AuthAPI {
	return &AuthAPI{r: r}
}

// Login exchanges credentials for an access token and the user record.
func (a *AuthAPI) Login(ctx context.Context, creds models.LoginCredentials) (models.LoginResponse, error) {
	return post[models.LoginResponse](ctx, a.r, pathLogin, creds)
}

// Register creates an account. It does not sign the user in.
func (a *AuthAPI) Register(ctx context.Context, data models.RegisterData) (models.RegisterResponse, error) {
	return post[models.RegisterResponse](ctx, a.r, pathRegister, data)
}

// Logout ends the session on the backend. It is best-effort: a failure is
// returned to the caller but never shown to the user.
func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.r.Do(ctx, http.MethodPost, pathLogout, nil, nil, adapter.WithoutErrorHandler())
}

// GetUserInfo reads the profile of the user the current token belongs to.
func (a *AuthAPI) GetUserInfo(ctx context.Context) (models.User, error) {
	return get[models.User](ctx, a.r, pathCurrentUser)
}

func (a *AuthAPI) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.ProfileResponse, error) {
	return call[models.ProfileResponse](ctx, a.r, http.MethodPut, pathProfile, update)
}

func (a *AuthAPI) ChangePassword(ctx context.Context, change models.PasswordChange) (models.MessageResponse, error) {
	return post[models.MessageResponse](ctx, a.r, pathPasswordChange, change)
}

func (a *AuthAPI) ResetPassword(ctx context.Context, email string) (models.MessageResponse, error) {
	return post[models.MessageResponse](ctx, a.r, pathPasswordReset, map[string]string{"email": email})
}
