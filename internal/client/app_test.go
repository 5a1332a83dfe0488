package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tieba/internal/config"
	"github.com/MKhiriev/go-tieba/internal/logger"
	"github.com/MKhiriev/go-tieba/internal/router"
	"github.com/MKhiriev/go-tieba/internal/session"
	"github.com/MKhiriev/go-tieba/internal/store"
	"github.com/MKhiriev/go-tieba/models"
)

type backendResponse struct {
	status int
	body   string
}

func newTestBackend(t *testing.T, routes map[string]backendResponse) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp, ok := routes[r.URL.Path]
		if !ok {
			resp = backendResponse{status: http.StatusNotFound, body: `{"message":"not found"}`}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.status)
		_, _ = w.Write([]byte(resp.body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T, srv *httptest.Server, token string) (*App, *store.MemoryTokenStore) {
	t.Helper()

	tokens := store.NewMemoryTokenStore()
	if token != "" {
		require.NoError(t, tokens.SaveToken(context.Background(), token))
	}

	cfg := &config.ClientConfig{
		App: config.ClientApp{
			SiteName:           "贴吧百科",
			Version:            "1.0.0",
			UploadMaxSize:      10 << 20,
			UploadAllowedTypes: []string{"image/jpeg", "image/png"},
		},
		Adapter: config.ClientAdapter{HTTPAddress: srv.URL, APIBasePath: "/api"},
	}

	a, err := newApp(cfg, tokens, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a, tokens
}

func TestApp_StartRestoresSession(t *testing.T) {
	srv := newTestBackend(t, map[string]backendResponse{
		"/api/auth/user/": {status: http.StatusOK, body: `{"id":7,"username":"alice","nickname":"爱丽丝"}`},
	})
	a, tokens := newTestApp(t, srv, "tok")

	a.start(context.Background())

	assert.Equal(t, session.StateAuthenticated, a.session.State())
	user, ok := a.session.User()
	require.True(t, ok)
	assert.Equal(t, int64(7), user.ID)

	token, _ := tokens.Token(context.Background())
	assert.Equal(t, "tok", token)

	assert.Equal(t, int64(10<<20), a.api.Upload.Limits().MaxSize, "missing upload config keeps local limits")
}

func TestApp_StartWithRejectedToken(t *testing.T) {
	srv := newTestBackend(t, map[string]backendResponse{
		"/api/auth/user/": {status: http.StatusUnauthorized, body: `{"message":"token expired"}`},
	})
	a, tokens := newTestApp(t, srv, "stale")

	a.start(context.Background())

	assert.Equal(t, session.StateAnonymous, a.session.State())
	assert.False(t, a.session.IsLoggedIn())
	token, _ := tokens.Token(context.Background())
	assert.Empty(t, token)
}

func TestApp_StartAnonymous(t *testing.T) {
	srv := newTestBackend(t, nil)
	a, _ := newTestApp(t, srv, "")

	a.start(context.Background())

	assert.Equal(t, session.StateAnonymous, a.session.State())
}

func TestApp_UploadLimitsFollowServerConfig(t *testing.T) {
	srv := newTestBackend(t, map[string]backendResponse{
		"/api/upload/config/": {status: http.StatusOK, body: `{"max_size":1024,"allowed_types":["image/png"]}`},
	})
	a, _ := newTestApp(t, srv, "")

	a.start(context.Background())

	assert.Equal(t, models.UploadConfig{MaxSize: 1024, AllowedTypes: []string{"image/png"}}, a.api.Upload.Limits())
	assert.Equal(t, int64(1024), a.session.AppConfig().UploadConfig.MaxSize)
}

func TestApp_GuardsRegistered(t *testing.T) {
	srv := newTestBackend(t, nil)
	a, _ := newTestApp(t, srv, "")
	a.start(context.Background())

	m, err := a.router.Navigate("/settings")
	require.NoError(t, err)

	assert.Equal(t, router.RouteLogin, m.Route.Name)
	assert.Equal(t, "/settings", m.Query.Get(router.RedirectParam))
	assert.Equal(t, "登录", a.ui.Title())
}

func TestApp_CloseTwice(t *testing.T) {
	srv := newTestBackend(t, nil)
	a, _ := newTestApp(t, srv, "")

	assert.NotPanics(t, func() {
		a.Close()
		a.Close()
	})
}
