package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-tieba/internal/adapter"
	"github.com/MKhiriev/go-tieba/internal/api"
	"github.com/MKhiriev/go-tieba/internal/config"
	"github.com/MKhiriev/go-tieba/internal/logger"
	"github.com/MKhiriev/go-tieba/internal/router"
	"github.com/MKhiriev/go-tieba/internal/session"
	"github.com/MKhiriev/go-tieba/internal/store"
	"github.com/MKhiriev/go-tieba/internal/tui"
	"github.com/MKhiriev/go-tieba/internal/workers"
	"github.com/MKhiriev/go-tieba/models"
)

// App is the terminal client: one HTTP client core, one session store and
// one router shared by every screen.
type App struct {
	http    *adapter.Client
	api     *api.API
	session *session.Store
	router  *router.Router
	ui      *tui.TUI
	effects *ErrorEffects
	workers *workers.Workers

	closers     []io.Closer
	unsubscribe func()

	logger *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp opens the durable token store and wires the client together.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("error creating client storages: %w", err)
	}

	a, err := newApp(cfg, storages.Tokens, buildInfo, log)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}
	a.closers = append(a.closers, storages)
	return a, nil
}

func newApp(cfg *config.ClientConfig, tokens store.TokenStore, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	httpClient, err := adapter.NewHTTPClient(cfg.Adapter, tokens, log)
	if err != nil {
		return nil, fmt.Errorf("error creating http client: %w", err)
	}

	uploads := models.UploadConfig{
		MaxSize:      cfg.App.UploadMaxSize,
		AllowedTypes: cfg.App.UploadAllowedTypes,
	}
	tiebaAPI := api.New(httpClient, uploads)

	sess := session.New(tiebaAPI.Auth, tokens, models.AppConfig{
		SiteName:     cfg.App.SiteName,
		Version:      cfg.App.Version,
		APIBaseURL:   httpClient.BaseURL(),
		UploadConfig: uploads,
	}, log, session.WithConfigSource(tiebaAPI.Upload))

	r := router.NewDefault(log)
	ui := tui.New(tui.Deps{
		Session:  sess,
		Boards:   tiebaAPI.Tieba,
		Posts:    tiebaAPI.Posts,
		Comments: tiebaAPI.Comments,
		Search:   tiebaAPI.Search,
		Users:    tiebaAPI.Users,
		SiteURL:  cfg.Adapter.HTTPAddress,
	}, r, buildInfo, log)

	// AuthGuard first: the title must be the one of the final target.
	r.BeforeEach(router.AuthGuard(sess.IsLoggedIn))
	r.BeforeEach(router.TitleGuard(ui))

	var jobs []workers.Worker
	if job := sess.RefreshJob(cfg.Workers.ProfileRefreshInterval); job != nil {
		jobs = append(jobs, job)
	}

	a := &App{
		http:    httpClient,
		api:     tiebaAPI,
		session: sess,
		router:  r,
		ui:      ui,
		effects: NewErrorEffects(tokens, sess, ui, ui, log),
		workers: workers.NewWorkers(jobs...),
		logger:  log,
	}
	a.unsubscribe = sess.Subscribe(func(s session.Snapshot) {
		tiebaAPI.Upload.SetLimits(s.AppConfig.UploadConfig)
	})

	return a, nil
}

// Run restores the session, starts background jobs and blocks in the UI
// until the user quits or the process is signalled.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer a.Close()

	a.start(ctx)
	defer a.workers.Stop()

	err := a.ui.Run(ctx, router.PathHome)
	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return err
}

// start runs everything that precedes the UI. The upload config is
// optional on the backend, so it is loaded before the error effects are
// installed and a failure only keeps the local limits.
func (a *App) start(ctx context.Context) {
	a.session.LoadAppConfig(ctx)
	a.http.SetErrorHandler(a.effects)
	a.session.CheckAuthStatus(ctx)
	a.workers.Start(ctx)
}

// Close releases the session store and the durable storage.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	a.session.Close()
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("error closing client resource")
		}
	}
	a.closers = nil
}
