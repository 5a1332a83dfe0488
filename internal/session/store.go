package session

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-tieba/internal/logger"
	"github.com/MKhiriev/go-tieba/internal/store"
	"github.com/MKhiriev/go-tieba/internal/utils"
	"github.com/MKhiriev/go-tieba/internal/workers"
	"github.com/MKhiriev/go-tieba/models"
)

// Store is the session store. It is safe for concurrent use.
//
// Concurrent Login or FetchUserInfo calls are not serialised: the call that
// completes last determines the user.
type Store struct {
	auth    AuthClient
	tokens  store.TokenStore
	configs ConfigSource
	logger  *logger.Logger
	now     func() time.Time

	mu      sync.RWMutex
	user    *models.User
	state   State
	loading int
	appCfg  models.AppConfig
	// epoch changes whenever the signed-in identity changes. Background
	// refreshes started under an older epoch are discarded.
	epoch uint64

	// notifyMu serialises mutation and fan-out so subscribers observe
	// snapshots in order.
	notifyMu sync.Mutex
	subsMu   sync.Mutex
	subs     map[uint64]func(Snapshot)
	nextSub  uint64

	jobMu sync.Mutex
	job   *workers.PeriodicJob
}

// Option customises a [Store].
type Option func(*Store)

// WithConfigSource makes LoadAppConfig fetch upload limits from src.
func WithConfigSource(src ConfigSource) Option {
	return func(s *Store) {
		s.configs = src
	}
}

// New creates a store in the Unknown state. appCfg is the initial
// configuration returned by AppConfig until LoadAppConfig refines it.
func New(auth AuthClient, tokens store.TokenStore, appCfg models.AppConfig, log *logger.Logger, opts ...Option) *Store {
	s := &Store{
		auth:   auth,
		tokens: tokens,
		logger: log,
		now:    time.Now,
		state:  StateUnknown,
		appCfg: cloneAppConfig(appCfg),
		subs:   make(map[uint64]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// User returns the signed-in user.
func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// IsLoggedIn reports whether a user record is present.
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Loading reports whether a Login or Register call is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading > 0
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) AppConfig() models.AppConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAppConfig(s.appCfg)
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to receive a snapshot after every state change and
// returns a function that removes it. fn runs synchronously on the goroutine
// that made the change and must not call mutating methods of the store.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs, id)
			s.subsMu.Unlock()
		})
	}
}

// CheckAuthStatus restores the session from a stored token. Without a token
// the store becomes Anonymous and no request is made; a JWT whose exp claim
// has passed is deleted the same way. When the profile fetch
// fails the token is deleted and the store becomes Anonymous; the failure is
// logged, not returned.
func (s *Store) CheckAuthStatus(ctx context.Context) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("error reading stored access token, treating session as anonymous")
	}

	if strings.TrimSpace(token) == "" {
		s.update(func() {
			s.user = nil
			s.state = StateAnonymous
		})
		return
	}

	if utils.TokenExpired(token, s.now()) {
		s.logger.Info().Msg("stored access token has expired, signing out locally")
		if delErr := s.tokens.DeleteToken(context.WithoutCancel(ctx)); delErr != nil {
			s.logger.Warn().Err(delErr).Msg("error deleting expired access token")
		}
		s.update(func() {
			s.user = nil
			s.state = StateAnonymous
		})
		return
	}

	s.update(func() {
		s.state = StateChecking
	})

	if _, err = s.FetchUserInfo(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("stored session is no longer valid")
		if delErr := s.tokens.DeleteToken(context.WithoutCancel(ctx)); delErr != nil {
			s.logger.Warn().Err(delErr).Msg("error deleting stale access token")
		}
		s.update(func() {
			s.user = nil
			s.state = StateAnonymous
		})
	}
}

// FetchUserInfo reads the profile of the token owner. On success the user is
// stored and returned; on failure the user is cleared and the error is
// returned.
func (s *Store) FetchUserInfo(ctx context.Context) (models.User, error) {
	user, err := s.auth.GetUserInfo(ctx)
	if err != nil {
		s.update(func() {
			if s.user != nil {
				s.epoch++
			}
			s.user = nil
			s.state = StateAnonymous
		})
		return models.User{}, err
	}

	s.update(func() {
		s.setUserLocked(user)
	})
	return user, nil
}

// Login signs in with creds, persists the returned token and stores the
// user. The loading flag is raised for the duration of the call.
func (s *Store) Login(ctx context.Context, creds models.LoginCredentials) (models.User, error) {
	s.beginLoading()
	defer s.endLoading()

	resp, err := s.auth.Login(ctx, creds)
	if err != nil {
		return models.User{}, err
	}

	token := strings.TrimSpace(resp.AccessToken)
	if token == "" {
		return models.User{}, ErrEmptyAccessToken
	}
	if err = s.tokens.SaveToken(ctx, token); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrSavingToken, err)
	}

	s.update(func() {
		s.setUserLocked(resp.User)
	})

	s.logger.Info().Int64("user_id", resp.User.ID).Msg("signed in")
	return resp.User, nil
}

// Register creates an account and returns the raw server payload. It does
// not sign the user in.
func (s *Store) Register(ctx context.Context, data models.RegisterData) (models.RegisterResponse, error) {
	s.beginLoading()
	defer s.endLoading()

	return s.auth.Register(ctx, data)
}

// Logout notifies the backend and then always clears the token and the user.
// A failed backend call is logged only.
func (s *Store) Logout(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("logout request failed, clearing local session anyway")
	}

	if err := s.tokens.DeleteToken(context.WithoutCancel(ctx)); err != nil {
		s.logger.Warn().Err(err).Msg("error deleting access token on logout")
	}

	s.Invalidate()
}

// Invalidate drops the user after the backend rejected the session. The
// token itself is removed by the caller.
func (s *Store) Invalidate() {
	s.update(func() {
		s.user = nil
		s.state = StateAnonymous
		s.epoch++
	})
}

// LoadAppConfig returns the client configuration. With a [ConfigSource] the
// upload limits are refreshed from the backend first; a failure keeps the
// current limits and is logged.
func (s *Store) LoadAppConfig(ctx context.Context) models.AppConfig {
	if s.configs == nil {
		return s.AppConfig()
	}

	limits, err := s.configs.GetUploadConfig(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("error loading upload config, keeping defaults")
		return s.AppConfig()
	}

	s.update(func() {
		if limits.MaxSize > 0 {
			s.appCfg.UploadConfig.MaxSize = limits.MaxSize
		}
		if len(limits.AllowedTypes) > 0 {
			s.appCfg.UploadConfig.AllowedTypes = slices.Clone(limits.AllowedTypes)
		}
	})
	return s.AppConfig()
}

// RefreshJob returns a job that re-reads the profile every interval while a
// user is signed in, or nil when interval is not positive. The job is
// stopped by Close.
func (s *Store) RefreshJob(interval time.Duration) *workers.PeriodicJob {
	if interval <= 0 {
		return nil
	}

	s.jobMu.Lock()
	defer s.jobMu.Unlock()
	if s.job == nil {
		s.job = workers.NewPeriodicJob("profile-refresh", interval, s.refreshUser, s.logger)
	}
	return s.job
}

// refreshUser is the background variant of FetchUserInfo. A failure leaves
// the session untouched: a 401 is handled by the error effects, anything
// else is transient. Results fetched before a sign-in change are dropped.
func (s *Store) refreshUser(ctx context.Context) error {
	s.mu.RLock()
	loggedIn, epoch := s.user != nil, s.epoch
	s.mu.RUnlock()
	if !loggedIn {
		return nil
	}

	user, err := s.auth.GetUserInfo(ctx)
	if err != nil {
		return fmt.Errorf("error refreshing user profile: %w", err)
	}

	s.update(func() {
		if s.epoch == epoch && s.user != nil {
			u := user
			s.user = &u
		}
	})
	return nil
}

// Close stops the refresh job and drops every subscriber.
func (s *Store) Close() {
	s.jobMu.Lock()
	job := s.job
	s.jobMu.Unlock()
	if job != nil {
		job.Stop()
	}

	s.subsMu.Lock()
	s.subs = make(map[uint64]func(Snapshot))
	s.subsMu.Unlock()
}

func (s *Store) beginLoading() {
	s.update(func() {
		s.loading++
	})
}

func (s *Store) endLoading() {
	s.update(func() {
		if s.loading > 0 {
			s.loading--
		}
	})
}

func (s *Store) setUserLocked(user models.User) {
	if s.user == nil || s.user.ID != user.ID {
		s.epoch++
	}
	s.user = &user
	s.state = StateAuthenticated
}

// update applies mutate under the state lock and fans the resulting
// snapshot out to subscribers.
func (s *Store) update(mutate func()) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	mutate()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.subsMu.Lock()
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		IsLoggedIn: s.user != nil,
		Loading:    s.loading > 0,
		State:      s.state,
		AppConfig:  cloneAppConfig(s.appCfg),
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

func cloneAppConfig(cfg models.AppConfig) models.AppConfig {
	cfg.UploadConfig.AllowedTypes = slices.Clone(cfg.UploadConfig.AllowedTypes)
	return cfg
}
