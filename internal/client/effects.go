package client

import (
	"context"

	"github.com/MKhiriev/go-tieba/internal/adapter"
	"github.com/MKhiriev/go-tieba/internal/app"
	"github.com/MKhiriev/go-tieba/internal/logger"
	"github.com/MKhiriev/go-tieba/internal/router"
	"github.com/MKhiriev/go-tieba/internal/store"
)

// ErrorEffects is the [adapter.ErrorHandler] of the client. It performs the
// user-visible side effects of a failed call; the call's error still reaches
// the caller afterwards.
type ErrorEffects struct {
	tokens   store.TokenStore
	session  SessionInvalidator
	nav      Navigator
	notifier Notifier

	logger *logger.Logger
}

var _ adapter.ErrorHandler = (*ErrorEffects)(nil)

func NewErrorEffects(tokens store.TokenStore, session SessionInvalidator, nav Navigator, notifier Notifier, log *logger.Logger) *ErrorEffects {
	return &ErrorEffects{
		tokens:   tokens,
		session:  session,
		nav:      nav,
		notifier: notifier,
		logger:   log,
	}
}

// HandleError implements [adapter.ErrorHandler].
func (e *ErrorEffects) HandleError(ctx context.Context, err *adapter.APIError) {
	if err == nil {
		return
	}

	if err.Kind == adapter.KindUnauthorized {
		e.expireSession(ctx)
	}

	e.notifier.Notify(app.NoticeError, NoticeMessage(err))
}

// expireSession clears every trace of the rejected session. The token is
// removed even when the failed call's context is already done.
func (e *ErrorEffects) expireSession(ctx context.Context) {
	if err := e.tokens.DeleteToken(context.WithoutCancel(ctx)); err != nil {
		e.logger.Warn().Err(err).Msg("error deleting rejected access token")
	}
	e.session.Invalidate()
	e.nav.Redirect(router.PathLogin)
}

// NoticeMessage returns the notice text shown for err.
func NoticeMessage(err *adapter.APIError) string {
	switch err.Kind {
	case adapter.KindUnauthorized:
		return app.MsgSessionExpired
	case adapter.KindForbidden:
		return app.MsgForbidden
	case adapter.KindNotFound:
		return app.MsgNotFound
	case adapter.KindServer:
		return app.MsgInternalServerError
	}
	if err.Message != "" {
		return err.Message
	}
	return app.MsgNetworkError
}
