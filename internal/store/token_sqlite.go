package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tieba/internal/logger"
)

// sqliteTokenStore is the SQLite-backed implementation of [TokenStore]. The
// token is a single row of the client_state key/value table.
type sqliteTokenStore struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteTokenStore constructs a [TokenStore] over an already migrated
// database.
func NewSQLiteTokenStore(db *DB, logger *logger.Logger) TokenStore {
	logger.Debug().Msg("creating sqlite token store")
	return &sqliteTokenStore{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sqliteTokenStore) Token(ctx context.Context) (string, error) {
	log := s.logger

	query, args, err := buildGetStateQuery(AccessTokenKey)
	if err != nil {
		log.Error().Err(err).Str("func", "*sqliteTokenStore.Token").Msg("error building query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token string
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		log.Error().Err(err).Str("func", "*sqliteTokenStore.Token").Msg("error reading token")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, nil
}

func (s *sqliteTokenStore) SaveToken(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	log := s.logger

	query, args, err := buildUpsertStateQuery(AccessTokenKey, token, s.now())
	if err != nil {
		log.Error().Err(err).Str("func", "*sqliteTokenStore.SaveToken").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error().Err(err).Str("func", "*sqliteTokenStore.SaveToken").Msg("error saving token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteTokenStore) DeleteToken(ctx context.Context) error {
	log := s.logger

	query, args, err := buildDeleteStateQuery(AccessTokenKey)
	if err != nil {
		log.Error().Err(err).Str("func", "*sqliteTokenStore.DeleteToken").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Error().Err(err).Str("func", "*sqliteTokenStore.DeleteToken").Msg("error deleting token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
