package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-goal-keeper/internal/logger"
	"github.com/MKhiriev/go-goal-keeper/models"
)

type sessionRepository struct {
	*DB
	now    func() time.Time
	logger *logger.Logger
}

// NewSessionRepository constructs the SQLite-backed [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		now:    time.Now,
		logger: logger,
	}
}

// Current returns the saved session or [ErrNoSession].
func (s *sessionRepository) Current(ctx context.Context) (models.Session, error) {
	var (
		session models.Session
		savedAt string
	)

	err := s.DB.QueryRowContext(ctx, getCurrentSession).Scan(&session.OwnerID, &session.Token, &savedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrNoSession
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.Current").
			Msg("failed to read session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if session.SavedAt, err = parseTimestamp(savedAt); err != nil {
		return models.Session{}, err
	}

	return session, nil
}

// Save replaces the stored session.
func (s *sessionRepository) Save(ctx context.Context, session models.Session) error {
	savedAt := session.SavedAt
	if savedAt.IsZero() {
		savedAt = s.now()
	}

	if _, err := s.DB.ExecContext(ctx, saveSession, session.OwnerID, session.Token, formatTimestamp(savedAt)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.Save").
			Int64("owner_id", session.OwnerID).
			Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Invalidate forgets the stored session.
func (s *sessionRepository) Invalidate(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, deleteSession); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.Invalidate").
			Msg("failed to invalidate session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	s.logger.Info().Str("func", "sessionRepository.Invalidate").Msg("session invalidated")
	return nil
}

// InvalidateToken forgets the stored session only while it still holds token.
// A 401 for a request sent before a new login leaves the new session alone.
func (s *sessionRepository) InvalidateToken(ctx context.Context, token string) error {
	res, err := s.DB.ExecContext(ctx, deleteSessionWithToken, token)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.InvalidateToken").
			Msg("failed to invalidate session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		s.logger.Debug().Str("func", "sessionRepository.InvalidateToken").Msg("stored session holds another token, kept")
		return nil
	}

	s.logger.Info().Str("func", "sessionRepository.InvalidateToken").Msg("session invalidated")
	return nil
}
