package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"femaqua-be/internal/entities"
)

// TokenRepository persists the bindings between token hashes and users
type TokenRepository interface {
	Create(ctx context.Context, token *entities.AccessToken) error
	FindByHash(ctx context.Context, tokenHash string) (*entities.AccessToken, error)
	Touch(ctx context.Context, tokenHash string, at time.Time) error
	DeleteByHash(ctx context.Context, tokenHash string) error
}

type tokenRepository struct {
	db *sql.DB
}

// NewTokenRepository creates a new Postgres-backed token repository
func NewTokenRepository(db *sql.DB) TokenRepository {
	return &tokenRepository{db: db}
}

// Create stores a new token binding
func (r *tokenRepository) Create(ctx context.Context, token *entities.AccessToken) error {
	query := `
		INSERT INTO access_tokens (id, user_id, token_hash, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		token.ID,
		token.UserID,
		token.TokenHash,
		token.CreatedAt,
		token.ExpiresAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create token: %w", err)
	}

	return nil
}

// FindByHash resolves a token hash to its binding
func (r *tokenRepository) FindByHash(ctx context.Context, tokenHash string) (*entities.AccessToken, error) {
	query := `
		SELECT id, user_id, token_hash, created_at, last_used_at, expires_at
		FROM access_tokens
		WHERE token_hash = $1
	`

	var t entities.AccessToken
	err := r.db.QueryRowContext(ctx, query, tokenHash).Scan(
		&t.ID,
		&t.UserID,
		&t.TokenHash,
		&t.CreatedAt,
		&t.LastUsedAt,
		&t.ExpiresAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	return &t, nil
}

// Touch records when the token was last used
func (r *tokenRepository) Touch(ctx context.Context, tokenHash string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE access_tokens SET last_used_at = $2 WHERE token_hash = $1`,
		tokenHash, at,
	)
	if err != nil {
		return fmt.Errorf("failed to touch token: %w", err)
	}
	return nil
}

// DeleteByHash revokes a single token
func (r *tokenRepository) DeleteByHash(ctx context.Context, tokenHash string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM access_tokens WHERE token_hash = $1`, tokenHash)
	if err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
