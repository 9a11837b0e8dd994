package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/harshbadhann2/society-home-connect/internal/backend"
	"github.com/harshbadhann2/society-home-connect/internal/model"
)

// TokenRepo persists/validates refresh tokens (single 'token_hash' column).
// A session is alive while it has at least one non-revoked, non-expired
// token.
type TokenRepo struct{ DB *sql.DB }

func NewTokenRepo(db *sql.DB) *TokenRepo { return &TokenRepo{DB: db} }

// StoreRefresh inserts a refresh token hash row.
func (r *TokenRepo) StoreRefresh(ctx context.Context, t model.RefreshToken) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO refresh_tokens (user_id, session_id, token_hash, expires_at) VALUES (?,?,?,?)",
		t.UserID, t.SessionID, t.TokenHash, t.ExpiresAt.UTC())
	return backend.Wrap("insert", "refresh_tokens", err)
}

// ValidateRefresh returns the owning user and session if a non-revoked,
// non-expired token exists.
func (r *TokenRepo) ValidateRefresh(ctx context.Context, tokenHash string) (userID int64, sessionID string, err error) {
	err = r.DB.QueryRowContext(ctx,
		`SELECT user_id, session_id FROM refresh_tokens
		 WHERE token_hash=? AND revoked_at IS NULL AND expires_at > ? LIMIT 1`,
		tokenHash, time.Now().UTC()).Scan(&userID, &sessionID)
	if err != nil {
		return 0, "", backend.Wrap("select", "refresh_tokens", err)
	}
	return userID, sessionID, nil
}

// SessionActive reports whether sessionID still has a live token.
func (r *TokenRepo) SessionActive(ctx context.Context, sessionID string) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM refresh_tokens
		 WHERE session_id=? AND revoked_at IS NULL AND expires_at > ?`,
		sessionID, time.Now().UTC()).Scan(&n)
	if err != nil {
		return false, backend.Wrap("select", "refresh_tokens", err)
	}
	return n > 0, nil
}

// RevokeByHash claims a live token by revoking it. It reports false when the
// token was already revoked or expired, so at most one caller wins a token.
func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE refresh_tokens SET revoked_at=CURRENT_TIMESTAMP
		 WHERE token_hash=? AND revoked_at IS NULL AND expires_at > ?`,
		tokenHash, time.Now().UTC())
	if err != nil {
		return false, backend.Wrap("update", "refresh_tokens", err)
	}
	n, _ := res.RowsAffected()
	return n == 1, nil
}

// RevokeSession revokes every token of one session. It reports whether any
// token was still active.
func (r *TokenRepo) RevokeSession(ctx context.Context, sessionID string) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at=CURRENT_TIMESTAMP WHERE session_id=? AND revoked_at IS NULL",
		sessionID)
	if err != nil {
		return false, backend.Wrap("update", "refresh_tokens", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// PurgeExpired deletes tokens that expired or were revoked before cutoff and
// returns how many rows were removed.
func (r *TokenRepo) PurgeExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM refresh_tokens WHERE expires_at < ? OR (revoked_at IS NOT NULL AND revoked_at < ?)",
		cutoff.UTC(), cutoff.UTC())
	if err != nil {
		return 0, backend.Wrap("delete", "refresh_tokens", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
