package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/harshbadhann2/society-home-connect/internal/backend"
	"github.com/harshbadhann2/society-home-connect/internal/model"
	"github.com/harshbadhann2/society-home-connect/internal/utils"
)

// UserRepo persists accounts in the 'users' table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,email,password_hash,metadata,is_active"

// Create hashes the password, inserts the user and returns its ID. metadata
// is stored verbatim and must be a JSON object.
func (r *UserRepo) Create(ctx context.Context, email, password, metadata string, cost int) (int64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := r.GetByEmail(ctx, email); err == nil {
		return 0, ErrEmailExists
	} else if !backend.Is(err, backend.KindNotFound) {
		return 0, err
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	if metadata == "" {
		metadata = "{}"
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (email, password_hash, metadata) VALUES (?,?,?)",
		email, hash, metadata)
	if err != nil {
		if backend.Is(err, backend.KindConflict) {
			return 0, ErrEmailExists
		}
		return 0, backend.Wrap("insert", "users", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, backend.Wrap("insert", "users", err)
	}
	return id, nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Metadata, &u.IsActive)
	return u, backend.Wrap("select", "users", err)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Metadata, &u.IsActive)
	return u, backend.Wrap("select", "users", err)
}
