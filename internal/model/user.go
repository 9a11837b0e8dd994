package model

import "time"

// User represents an account record as stored in the `users` table. The
// account itself carries no role column: role and display name live in the
// free-form Metadata document, which the dashboard reads when a session is
// established.
//
// Fields:
//
//	ID           – primary key identifier of the user.
//	Email        – unique, lower-cased email address.
//	PasswordHash – bcrypt hashed password.
//	Metadata     – JSON object (e.g. {"role":"staff","name":"Ravi Kumar"}).
//	IsActive     – whether the account may sign in.
type User struct {
	ID           int64  // users.id
	Email        string // users.email
	PasswordHash string // users.password_hash
	Metadata     string // users.metadata (JSON text)
	IsActive     bool   // users.is_active
}

// RefreshToken models an entry in the `refresh_tokens` table. Every token
// belongs to one session; rotating a refresh token keeps the session id so
// the session outlives individual tokens. Only the SHA-256 hash of the token
// is stored.
//
// Fields:
//
//	ID        – primary key identifier.
//	UserID    – owner of the token.
//	SessionID – session the token keeps alive.
//	TokenHash – SHA-256 hex digest of the token value.
//	ExpiresAt – expiration timestamp of the token.
type RefreshToken struct {
	ID        int64     // refresh_tokens.id
	UserID    int64     // refresh_tokens.user_id
	SessionID string    // refresh_tokens.session_id
	TokenHash string    // refresh_tokens.token_hash
	ExpiresAt time.Time // refresh_tokens.expires_at
}
