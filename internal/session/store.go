package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harshbadhann2/society-home-connect/internal/backend"
	"github.com/harshbadhann2/society-home-connect/internal/metrics"
	"github.com/harshbadhann2/society-home-connect/internal/model"
	"github.com/harshbadhann2/society-home-connect/internal/utils"
)

var (
	// ErrInvalidCredentials is returned by SignIn for an unknown email, a
	// wrong password or a disabled account.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidRefresh is returned by Refresh for unknown, expired or
	// revoked refresh tokens.
	ErrInvalidRefresh = errors.New("invalid refresh token")
)

// UserStore is the account side of the backend auth service.
type UserStore interface {
	Create(ctx context.Context, email, password, metadata string, cost int) (int64, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id int64) (model.User, error)
}

// TokenStore is the refresh-token side of the backend auth service.
type TokenStore interface {
	StoreRefresh(ctx context.Context, t model.RefreshToken) error
	ValidateRefresh(ctx context.Context, tokenHash string) (int64, string, error)
	SessionActive(ctx context.Context, sessionID string) (bool, error)
	// RevokeByHash reports whether this call revoked a live token.
	RevokeByHash(ctx context.Context, tokenHash string) (bool, error)
	RevokeSession(ctx context.Context, sessionID string) (bool, error)
}

// Config carries token lifetimes and secrets.
type Config struct {
	JWTSecret      string
	AccessTTLMin   int
	RefreshTTLDays int
	BcryptCost     int
}

// Grant is the credential pair handed to a client after sign-in or refresh.
type Grant struct {
	Access  utils.AccessToken
	Refresh utils.RefreshToken
}

// Store implements the session primitives on top of the users and
// refresh_tokens tables.
type Store struct {
	cfg     Config
	users   UserStore
	tokens  TokenStore
	hub     *hub
	log     *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// New builds a Store. logger and m may be nil.
func New(cfg Config, users UserStore, tokens TokenStore, logger *slog.Logger, m *metrics.Metrics) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		cfg:     cfg,
		users:   users,
		tokens:  tokens,
		hub:     newHub(),
		log:     logger.With("component", "session"),
		metrics: m,
		now:     time.Now,
	}
}

// OnChange registers l for every sign-in, sign-out and token refresh. The
// returned function unsubscribes; events queued but not yet delivered to l
// are dropped.
func (s *Store) OnChange(l Listener) (unsubscribe func()) {
	return s.hub.subscribe(l)
}

// Close stops delivery to all listeners.
func (s *Store) Close() { s.hub.close() }

// Current returns the session behind accessToken, or nil when there is no
// valid session. It round-trips to the backend to confirm the session has
// not been revoked. Any failure, including a transient network error, is
// reported as "no session"; nothing is retried.
func (s *Store) Current(ctx context.Context, accessToken string) *Session {
	sess, err := s.current(ctx, accessToken)
	if err != nil {
		s.log.Debug("no current session", "err", err)
		s.metrics.SessionCheck("none")
		return nil
	}
	s.metrics.SessionCheck("valid")
	return sess
}

func (s *Store) current(ctx context.Context, accessToken string) (*Session, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, utils.ErrInvalidToken
	}
	claims, err := utils.ParseAccessToken(s.cfg.JWTSecret, accessToken)
	if err != nil {
		return nil, err
	}
	uid, err := claims.UserID()
	if err != nil {
		return nil, utils.ErrInvalidToken
	}
	active, err := s.tokens.SessionActive(ctx, claims.SID)
	if err != nil {
		return nil, err
	}
	if !active {
		return nil, fmt.Errorf("session %s revoked or expired", claims.SID)
	}
	u, err := s.users.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, fmt.Errorf("user %d disabled", uid)
	}
	return &Session{ID: claims.SID, UserID: u.ID, Email: u.Email, Metadata: parseMetadata(u.Metadata)}, nil
}

// SignIn checks credentials and opens a new session.
func (s *Store) SignIn(ctx context.Context, email, password string) (*Session, Grant, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if backend.Is(err, backend.KindNotFound) {
			return nil, Grant{}, ErrInvalidCredentials
		}
		return nil, Grant{}, err
	}
	if !u.IsActive || !utils.VerifyPassword(u.PasswordHash, password) {
		return nil, Grant{}, ErrInvalidCredentials
	}

	sess := &Session{ID: uuid.NewString(), UserID: u.ID, Email: u.Email, Metadata: parseMetadata(u.Metadata)}
	grant, err := s.issue(ctx, sess)
	if err != nil {
		return nil, Grant{}, err
	}
	s.emit(SignedIn, sess.ID, sess.UserID, sess)
	return sess, grant, nil
}

// Refresh rotates a refresh token. The session id is kept, so the client's
// session continues under new credentials.
func (s *Store) Refresh(ctx context.Context, rawRefresh string) (*Session, Grant, error) {
	hash := utils.HashRefreshRaw(strings.TrimSpace(rawRefresh))
	uid, sid, err := s.tokens.ValidateRefresh(ctx, hash)
	if err != nil {
		if backend.Is(err, backend.KindNotFound) {
			return nil, Grant{}, ErrInvalidRefresh
		}
		return nil, Grant{}, err
	}
	// revoking is the claim: a concurrent refresh of the same token loses here
	claimed, err := s.tokens.RevokeByHash(ctx, hash)
	if err != nil {
		return nil, Grant{}, err
	}
	if !claimed {
		return nil, Grant{}, ErrInvalidRefresh
	}
	u, err := s.users.GetByID(ctx, uid)
	if err != nil {
		if backend.Is(err, backend.KindNotFound) {
			return nil, Grant{}, ErrInvalidRefresh
		}
		return nil, Grant{}, err
	}
	if !u.IsActive {
		return nil, Grant{}, ErrInvalidRefresh
	}

	sess := &Session{ID: sid, UserID: u.ID, Email: u.Email, Metadata: parseMetadata(u.Metadata)}
	grant, err := s.issue(ctx, sess)
	if err != nil {
		return nil, Grant{}, err
	}
	s.emit(TokenRefreshed, sess.ID, sess.UserID, sess)
	return sess, grant, nil
}

// SignOut revokes every token of the session. A SignedOut event is published
// only when the session was still alive.
func (s *Store) SignOut(ctx context.Context, sessionID string, userID int64) error {
	revoked, err := s.tokens.RevokeSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if revoked {
		s.emit(SignedOut, sessionID, userID, nil)
	}
	return nil
}

// Register creates an account. metadata typically holds "role" and "name".
func (s *Store) Register(ctx context.Context, email, password string, metadata map[string]any) (int64, error) {
	if err := utils.CheckPassword(password); err != nil {
		return 0, err
	}
	if metadata == nil {
		metadata = map[string]any{}
	}
	doc, err := json.Marshal(metadata)
	if err != nil {
		return 0, err
	}
	return s.users.Create(ctx, email, password, string(doc), s.cfg.BcryptCost)
}

func (s *Store) issue(ctx context.Context, sess *Session) (Grant, error) {
	access, err := utils.NewAccessToken(s.cfg.JWTSecret, sess.UserID, sess.ID, sess.Email, s.cfg.AccessTTLMin)
	if err != nil {
		return Grant{}, err
	}
	refresh, err := utils.NewRefreshToken(s.cfg.RefreshTTLDays)
	if err != nil {
		return Grant{}, err
	}
	err = s.tokens.StoreRefresh(ctx, model.RefreshToken{
		UserID:    sess.UserID,
		SessionID: sess.ID,
		TokenHash: utils.HashRefreshRaw(refresh.Raw),
		ExpiresAt: refresh.Exp,
	})
	if err != nil {
		return Grant{}, err
	}
	return Grant{Access: access, Refresh: refresh}, nil
}

func (s *Store) emit(kind EventKind, sid string, uid int64, sess *Session) {
	ev := s.hub.publish(Event{Kind: kind, SessionID: sid, UserID: uid, Session: sess, At: s.now().UTC()})
	s.metrics.SessionEvent(kind.String())
	s.log.Info("session transition", "kind", kind.String(), "seq", ev.Seq, "session_id", sid, "user_id", uid)
}
