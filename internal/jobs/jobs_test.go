package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshbadhann2/society-home-connect/internal/auth"
	"github.com/harshbadhann2/society-home-connect/internal/model"
	"github.com/harshbadhann2/society-home-connect/internal/repository"
	"github.com/harshbadhann2/society-home-connect/internal/testutil"
)

type fakePurger struct {
	cutoff time.Time
	n      int64
	err    error
}

func (f *fakePurger) PurgeExpired(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoff = cutoff
	return f.n, f.err
}

func TestRegistration(t *testing.T) {
	s := New(testutil.Logger())
	require.NoError(t, s.PurgeTokens("@every 1h", &fakePurger{}))
	require.NoError(t, s.PruneContexts("@every 10m", time.Hour, auth.NewRegistry(nil)))
	assert.Equal(t, 2, s.Len())

	require.NoError(t, s.PurgeTokens("", &fakePurger{}))
	require.NoError(t, s.PruneContexts("@every 1m", 0, auth.NewRegistry(nil)))
	assert.Equal(t, 2, s.Len(), "empty spec or zero idle time adds nothing")

	assert.Error(t, s.PurgeTokens("not a spec", &fakePurger{}))
}

func TestPurgeTokensUsesNow(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	s := New(testutil.Logger())
	s.now = func() time.Time { return now }

	p := &fakePurger{n: 3}
	s.purgeTokens(p)
	assert.Equal(t, now, p.cutoff)

	s.purgeTokens(&fakePurger{err: errors.New("db down")})
}

func TestPurgeTokensAgainstDatabase(t *testing.T) {
	db := testutil.DB(t)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	ctx := context.Background()

	uid, err := users.Create(ctx, "purge@example.com", "secret-password", "{}", 4)
	require.NoError(t, err)
	past := time.Now().Add(-time.Hour)
	require.NoError(t, tokens.StoreRefresh(ctx, model.RefreshToken{UserID: uid, SessionID: "s1", TokenHash: "old", ExpiresAt: past}))
	require.NoError(t, tokens.StoreRefresh(ctx, model.RefreshToken{UserID: uid, SessionID: "s2", TokenHash: "new", ExpiresAt: time.Now().Add(time.Hour)}))

	New(testutil.Logger()).purgeTokens(tokens)

	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM refresh_tokens").Scan(&n))
	assert.Equal(t, 1, n)
	_, sid, err := tokens.ValidateRefresh(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, "s2", sid)
}

func TestPruneContexts(t *testing.T) {
	reg := auth.NewRegistry(nil)
	reg.Ensure("a")
	s := New(testutil.Logger())

	s.pruneContexts(reg, time.Hour)
	assert.Equal(t, 1, reg.Len())

	time.Sleep(5 * time.Millisecond)
	s.pruneContexts(reg, time.Millisecond)
	assert.Zero(t, reg.Len())
}
