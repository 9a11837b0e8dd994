package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDoesNotDial(t *testing.T) {
	db, err := Open("u", "p", "127.0.0.1", "1", "society")
	require.NoError(t, err)
	require.NotNil(t, db)
	t.Cleanup(func() { _ = db.Close() })

	assert.Error(t, Ping(db, time.Second))
}
