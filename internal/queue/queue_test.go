package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshbadhann2/society-home-connect/internal/session"
)

var at = time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)

func TestFromSession(t *testing.T) {
	ev := FromSession(session.Event{
		Seq:       7,
		Kind:      session.SignedIn,
		SessionID: "sid-1",
		UserID:    3,
		Session:   &session.Session{ID: "sid-1", UserID: 3, Email: "a@x.com", Metadata: map[string]any{"role": "admin"}},
		At:        at,
	})
	assert.Equal(t, SessionEvent{Seq: 7, Kind: "signed_in", SessionID: "sid-1", UserID: 3, Email: "a@x.com", At: at}, ev)

	out := FromSession(session.Event{Seq: 8, Kind: session.SignedOut, SessionID: "sid-1", UserID: 3, At: at})
	assert.Empty(t, out.Email)
	assert.Equal(t, "signed_out", out.Kind)

	body, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "role", "metadata stays off the wire")
}

func TestFormatLine(t *testing.T) {
	line := formatLine(SessionEvent{Seq: 2, Kind: "token_refreshed", SessionID: "s", UserID: 9, Email: "b@x.com", At: at})
	assert.Equal(t, "[2024-03-20T10:00:00Z] session token_refreshed | seq=2 | session_id=s | user_id=9 | email=\"b@x.com\"\n", line)

	line = formatLine(SessionEvent{Seq: 3, Kind: "signed_out", SessionID: "s", UserID: 9, At: at})
	assert.NotContains(t, line, "email")
}

func TestWriteEvent(t *testing.T) {
	var buf bytes.Buffer
	body, _ := json.Marshal(SessionEvent{Seq: 1, Kind: "signed_in", SessionID: "s", UserID: 1, At: at})
	require.NoError(t, writeEvent(&buf, body))
	assert.Contains(t, buf.String(), "session signed_in")

	buf.Reset()
	assert.Error(t, writeEvent(&buf, []byte("{not json")))
	assert.Error(t, writeEvent(&buf, []byte(`{"seq":1}`)))
	assert.Zero(t, buf.Len())
}

func TestSleepStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, sleep(ctx, time.Hour))
	assert.True(t, sleep(context.Background(), time.Millisecond))
}
