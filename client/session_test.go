package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"id": "u1", "name": "Test", "email": "t@example.com", "role": "user", "token": "tok-123",
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSessionLoginPersistsAndRehydrates(t *testing.T) {
	srv := authServer(t)
	dir := t.TempDir()

	c := New(srv.URL, logrus.New())
	session := NewSession(c, dir)
	user, err := session.Login(context.Background(), "t@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.True(t, session.LoggedIn())

	// A fresh session in the same dir rehydrates from the file.
	restored := NewSession(New(srv.URL, logrus.New()), dir)
	restored.Load()
	require.True(t, restored.LoggedIn())
	assert.Equal(t, "u1", restored.CurrentUser().ID)
	assert.Equal(t, "t@example.com", restored.CurrentUser().Email)
}

func TestSessionCorruptFileDiscardedSilently(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, sessionFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	session := NewSession(New("http://localhost:0", logrus.New()), dir)
	session.Load()

	assert.False(t, session.LoggedIn())
	assert.Nil(t, session.CurrentUser())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "corrupt session file is dropped")
}

func TestSessionLogout(t *testing.T) {
	srv := authServer(t)
	dir := t.TempDir()

	session := NewSession(New(srv.URL, logrus.New()), dir)
	_, err := session.Login(context.Background(), "t@example.com", "secret")
	require.NoError(t, err)

	session.Logout()
	assert.False(t, session.LoggedIn())

	restored := NewSession(New(srv.URL, logrus.New()), dir)
	restored.Load()
	assert.False(t, restored.LoggedIn(), "logout removes the persisted record")
}
