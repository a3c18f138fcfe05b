package client

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
)

// sessionFileName is the fixed key the logged-in user is persisted
// under, the local-storage analog.
const sessionFileName = "storefront_user.json"

// User is the client-held identity record.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
	Role    string `json:"role"`
}

func (u *User) IsAdmin() bool { return u != nil && u.Role == "admin" }

// Session holds the logged-in user for the lifetime of the client
// process and persists it to disk so a restart rehydrates it. It is an
// explicit object owned by one UI context; there is no package-level
// session.
type Session struct {
	client *Client
	path   string
	user   *User
	token  string
}

// NewSession creates a session persisted under dir. It does not load
// an existing record; call Load for that.
func NewSession(c *Client, dir string) *Session {
	return &Session{client: c, path: filepath.Join(dir, sessionFileName)}
}

type persistedSession struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Load rehydrates a previously persisted session. Missing or corrupt
// contents are discarded silently.
func (s *Session) Load() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var stored persistedSession
	if err := json.Unmarshal(raw, &stored); err != nil || stored.User == nil || stored.User.ID == "" {
		_ = os.Remove(s.path)
		return
	}
	s.user = stored.User
	s.token = stored.Token
	s.client.SetToken(stored.Token)
}

func (s *Session) persist() {
	raw, err := json.Marshal(persistedSession{User: s.user, Token: s.token})
	if err != nil {
		return
	}
	_ = os.WriteFile(s.path, raw, 0o600)
}

// authPayload is the server's login/register response.
type authPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Role    string `json:"role"`
	Token   string `json:"token"`
}

func (s *Session) adopt(p *authPayload) *User {
	s.user = &User{
		ID:      p.ID,
		Name:    p.Name,
		Email:   p.Email,
		Address: p.Address,
		Role:    p.Role,
	}
	s.token = p.Token
	s.client.SetToken(p.Token)
	s.persist()
	return s.user
}

// Login authenticates against the backend and stores the session.
func (s *Session) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	var payload authPayload
	if err := s.client.do(ctx, http.MethodPost, "/api/v1/users/login", nil, body, &payload); err != nil {
		return nil, err
	}
	return s.adopt(&payload), nil
}

// Register creates an account and logs it in.
func (s *Session) Register(ctx context.Context, name, email, password, address string) (*User, error) {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"address":  address,
	}
	var payload authPayload
	if err := s.client.do(ctx, http.MethodPost, "/api/v1/users/register", nil, body, &payload); err != nil {
		return nil, err
	}
	return s.adopt(&payload), nil
}

// Logout clears the in-memory session and the persisted record.
func (s *Session) Logout() {
	s.user = nil
	s.token = ""
	s.client.SetToken("")
	_ = os.Remove(s.path)
}

// CurrentUser returns the logged-in user, or nil.
func (s *Session) CurrentUser() *User { return s.user }

func (s *Session) LoggedIn() bool { return s.user != nil }
