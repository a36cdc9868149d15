// Package gateway exchanges credentials for a session against the backend.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"hradmin/internal/client/routes"
	"hradmin/internal/client/session"
)

// ErrInvalidCredentials is the single failure surfaced to the login form.
// Transport errors map to it too; the underlying cause is logged, not shown.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Gateway struct {
	baseURL string
	client  *http.Client
	store   *session.Store
	storage session.Storage
}

func New(baseURL string, store *session.Store, storage session.Storage) *Gateway {
	return &Gateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		store:   store,
		storage: storage,
	}
}

type loginRequest struct {
	StaffID  string `json:"staffId"`
	Password string `json:"password"`
}

type loginEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Token string          `json:"token"`
		User  session.Session `json:"user"`
	} `json:"data"`
}

// Result carries the established session and where to navigate next.
type Result struct {
	Session session.Session
	Landing string
}

// Authenticate exchanges credentials for a session. The session store is
// committed before the landing route is returned, so any guard evaluated by
// the resulting navigation already sees the new session. On any failure the
// store is left untouched.
func (g *Gateway) Authenticate(ctx context.Context, staffID, password string) (Result, error) {
	body, err := json.Marshal(loginRequest{StaffID: staffID, Password: password})
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/auth/login", bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		slog.Debug("login transport failure", "err", err)
		return Result{}, ErrInvalidCredentials
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Debug("login rejected", "status", resp.StatusCode)
		return Result{}, ErrInvalidCredentials
	}

	var envelope loginEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		slog.Debug("login response decode failure", "err", err)
		return Result{}, ErrInvalidCredentials
	}

	sess := envelope.Data.User
	landing, ok := routes.Landing(sess.Role)
	if !ok {
		// A role outside the closed set never becomes a session.
		slog.Debug("login returned unknown role", "role", sess.Role)
		return Result{}, fmt.Errorf("no landing route for role %q: %w", sess.Role, ErrInvalidCredentials)
	}

	if err := g.store.Commit(sess); err != nil {
		return Result{}, err
	}
	if err := g.storage.Set(session.KeyToken, []byte(envelope.Data.Token)); err != nil {
		return Result{}, err
	}

	return Result{Session: sess, Landing: landing}, nil
}

// Logout revokes the server session best-effort and always clears the store.
func (g *Gateway) Logout(ctx context.Context) error {
	if token, ok, _ := g.storage.Get(session.KeyToken); ok {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/api/auth/logout", nil)
		if err == nil {
			req.Header.Set("Authorization", "Bearer "+string(token))
			if resp, err := g.client.Do(req); err != nil {
				slog.Debug("logout request failed", "err", err)
			} else {
				resp.Body.Close()
			}
		}
	}

	if err := g.storage.Delete(session.KeyToken); err != nil {
		return err
	}
	return g.store.Clear()
}

// Token returns the bearer token persisted at login, if any.
func (g *Gateway) Token() (string, bool) {
	token, ok, err := g.storage.Get(session.KeyToken)
	if err != nil || !ok {
		return "", false
	}
	return string(token), true
}
