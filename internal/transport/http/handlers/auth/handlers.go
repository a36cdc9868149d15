package authhandler

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"hradmin/internal/domain/auth"
	"hradmin/internal/platform/requestctx"
	"hradmin/internal/transport/http/api"
	"hradmin/internal/transport/http/middleware"
)

type Handler struct {
	Store    *auth.Store
	Secret   string
	TokenTTL time.Duration
}

func NewHandler(store *auth.Store, secret string, tokenTTL time.Duration) *Handler {
	return &Handler{Store: store, Secret: secret, TokenTTL: tokenTTL}
}

type loginRequest struct {
	StaffID  string `json:"staffId"`
	Password string `json:"password"`
}

type loginUser struct {
	StaffID   string    `json:"staffId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      auth.Role `json:"role"`
	SectionID string    `json:"sectionId,omitempty"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}

	staffID, err := parseStaffID(payload.StaffID)
	if err != nil {
		// Non-numeric staff IDs fail the same way as bad passwords.
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", requestctx.GetRequestID(r.Context()))
		return
	}

	creds, err := h.Store.FindCredentials(r.Context(), staffID)
	if err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", requestctx.GetRequestID(r.Context()))
		return
	}

	if err := auth.CheckPassword(creds.PasswordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", requestctx.GetRequestID(r.Context()))
		return
	}

	role := auth.DeriveRole(creds.IsHR, creds.ManagesSection)

	sessionID, err := generateToken()
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", requestctx.GetRequestID(r.Context()))
		return
	}
	if err := h.Store.CreateSession(r.Context(), creds.StaffID, auth.HashToken(sessionID), time.Now().Add(h.TokenTTL)); err != nil {
		api.Fail(w, http.StatusInternalServerError, "session_error", "failed to start session", requestctx.GetRequestID(r.Context()))
		return
	}

	claims := auth.Claims{StaffID: creds.StaffID, Role: role, SessionID: sessionID}
	user := loginUser{
		StaffID:   strconv.FormatInt(creds.StaffID, 10),
		FirstName: creds.FirstName,
		LastName:  creds.LastName,
		Role:      role,
	}
	if role == auth.RoleDepartmentManager && creds.SectionID != nil {
		claims.SectionID = *creds.SectionID
		user.SectionID = strconv.FormatInt(*creds.SectionID, 10)
	}

	token, err := auth.GenerateToken(h.Secret, claims, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", requestctx.GetRequestID(r.Context()))
		return
	}

	api.Success(w, map[string]any{"token": token, "user": user}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if user, ok := middleware.GetUser(r.Context()); ok && user.SessionID != "" {
		if err := h.Store.RevokeSession(r.Context(), user.StaffID, auth.HashToken(user.SessionID)); err != nil {
			slog.Warn("logout session revoke failed", "staffId", user.StaffID, "err", err)
		}
	}
	api.Success(w, map[string]string{"status": "logged_out"}, requestctx.GetRequestID(r.Context()))
}

func parseStaffID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}

func generateToken() (string, error) {
	buff := make([]byte, 32)
	if _, err := rand.Read(buff); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buff), nil
}
