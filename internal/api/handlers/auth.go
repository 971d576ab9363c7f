// internal/api/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/baharkarakas/pos-backend/internal/api/httpx"
	"github.com/baharkarakas/pos-backend/internal/auth"
	"github.com/baharkarakas/pos-backend/internal/services"
)

type AuthHandler struct {
	TM      *auth.TokenManager
	Workers *services.WorkerService
}

func NewAuthHandler(tm *auth.TokenManager, ws *services.WorkerService) *AuthHandler {
	return &AuthHandler{TM: tm, Workers: ws}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResp struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // seconds
	Role         string `json:"role"`
	UserID       string `json:"user_id"`
}

func (h *AuthHandler) issue(w http.ResponseWriter, userID, role string) {
	pair, err := h.TM.GeneratePair(userID, role)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "token generation failed", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tokenResp{
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
		ExpiresIn:    int64(time.Until(pair.AccessExp).Truncate(time.Second).Seconds()),
		Role:         role,
		UserID:       userID,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, err)
		return
	}
	u, err := h.Workers.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.issue(w, u.ID, u.Role)
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshReq
	if err := httpx.DecodeJSON(r, &req); err != nil || req.RefreshToken == "" {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request", nil)
		return
	}
	claims, err := h.TM.ParseRefresh(req.RefreshToken)
	if err != nil {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid refresh token", nil)
		return
	}
	// role changes and disabling take effect on refresh
	u, err := h.Workers.ActiveUser(r.Context(), claims.UserID)
	if errors.Is(err, services.ErrNotFound) {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid refresh token", nil)
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	h.issue(w, u.ID, u.Role)
}
