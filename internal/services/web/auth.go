package web

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/louisbranch/communal.kitchen/internal/services/web/platform/flash"
	"github.com/louisbranch/communal.kitchen/internal/services/web/platform/httpx"
	"github.com/louisbranch/communal.kitchen/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/communal.kitchen/internal/services/web/routepath"
	"github.com/louisbranch/communal.kitchen/internal/services/web/storage"
)

// handoffClaims is the internal claims type for sign-in handoff tokens.
type handoffClaims struct {
	jwt.RegisteredClaims
	DisplayName string `json:"name"`
	Email       string `json:"email"`
}

// handleAuthCallback consumes the signed handoff token minted by the auth
// surface and establishes a local session.
func (h *handler) handleAuthCallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, err := h.verifyHandoffToken(r.URL.Query().Get("token"))
	if err != nil {
		log.Printf("auth callback rejected: %v", err)
		flash.WriteWithPolicy(w, r, flash.NoticeError("web.auth.notice_invalid_token"), h.policy)
		http.Redirect(w, r, routepath.Landing, http.StatusFound)
		return
	}

	profile := storage.Profile{
		UserID:      claims.Subject,
		DisplayName: claims.DisplayName,
		Email:       claims.Email,
	}
	if err := h.store.PutProfile(httpx.RequestContext(r), profile); err != nil {
		log.Printf("upsert profile %s: %v", claims.Subject, err)
	}

	expiresAt := time.Now().Add(sessionTTL)
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(expiresAt) {
		expiresAt = claims.ExpiresAt.Time
	}
	sessionID := h.sessions.create(claims.Subject, claims.DisplayName, expiresAt)
	setSessionCookie(w, sessionID)
	flash.WriteWithPolicy(w, r, flash.NoticeSuccess("web.auth.notice_signed_in"), h.policy)
	http.Redirect(w, r, routepath.Recipes, http.StatusFound)
}

// verifyHandoffToken parses and validates an HS256 handoff token.
func (h *handler) verifyHandoffToken(raw string) (*handoffClaims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("token is required")
	}
	var claims handoffClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return []byte(h.config.SessionSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("parse handoff token: %w", err)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return nil, fmt.Errorf("handoff token has no subject")
	}
	return &claims, nil
}

// handleAuthLogout clears the current session.
func (h *handler) handleAuthLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !requestmeta.HasSameOriginProofWithPolicy(r, h.policy) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	if id := sessionIDFromRequest(r); id != "" {
		h.sessions.delete(id)
	}
	clearSessionCookie(w)
	flash.WriteWithPolicy(w, r, flash.NoticeInfo("web.auth.notice_signed_out"), h.policy)
	httpx.WriteRedirect(w, r, routepath.Landing)
}
