package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/memoday/memoday-backend/internal/common"
	"github.com/memoday/memoday-backend/internal/domain"
	"github.com/memoday/memoday-backend/internal/middleware"
	"github.com/memoday/memoday-backend/internal/service"
)

const stateCookie = "memoday_oauth_state"

// AuthHandler handles OAuth sign-in and session endpoints
type AuthHandler struct {
	oauthSvc      *service.OAuthService
	sessionCookie string
	frontendURL   string
	secureCookies bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(oauthSvc *service.OAuthService, sessionCookie, frontendURL string, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		oauthSvc:      oauthSvc,
		sessionCookie: sessionCookie,
		frontendURL:   frontendURL,
		secureCookies: secureCookies,
	}
}

// Login handles GET /api/auth/:provider/login
// @Summary Start OAuth sign-in
// @Description Redirects to the provider's authorization page
// @Tags auth
// @Param provider path string true "OAuth provider (google, github)"
// @Success 302
// @Failure 404 {object} common.APIResponse
// @Router /auth/{provider}/login [get]
func (h *AuthHandler) Login(c *gin.Context) {
	provider := domain.OAuthProvider(c.Param("provider"))

	state := uuid.New().String()
	authURL, err := h.oauthSvc.GetAuthURL(provider, state)
	if err != nil {
		common.ErrorResponse(c, http.StatusNotFound, "Unknown provider", nil)
		return
	}

	// State nonce round-trips through a short-lived cookie
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, state, 600, "/", "", h.secureCookies, true)
	c.Redirect(http.StatusFound, authURL)
}

// Callback handles GET /api/auth/:provider/callback
// @Summary Complete OAuth sign-in
// @Description Exchanges the authorization code, establishes the session cookie and redirects to the app
// @Tags auth
// @Param provider path string true "OAuth provider (google, github)"
// @Param code query string true "Authorization code"
// @Param state query string true "State nonce"
// @Success 302
// @Failure 401 {object} common.APIResponse
// @Router /auth/{provider}/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	provider := domain.OAuthProvider(c.Param("provider"))

	state := c.Query("state")
	wantState, err := c.Cookie(stateCookie)
	if err != nil || state == "" || state != wantState {
		common.ErrorResponse(c, http.StatusUnauthorized, "Invalid OAuth state", nil)
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", h.secureCookies, true)

	code := c.Query("code")
	if code == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "Missing authorization code", nil)
		return
	}

	result, err := h.oauthSvc.HandleCallback(c.Request.Context(), provider, code)
	if err != nil {
		if errors.Is(err, common.ErrUnknownProvider) {
			common.ErrorResponse(c, http.StatusNotFound, "Unknown provider", nil)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Sign-in failed", err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.sessionCookie, result.SessionToken, 86400, "/", "", h.secureCookies, true)
	c.Redirect(http.StatusFound, h.frontendURL)
}

// Me handles GET /api/auth/me
// @Summary Current session
// @Description Returns the identity resolved from the session token
// @Tags auth
// @Produce json
// @Success 200 {object} common.APIResponse{data=domain.SessionInfo}
// @Failure 401 {object} common.APIResponse
// @Security SessionCookie
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	common.SuccessResponse(c, domain.SessionInfo{
		UserID: middleware.GetUserID(c),
		Name:   middleware.GetUserName(c),
		Email:  middleware.GetUserEmail(c),
	}, nil)
}

// Logout handles POST /api/auth/logout
// @Summary Sign out
// @Description Clears the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} common.APIResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.sessionCookie, "", -1, "/", "", h.secureCookies, true)
	common.SuccessResponse(c, gin.H{"message": "Signed out"}, nil)
}
