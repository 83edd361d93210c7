package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/memoday/memoday-backend/internal/common"
	"github.com/memoday/memoday-backend/internal/domain"
	"github.com/memoday/memoday-backend/pkg/jwt"
	pkglogger "github.com/memoday/memoday-backend/pkg/logger"
	"gorm.io/gorm"
)

// OAuthService handles OAuth2 social login flows
type OAuthService struct {
	db         *gorm.DB
	jwtManager *jwt.Manager
	providers  map[domain.OAuthProvider]*domain.OAuthConfig
	httpClient *http.Client
}

// NewOAuthService creates a new OAuthService
func NewOAuthService(db *gorm.DB, jwtManager *jwt.Manager) *OAuthService {
	return &OAuthService{
		db:         db,
		jwtManager: jwtManager,
		providers:  make(map[domain.OAuthProvider]*domain.OAuthConfig),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// RegisterProvider registers an OAuth provider configuration
func (s *OAuthService) RegisterProvider(provider domain.OAuthProvider, cfg *domain.OAuthConfig) {
	s.providers[provider] = cfg
}

// GetAuthURL returns the OAuth authorization URL for the given provider
func (s *OAuthService) GetAuthURL(provider domain.OAuthProvider, state string) (string, error) {
	cfg, ok := s.providers[provider]
	if !ok {
		return "", common.ErrUnknownProvider
	}

	switch provider {
	case domain.OAuthProviderGoogle:
		params := url.Values{
			"response_type": {"code"},
			"client_id":     {cfg.ClientID},
			"redirect_uri":  {cfg.RedirectURL},
			"scope":         {strings.Join(cfg.Scopes, " ")},
			"state":         {state},
			"access_type":   {"offline"},
		}
		return "https://accounts.google.com/o/oauth2/v2/auth?" + params.Encode(), nil

	case domain.OAuthProviderGitHub:
		params := url.Values{
			"client_id":    {cfg.ClientID},
			"redirect_uri": {cfg.RedirectURL},
			"scope":        {strings.Join(cfg.Scopes, " ")},
			"state":        {state},
		}
		return "https://github.com/login/oauth/authorize?" + params.Encode(), nil

	default:
		return "", common.ErrUnknownProvider
	}
}

// HandleCallback exchanges the authorization code, fetches the provider
// profile, links or creates the local account and issues a session token.
func (s *OAuthService) HandleCallback(ctx context.Context, provider domain.OAuthProvider, code string) (*domain.OAuthLoginResult, error) {
	cfg, ok := s.providers[provider]
	if !ok {
		return nil, common.ErrUnknownProvider
	}

	tokenResp, err := s.exchangeCode(ctx, provider, cfg, code)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}

	accessToken, ok := tokenResp["access_token"].(string)
	if !ok || accessToken == "" {
		return nil, fmt.Errorf("access_token not found in token response")
	}
	userInfo, err := s.getUserInfo(ctx, provider, accessToken)
	if err != nil {
		return nil, fmt.Errorf("get user info failed: %w", err)
	}

	var account domain.OAuthAccount
	result := s.db.WithContext(ctx).
		Where("provider = ? AND provider_uid = ?", provider, userInfo.ProviderUID).
		First(&account)

	isNewUser := false
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		isNewUser = true
		account = domain.OAuthAccount{
			UserID:       fmt.Sprintf("oauth_%s_%s", provider, userInfo.ProviderUID),
			Provider:     provider,
			ProviderUID:  userInfo.ProviderUID,
			Email:        userInfo.Email,
			Name:         userInfo.Name,
			ProfileImage: userInfo.ProfileImage,
			AccessToken:  accessToken,
		}
		if rt, ok := tokenResp["refresh_token"].(string); ok {
			account.RefreshToken = rt
		}
		if err := s.db.WithContext(ctx).Create(&account).Error; err != nil {
			return nil, fmt.Errorf("create oauth account failed: %w", err)
		}
	} else if result.Error != nil {
		return nil, result.Error
	} else {
		updates := map[string]interface{}{
			"access_token": accessToken,
			"name":         userInfo.Name,
			"email":        userInfo.Email,
		}
		if rt, ok := tokenResp["refresh_token"].(string); ok && rt != "" {
			updates["refresh_token"] = rt
		}
		if err := s.db.WithContext(ctx).Model(&account).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("update oauth account failed: %w", err)
		}
	}

	sessionToken, err := s.jwtManager.GenerateSessionToken(account.UserID, userInfo.Name, userInfo.Email)
	if err != nil {
		return nil, fmt.Errorf("generate session token failed: %w", err)
	}

	pkglogger.GetLogger().Info().
		Str("provider", string(provider)).
		Str("user_id", account.UserID).
		Bool("new_user", isNewUser).
		Msg("oauth login")

	return &domain.OAuthLoginResult{
		SessionToken: sessionToken,
		IsNewUser:    isNewUser,
		UserID:       account.UserID,
	}, nil
}

// exchangeCode exchanges authorization code for access token
func (s *OAuthService) exchangeCode(ctx context.Context, provider domain.OAuthProvider, cfg *domain.OAuthConfig, code string) (map[string]interface{}, error) {
	var tokenURL string
	params := url.Values{
		"grant_type":   {"authorization_code"},
		"code":         {code},
		"redirect_uri": {cfg.RedirectURL},
	}
	params.Set("client_id", cfg.ClientID)
	params.Set("client_secret", cfg.ClientSecret)

	switch provider {
	case domain.OAuthProviderGoogle:
		tokenURL = "https://oauth2.googleapis.com/token"
	case domain.OAuthProviderGitHub:
		tokenURL = "https://github.com/login/oauth/access_token"
	default:
		return nil, common.ErrUnknownProvider
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read token response body failed: %w", err)
	}
	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse token response failed: %w", err)
	}

	if errMsg, ok := result["error"]; ok {
		return nil, fmt.Errorf("oauth error: %v", errMsg)
	}

	return result, nil
}

// getUserInfo fetches user profile from the OAuth provider
func (s *OAuthService) getUserInfo(ctx context.Context, provider domain.OAuthProvider, accessToken string) (*domain.OAuthUserInfo, error) {
	var apiURL string

	switch provider {
	case domain.OAuthProviderGoogle:
		apiURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	case domain.OAuthProviderGitHub:
		apiURL = "https://api.github.com/user"
	default:
		return nil, common.ErrUnknownProvider
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create user info request failed: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read user info response body failed: %w", err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	return parseUserInfo(provider, raw)
}

// parseUserInfo parses provider-specific user info into a common struct
func parseUserInfo(provider domain.OAuthProvider, raw map[string]interface{}) (*domain.OAuthUserInfo, error) {
	info := &domain.OAuthUserInfo{Provider: provider}

	switch provider {
	case domain.OAuthProviderGoogle:
		if id, ok := raw["id"]; ok {
			info.ProviderUID = fmt.Sprintf("%v", id)
		}
		info.Email, _ = raw["email"].(string)
		info.Name, _ = raw["name"].(string)
		info.ProfileImage, _ = raw["picture"].(string)

	case domain.OAuthProviderGitHub:
		if id, ok := raw["id"].(float64); ok {
			info.ProviderUID = fmt.Sprintf("%.0f", id)
		}
		info.Email, _ = raw["email"].(string)
		info.Name, _ = raw["name"].(string)
		if info.Name == "" {
			info.Name, _ = raw["login"].(string)
		}
		info.ProfileImage, _ = raw["avatar_url"].(string)
	}

	if info.ProviderUID == "" {
		return nil, fmt.Errorf("could not extract provider UID")
	}

	return info, nil
}
