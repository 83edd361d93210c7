package domain

import "time"

// OAuthProvider represents supported OAuth providers
type OAuthProvider string

const (
	OAuthProviderGoogle OAuthProvider = "google"
	OAuthProviderGitHub OAuthProvider = "github"
)

// OAuthAccount links an external OAuth identity to a local user id
type OAuthAccount struct {
	ID           int64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID       string        `gorm:"column:user_id;uniqueIndex;size:64" json:"user_id"`
	Provider     OAuthProvider `gorm:"column:provider;index:idx_provider_uid" json:"provider"`
	ProviderUID  string        `gorm:"column:provider_uid;index:idx_provider_uid" json:"provider_uid"`
	Email        string        `gorm:"column:email" json:"email"`
	Name         string        `gorm:"column:name" json:"name"`
	ProfileImage string        `gorm:"column:profile_image" json:"profile_image"`
	AccessToken  string        `gorm:"column:access_token" json:"-"`
	RefreshToken string        `gorm:"column:refresh_token" json:"-"`
	CreatedAt    time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OAuthAccount) TableName() string {
	return "oauth_accounts"
}

// OAuthConfig holds configuration for an OAuth provider
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// OAuthUserInfo represents user info retrieved from an OAuth provider
type OAuthUserInfo struct {
	Provider     OAuthProvider `json:"provider"`
	ProviderUID  string        `json:"provider_uid"`
	Email        string        `json:"email"`
	Name         string        `json:"name"`
	ProfileImage string        `json:"profile_image"`
}

// SessionInfo is returned by the /auth/me endpoint
type SessionInfo struct {
	UserID string `json:"user_id"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
}

// OAuthLoginResult is produced after a successful OAuth callback
type OAuthLoginResult struct {
	SessionToken string `json:"session_token"`
	IsNewUser    bool   `json:"is_new_user"`
	UserID       string `json:"user_id"`
}
