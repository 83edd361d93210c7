package domain

import "time"

// Memo represents a user's memo
type Memo struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"column:title;size:255" json:"title"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	UserID    string    `gorm:"column:user_id;size:64;index" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName returns the table name
func (Memo) TableName() string {
	return "memos"
}

// MemoRequest represents request for creating/updating a memo.
// user_id is never accepted from the client; ownership comes from the session.
type MemoRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// MemoResponse represents memo response
type MemoResponse struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToResponse converts a Memo to its API representation
func (m *Memo) ToResponse() *MemoResponse {
	return &MemoResponse{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
		UpdatedAt: m.UpdatedAt.Format(time.RFC3339),
	}
}

// DeleteMemoResponse confirms a successful delete
type DeleteMemoResponse struct {
	Message string `json:"message"`
}
