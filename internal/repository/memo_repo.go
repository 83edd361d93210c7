package repository

import (
	"time"

	"github.com/memoday/memoday-backend/internal/domain"
	"gorm.io/gorm"
)

// MemoRepository handles memo data operations.
// Every read and write is scoped to the owning user; there is no
// unfiltered access path.
type MemoRepository interface {
	Create(memo *domain.Memo) error
	ListByOwner(userID string) ([]domain.Memo, error)
	FindByIDAndOwner(id int, userID string) (*domain.Memo, error)
	Update(memo *domain.Memo) error
	Delete(id int, userID string) (int64, error)
}

type memoRepository struct {
	db *gorm.DB
}

// NewMemoRepository creates a new MemoRepository
func NewMemoRepository(db *gorm.DB) MemoRepository {
	return &memoRepository{db: db}
}

// Create inserts a new memo; the store assigns id and timestamps
func (r *memoRepository) Create(memo *domain.Memo) error {
	return r.db.Create(memo).Error
}

// ListByOwner retrieves all memos owned by userID, newest first
func (r *memoRepository) ListByOwner(userID string) ([]domain.Memo, error) {
	var memos []domain.Memo
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&memos).Error; err != nil {
		return nil, err
	}
	return memos, nil
}

// FindByIDAndOwner retrieves a memo by id and owning user.
// Returns (nil, nil) when no owned memo matches, which callers map to
// Not-Found; foreign memos are indistinguishable from absent ones.
func (r *memoRepository) FindByIDAndOwner(id int, userID string) (*domain.Memo, error) {
	var memo domain.Memo
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&memo).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &memo, nil
}

// Update overwrites title and content of an existing memo.
// id, user_id and created_at are never written.
func (r *memoRepository) Update(memo *domain.Memo) error {
	memo.UpdatedAt = time.Now()
	return r.db.Model(&domain.Memo{}).
		Where("id = ? AND user_id = ?", memo.ID, memo.UserID).
		Updates(map[string]interface{}{
			"title":      memo.Title,
			"content":    memo.Content,
			"updated_at": memo.UpdatedAt,
		}).Error
}

// Delete removes a memo by id and owning user, returning affected rows
func (r *memoRepository) Delete(id int, userID string) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.Memo{})
	return result.RowsAffected, result.Error
}
