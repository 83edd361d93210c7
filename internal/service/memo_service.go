package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/memoday/memoday-backend/internal/common"
	"github.com/memoday/memoday-backend/internal/domain"
	"github.com/memoday/memoday-backend/internal/repository"
	"github.com/memoday/memoday-backend/pkg/cache"
	"github.com/memoday/memoday-backend/pkg/logger"
)

// MemoService memo business logic
type MemoService interface {
	List(ctx context.Context, userID string) ([]domain.MemoResponse, error)
	Get(ctx context.Context, userID string, id int) (*domain.MemoResponse, error)
	Create(ctx context.Context, userID string, req *domain.MemoRequest) (*domain.MemoResponse, error)
	Update(ctx context.Context, userID string, id int, req *domain.MemoRequest) (*domain.MemoResponse, error)
	Delete(ctx context.Context, userID string, id int) error
}

type memoService struct {
	memoRepo repository.MemoRepository
	cacheSvc cache.Service
}

// NewMemoService creates a new MemoService. cacheSvc may be nil; the
// service then always reads through to the store.
func NewMemoService(memoRepo repository.MemoRepository, cacheSvc cache.Service) MemoService {
	return &memoService{
		memoRepo: memoRepo,
		cacheSvc: cacheSvc,
	}
}

// validate enforces the create/update contract: both fields non-empty
func validate(req *domain.MemoRequest) error {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return common.ErrInvalidInput
	}
	return nil
}

// List returns all memos owned by userID, newest first
func (s *memoService) List(ctx context.Context, userID string) ([]domain.MemoResponse, error) {
	if s.cacheSvc != nil && s.cacheSvc.IsAvailable() {
		if data, err := s.cacheSvc.GetMemoList(ctx, userID); err == nil {
			var cached []domain.MemoResponse
			if json.Unmarshal(data, &cached) == nil {
				return cached, nil
			}
		}
	}

	memos, err := s.memoRepo.ListByOwner(userID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.MemoResponse, 0, len(memos))
	for i := range memos {
		responses = append(responses, *memos[i].ToResponse())
	}

	if s.cacheSvc != nil {
		if err := s.cacheSvc.SetMemoList(ctx, userID, responses); err != nil {
			logger.GetLogger().Warn().Err(err).Str("user_id", userID).Msg("memo list cache write failed")
		}
	}

	return responses, nil
}

// Get returns a single memo owned by userID
func (s *memoService) Get(ctx context.Context, userID string, id int) (*domain.MemoResponse, error) {
	memo, err := s.memoRepo.FindByIDAndOwner(id, userID)
	if err != nil {
		return nil, err
	}
	if memo == nil {
		return nil, common.ErrMemoNotFound
	}
	return memo.ToResponse(), nil
}

// Create persists a new memo owned by userID. Any client-supplied owner
// is ignored; MemoRequest carries no user id field at all.
func (s *memoService) Create(ctx context.Context, userID string, req *domain.MemoRequest) (*domain.MemoResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	memo := &domain.Memo{
		Title:   req.Title,
		Content: req.Content,
		UserID:  userID,
	}
	if err := s.memoRepo.Create(memo); err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)
	return memo.ToResponse(), nil
}

// Update overwrites title and content of a memo owned by userID
func (s *memoService) Update(ctx context.Context, userID string, id int, req *domain.MemoRequest) (*domain.MemoResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	memo, err := s.memoRepo.FindByIDAndOwner(id, userID)
	if err != nil {
		return nil, err
	}
	if memo == nil {
		return nil, common.ErrMemoNotFound
	}

	memo.Title = req.Title
	memo.Content = req.Content
	if err := s.memoRepo.Update(memo); err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)
	return memo.ToResponse(), nil
}

// Delete removes a memo owned by userID
func (s *memoService) Delete(ctx context.Context, userID string, id int) error {
	affected, err := s.memoRepo.Delete(id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrMemoNotFound
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *memoService) invalidate(ctx context.Context, userID string) {
	if s.cacheSvc == nil {
		return
	}
	if err := s.cacheSvc.InvalidateMemoList(ctx, userID); err != nil {
		logger.GetLogger().Warn().Err(err).Str("user_id", userID).Msg("memo list cache invalidation failed")
	}
}
