package service

import (
	"context"
	"errors"
	"testing"

	"github.com/memoday/memoday-backend/internal/common"
	"github.com/memoday/memoday-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mock MemoRepository ---

type mockMemoRepo struct {
	mock.Mock
}

func (m *mockMemoRepo) Create(memo *domain.Memo) error {
	return m.Called(memo).Error(0)
}

func (m *mockMemoRepo) ListByOwner(userID string) ([]domain.Memo, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Memo), args.Error(1)
}

func (m *mockMemoRepo) FindByIDAndOwner(id int, userID string) (*domain.Memo, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Memo), args.Error(1)
}

func (m *mockMemoRepo) Update(memo *domain.Memo) error {
	return m.Called(memo).Error(0)
}

func (m *mockMemoRepo) Delete(id int, userID string) (int64, error) {
	args := m.Called(id, userID)
	return args.Get(0).(int64), args.Error(1)
}

func TestCreate_AssignsOwnerFromSession(t *testing.T) {
	repo := new(mockMemoRepo)
	svc := NewMemoService(repo, nil)

	repo.On("Create", mock.MatchedBy(func(memo *domain.Memo) bool {
		return memo.UserID == "user-1" && memo.Title == "a" && memo.Content == "b"
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*domain.Memo).ID = 42
	}).Return(nil)

	resp, err := svc.Create(context.Background(), "user-1", &domain.MemoRequest{Title: "a", Content: "b"})

	assert.NoError(t, err)
	assert.Equal(t, 42, resp.ID)
	assert.Equal(t, "user-1", resp.UserID)
	repo.AssertExpectations(t)
}

func TestCreate_Validation(t *testing.T) {
	repo := new(mockMemoRepo)
	svc := NewMemoService(repo, nil)

	cases := []struct {
		name    string
		req     domain.MemoRequest
		wantErr error
	}{
		{"both empty", domain.MemoRequest{}, common.ErrInvalidInput},
		{"empty title", domain.MemoRequest{Content: "b"}, common.ErrInvalidInput},
		{"empty content", domain.MemoRequest{Title: "a"}, common.ErrInvalidInput},
		{"whitespace only", domain.MemoRequest{Title: "  ", Content: "\t"}, common.ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), "user-1", &tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	// Repository must never be reached on validation failure
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestGet_Owned(t *testing.T) {
	repo := new(mockMemoRepo)
	svc := NewMemoService(repo, nil)

	repo.On("FindByIDAndOwner", 7, "user-1").Return(&domain.Memo{
		ID: 7, Title: "a", Content: "b", UserID: "user-1",
	}, nil)

	resp, err := svc.Get(context.Background(), "user-1", 7)

	assert.NoError(t, err)
	assert.Equal(t, 7, resp.ID)
	assert.Equal(t, "a", resp.Title)
	repo.AssertExpectations(t)
}

func TestGet_ForeignMemoIsNotFound(t *testing.T) {
	repo := new(mockMemoRepo)
	svc := NewMemoService(repo, nil)

	// Foreign and absent ids are indistinguishable at the repo layer
	repo.On("FindByIDAndOwner", 7, "user-2").Return(nil, nil)

	resp, err := svc.Get(context.Background(), "user-2", 7)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, common.ErrMemoNotFound)
}

func TestGet_StoreErrorPropagates(t *testing.T) {
	repo := new(mockMemoRepo)
	svc := NewMemoService(repo, nil)

	repo.On("FindByIDAndOwner", 7, "user-1").Return(nil, errors.New("conn reset"))

	_, err := svc.Get(context.Background(), "user-1", 7)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrMemoNotFound)
}

func TestUpdate_ForeignMemoIsNotFound(t *testing.T) {
	repo := new(mockMemoRepo)
	svc := NewMemoService(repo, nil)

	// user-2 asking for user-1's memo: the owner filter yields no match
	repo.On("FindByIDAndOwner", 7, "user-2").Return(nil, nil)

	_, err := svc.Update(context.Background(), "user-2", 7, &domain.MemoRequest{Title: "x", Content: "y"})

	assert.ErrorIs(t, err, common.ErrMemoNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestUpdate_KeepsIdentityFields(t *testing.T) {
	repo := new(mockMemoRepo)
	svc := NewMemoService(repo, nil)

	existing := &domain.Memo{ID: 7, UserID: "user-1", Title: "old", Content: "old"}
	repo.On("FindByIDAndOwner", 7, "user-1").Return(existing, nil)
	repo.On("Update", mock.MatchedBy(func(memo *domain.Memo) bool {
		return memo.ID == 7 && memo.UserID == "user-1" &&
			memo.Title == "new" && memo.Content == "newer"
	})).Return(nil)

	resp, err := svc.Update(context.Background(), "user-1", 7, &domain.MemoRequest{Title: "new", Content: "newer"})

	assert.NoError(t, err)
	assert.Equal(t, 7, resp.ID)
	assert.Equal(t, "user-1", resp.UserID)
	repo.AssertExpectations(t)
}

func TestDelete_ForeignMemoIsNotFound(t *testing.T) {
	repo := new(mockMemoRepo)
	svc := NewMemoService(repo, nil)

	repo.On("Delete", 7, "user-2").Return(int64(0), nil)

	err := svc.Delete(context.Background(), "user-2", 7)

	assert.ErrorIs(t, err, common.ErrMemoNotFound)
}

func TestDelete_Owned(t *testing.T) {
	repo := new(mockMemoRepo)
	svc := NewMemoService(repo, nil)

	repo.On("Delete", 3, "user-1").Return(int64(1), nil)

	assert.NoError(t, svc.Delete(context.Background(), "user-1", 3))
}

func TestList_PropagatesStoreErrorOpaque(t *testing.T) {
	repo := new(mockMemoRepo)
	svc := NewMemoService(repo, nil)

	repo.On("ListByOwner", "user-1").Return(nil, errors.New("dial tcp: connection refused"))

	_, err := svc.List(context.Background(), "user-1")

	assert.Error(t, err)
}

func TestList_OwnerScoped(t *testing.T) {
	repo := new(mockMemoRepo)
	svc := NewMemoService(repo, nil)

	repo.On("ListByOwner", "user-1").Return([]domain.Memo{
		{ID: 2, UserID: "user-1", Title: "newest"},
		{ID: 1, UserID: "user-1", Title: "older"},
	}, nil)

	memos, err := svc.List(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Len(t, memos, 2)
	assert.Equal(t, "newest", memos[0].Title)
	for _, m := range memos {
		assert.Equal(t, "user-1", m.UserID)
	}
}
