package tui

import (
	"github.com/memoday/memoday-backend/internal/domain"
)

type memosLoadedMsg struct {
	memos []domain.MemoResponse
	err   error
}

type memoSavedMsg struct {
	err error
}

type memoDeletedMsg struct {
	err error
}

type sessionLoadedMsg struct {
	session *domain.SessionInfo
	err     error
}

type clearStatusMsg struct{}
