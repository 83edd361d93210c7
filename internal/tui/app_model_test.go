package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/memoday/memoday-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(memos ...domain.MemoResponse) appModel {
	m := newAppModel(context.Background(), nil, nil)
	m.list.loading = false
	m.list.memos = memos
	return m
}

func TestLoadedList_ClampsSelectionWhenListShrinks(t *testing.T) {
	m := newTestModel(
		domain.MemoResponse{ID: 1, Title: "a"},
		domain.MemoResponse{ID: 2, Title: "b"},
		domain.MemoResponse{ID: 3, Title: "c"},
	)
	m.list.idx = 2

	next, _ := m.Update(memosLoadedMsg{memos: []domain.MemoResponse{{ID: 1, Title: "a"}}})
	m = next.(appModel)

	assert.Equal(t, 0, m.list.idx)
}

func TestLoadedList_EmptyResetsSelection(t *testing.T) {
	m := newTestModel(domain.MemoResponse{ID: 1, Title: "a"})
	m.list.idx = 0

	next, _ := m.Update(memosLoadedMsg{memos: nil})
	m = next.(appModel)

	assert.Equal(t, 0, m.list.idx)
	_, ok := m.list.current()
	assert.False(t, ok)
}

func TestNewMemo_OpensFormScreen(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(keyRunes('n'))
	m = next.(appModel)

	assert.Equal(t, screenForm, m.currentScreen)
	assert.False(t, m.form.editing)
}

func TestEdit_RequiresSelection(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(keyRunes('e'))
	m = next.(appModel)

	assert.Equal(t, screenList, m.currentScreen)
}

func TestEnter_OpensDetailOfSelected(t *testing.T) {
	m := newTestModel(
		domain.MemoResponse{ID: 1, Title: "a"},
		domain.MemoResponse{ID: 2, Title: "b"},
	)
	m.list.idx = 1

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(appModel)

	require.Equal(t, screenDetail, m.currentScreen)
	assert.Equal(t, 2, m.detail.memo.ID)
}

func TestDeleteConfirm_BlocksOtherKeysUntilAnswered(t *testing.T) {
	m := newTestModel(domain.MemoResponse{ID: 7, Title: "keep me"})

	next, _ := m.Update(keyRunes('d'))
	m = next.(appModel)
	require.True(t, m.showConfirm)
	assert.Equal(t, 7, m.pendingDelete)

	// Navigation keys are swallowed while the overlay is up
	next, _ = m.Update(keyRunes('e'))
	m = next.(appModel)
	assert.True(t, m.showConfirm)
	assert.Equal(t, screenList, m.currentScreen)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(appModel)
	assert.False(t, m.showConfirm)
	assert.Equal(t, 0, m.pendingDelete)
}

func TestErrorOverlay_LeavesScreenIntact(t *testing.T) {
	m := newTestModel(domain.MemoResponse{ID: 1, Title: "a"})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(appModel)
	require.Equal(t, screenDetail, m.currentScreen)

	next, _ = m.Update(memoDeletedMsg{err: assert.AnError})
	m = next.(appModel)
	assert.True(t, m.showError)
	assert.Equal(t, screenDetail, m.currentScreen)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(appModel)
	assert.False(t, m.showError)
	assert.Equal(t, screenDetail, m.currentScreen)
}

func TestFormSave_RejectsBlankFields(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(keyRunes('n'))
	m = next.(appModel)
	m.form.title.SetValue("   ")
	m.form.content.SetValue("body")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(appModel)

	assert.True(t, m.showError)
	assert.Equal(t, screenForm, m.currentScreen)
	assert.False(t, m.form.submitting)
}

func TestFormEsc_ReturnsToOrigin(t *testing.T) {
	m := newTestModel(domain.MemoResponse{ID: 1, Title: "a"})

	// Editing from detail goes back to detail
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(appModel)
	next, _ = m.Update(keyRunes('e'))
	m = next.(appModel)
	require.Equal(t, screenForm, m.currentScreen)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(appModel)
	assert.Equal(t, screenDetail, m.currentScreen)
}
