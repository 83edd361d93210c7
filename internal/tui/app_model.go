package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/memoday/memoday-backend/internal/client"
	"github.com/memoday/memoday-backend/internal/domain"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenForm
)

type appModel struct {
	ctx           context.Context
	api           *client.Client
	cache         *client.ListCache
	currentScreen screen

	list   listModel
	detail detailModel
	form   formModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete int
}

func newAppModel(ctx context.Context, api *client.Client, cache *client.ListCache) appModel {
	return appModel{
		ctx:           ctx,
		api:           api,
		cache:         cache,
		currentScreen: screenList,
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.list.spinner.Tick, m.cmdLoadMemos(), m.cmdLoadSession())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == 0 {
					return m, nil
				}
				return m, m.cmdDeleteMemo(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = 0
			}
			return m, nil
		}
	case memosLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.list.memos = msg.memos
		if m.list.idx >= len(m.list.memos) {
			m.list.idx = len(m.list.memos) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case sessionLoadedMsg:
		if msg.err != nil {
			m.showErrorf("Not signed in: " + msg.err.Error())
			return m, nil
		}
		m.list.userName = msg.session.Name
		return m, nil
	case memoSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenList
		m.list.status = "Saved"
		return m, tea.Batch(m.cmdLoadMemos(), cmdClearStatus())
	case memoDeletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.pendingDelete = 0
		m.currentScreen = screenList
		m.list.status = "Deleted"
		return m, tea.Batch(m.cmdLoadMemos(), cmdClearStatus())
	case clearStatusMsg:
		m.list.status = ""
		m.detail.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.list.idx > 0 {
				m.list.idx--
			}
		case key.Matches(msg, keys.down):
			if m.list.idx < len(m.list.memos)-1 {
				m.list.idx++
			}
		case key.Matches(msg, keys.enter):
			memo, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.detail.memo = memo
			m.currentScreen = screenDetail
		case key.Matches(msg, keys.newMemo):
			m.form = newFormModel(nil)
			m.currentScreen = screenForm
		case key.Matches(msg, keys.edit):
			memo, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.form = newFormModel(&memo)
			m.currentScreen = screenForm
		case key.Matches(msg, keys.delete):
			memo, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.showConfirm = true
			m.confirm.message = memo.Title
			m.pendingDelete = memo.ID
		case key.Matches(msg, keys.reload):
			if m.list.loading {
				return m, nil
			}
			m.list.loading = true
			return m, tea.Batch(m.list.spinner.Tick, m.cmdReloadMemos())
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.list.loading {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.edit):
		memo := m.detail.memo
		m.form = newFormModel(&memo)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = m.detail.memo.Title
		m.pendingDelete = m.detail.memo.ID
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = backFromForm(m.form.editing)
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.form = switchFocus(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.save):
			if m.form.submitting {
				return m, nil
			}
			req := m.form.toRequest()
			if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
				m.showErrorf("Title and content are required")
				return m, nil
			}
			m.form.submitting = true
			if m.form.editing {
				return m, m.cmdUpdateMemo(m.form.memoID, req)
			}
			return m, m.cmdCreateMemo(req)
		}
	}

	var cmd tea.Cmd
	if m.form.focus == 0 {
		m.form.title, cmd = m.form.title.Update(msg)
	} else {
		m.form.content, cmd = m.form.content.Update(msg)
	}
	return m, cmd
}

func (m appModel) cmdLoadMemos() tea.Cmd {
	ctx := m.ctx
	cache := m.cache
	return func() tea.Msg {
		memos, err := cache.Memos(ctx)
		return memosLoadedMsg{memos: memos, err: err}
	}
}

func (m appModel) cmdReloadMemos() tea.Cmd {
	ctx := m.ctx
	cache := m.cache
	return func() tea.Msg {
		memos, err := cache.Revalidate(ctx)
		return memosLoadedMsg{memos: memos, err: err}
	}
}

func (m appModel) cmdLoadSession() tea.Cmd {
	ctx := m.ctx
	api := m.api
	return func() tea.Msg {
		session, err := api.Me(ctx)
		return sessionLoadedMsg{session: session, err: err}
	}
}

func (m appModel) cmdCreateMemo(req domain.MemoRequest) tea.Cmd {
	ctx := m.ctx
	cache := m.cache
	return func() tea.Msg {
		_, err := cache.Create(ctx, req)
		return memoSavedMsg{err: err}
	}
}

func (m appModel) cmdUpdateMemo(id int, req domain.MemoRequest) tea.Cmd {
	ctx := m.ctx
	cache := m.cache
	return func() tea.Msg {
		_, err := cache.Update(ctx, id, req)
		return memoSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteMemo(id int) tea.Cmd {
	ctx := m.ctx
	cache := m.cache
	return func() tea.Msg {
		err := cache.Delete(ctx, id)
		return memoDeletedMsg{err: err}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func backFromForm(editing bool) screen {
	if editing {
		return screenDetail
	}
	return screenList
}

func switchFocus(m formModel) formModel {
	if m.focus == 0 {
		m.title.Blur()
		m.content.Focus()
		m.focus = 1
		return m
	}
	m.content.Blur()
	m.title.Focus()
	m.focus = 0
	return m
}
