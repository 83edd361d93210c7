package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/memoday/memoday-backend/internal/domain"
)

// formModel edits a memo draft. A nil memo starts a new one.
type formModel struct {
	title      textinput.Model
	content    textarea.Model
	focus      int
	editing    bool
	memoID     int
	submitting bool
}

func newFormModel(memo *domain.MemoResponse) formModel {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 255
	title.Width = 50
	title.Focus()

	content := textarea.New()
	content.Placeholder = "Write your memo..."
	content.SetWidth(60)
	content.SetHeight(8)

	m := formModel{title: title, content: content}
	if memo == nil {
		return m
	}

	m.editing = true
	m.memoID = memo.ID
	m.title.SetValue(memo.Title)
	m.content.SetValue(memo.Content)
	return m
}

func (m formModel) toRequest() domain.MemoRequest {
	return domain.MemoRequest{
		Title:   m.title.Value(),
		Content: m.content.Value(),
	}
}

func (m formModel) View() string {
	header := "New memo"
	if m.editing {
		header = "Editing: " + m.title.Value()
	}

	out := titleStyle.Render(header) + "\n\n"
	out += "Title\n" + m.title.View() + "\n\n"
	out += "Content\n" + m.content.View() + "\n\n"
	if m.submitting {
		out += "Saving...\n\n"
	}
	out += helpStyle.Render("ctrl+s save  tab switch field  esc cancel")
	return out
}
