package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/memoday/memoday-backend/internal/domain"
)

type listModel struct {
	memos    []domain.MemoResponse
	idx      int
	loading  bool
	spinner  spinner.Model
	status   string
	userName string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s, loading: true}
}

func (m listModel) current() (domain.MemoResponse, bool) {
	if len(m.memos) == 0 || m.idx < 0 || m.idx >= len(m.memos) {
		return domain.MemoResponse{}, false
	}
	return m.memos[m.idx], true
}

func (m listModel) View() string {
	header := titleStyle.Render("Memoday")
	if m.userName != "" {
		header += helpStyle.Render("  signed in as " + m.userName)
	}
	if m.loading {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	if m.loading {
		out += "Loading memos...\n"
	} else if len(m.memos) == 0 {
		out += "No memos yet. Press n to write one.\n"
	} else {
		for i, memo := range m.memos {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s %s\n", cursor, memo.Title, timestampStyle.Render(memo.UpdatedAt))
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("n new  e edit  d delete  r reload  enter open  q quit")
	return out
}
