package tui

import (
	"fmt"
	"strings"

	"github.com/memoday/memoday-backend/internal/domain"
)

// bulletMarker starts a bullet line in memo content.
const bulletMarker = "・"

type detailModel struct {
	memo   domain.MemoResponse
	status string
}

// renderContent renders memo content line by line. Lines starting with
// the bullet marker show as a dimmed bullet followed by the rest of the
// line.
func renderContent(content string) string {
	if content == "" {
		return helpStyle.Render("No content yet.")
	}

	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if rest, ok := strings.CutPrefix(line, bulletMarker); ok {
			out = append(out, helpStyle.Render("• ")+rest)
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func (m detailModel) View() string {
	out := titleStyle.Render(m.memo.Title) + "\n"
	out += timestampStyle.Render(fmt.Sprintf("created %s  updated %s", m.memo.CreatedAt, m.memo.UpdatedAt)) + "\n\n"
	out += renderContent(m.memo.Content) + "\n\n"
	out += helpStyle.Render("e edit  d delete  esc back")

	if m.status != "" {
		out += "\n\n" + m.status
	}
	return out
}
