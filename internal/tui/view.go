package tui

import (
	"fmt"
	"strings"
)

const emptyListText = "No notes to display"

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Notes"))
	b.WriteString("\n\n")
	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(m.renderForm())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m *Model) renderList() string {
	if len(m.notes) == 0 {
		return emptyStyle.Render(emptyListText) + "\n"
	}

	var b strings.Builder
	for i, note := range m.notes {
		marker := "  "
		if m.focus == focusList && i == m.cursor {
			marker = cursorStyle.Render("> ")
		}

		title := noteTitleStyle.Render(note.Title)
		if m.selected != nil && m.selected.ID == note.ID {
			title = selectedNoteStyle.Render(note.Title + " *")
		}

		b.WriteString(marker)
		b.WriteString(title)
		b.WriteString("\n    ")
		b.WriteString(noteContentStyle.Render(firstLine(note.Content, 60)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderForm() string {
	header := "New note"
	if m.selected != nil {
		header = fmt.Sprintf("Editing note #%d", m.selected.ID)
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Title"))
	b.WriteString(m.titleInput.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Content"))
	b.WriteString("\n")
	b.WriteString(m.contentInput.View())
	if m.hint != "" {
		b.WriteString("\n")
		b.WriteString(hintStyle.Render(m.hint))
	}

	return formBoxStyle.Render(b.String())
}

func (m *Model) renderHelp() string {
	if m.focus == focusList {
		return HelpStyle.Render("↑/↓ move • enter edit • d delete • n new • q quit")
	}
	return HelpStyle.Render("tab switch field • ctrl+s save • esc cancel")
}

func firstLine(s string, limit int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i] + " …"
	}
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit-1]) + "…"
	}
	return s
}
