package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

const maxInputRunes = 24

// textInput is a single-line field fed from key messages.
type textInput struct {
	value []rune
	limit int
}

func newTextInput(limit int) textInput {
	if limit <= 0 {
		limit = maxInputRunes
	}
	return textInput{limit: limit}
}

// capture applies a key to the field and reports whether it consumed it.
func (t *textInput) capture(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if len(t.value) >= t.limit {
				break
			}
			t.value = append(t.value, r)
		}
		return true
	case tea.KeySpace:
		if len(t.value) < t.limit {
			t.value = append(t.value, ' ')
		}
		return true
	case tea.KeyBackspace:
		if len(t.value) > 0 {
			t.value = t.value[:len(t.value)-1]
		}
		return true
	case tea.KeyCtrlU:
		t.value = nil
		return true
	}
	return false
}

func (t *textInput) String() string { return string(t.value) }

func (t *textInput) Set(s string) {
	t.value = []rune(s)
	if len(t.value) > t.limit {
		t.value = t.value[:t.limit]
	}
}

func (t *textInput) Reset() { t.value = nil }

func (t *textInput) view(focused bool, placeholder string) string {
	if len(t.value) == 0 && !focused {
		return Muted.Render(placeholder)
	}
	s := string(t.value)
	if focused {
		return SelectedRow.Render(" " + s + "▏")
	}
	return s
}
