package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Meganathan02/seo-keyword-code/internal/core/domain"
)

func testIdeas() []domain.KeywordIdea {
	return []domain.KeywordIdea{
		{Keyword: "beta", SearchVolume: 100, Competition: domain.CompetitionHigh},
		{Keyword: "alpha", SearchVolume: 900, Competition: domain.CompetitionLow},
		{Keyword: "gamma", SearchVolume: 500, Competition: domain.CompetitionMedium},
	}
}

func TestNew_SortsByVolumeDescending(t *testing.T) {
	m := New(testIdeas())

	rows := m.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "alpha", rows[0][0])
	assert.Equal(t, "gamma", rows[1][0])
	assert.Equal(t, "beta", rows[2][0])
}

func TestUpdate_CyclesSortMode(t *testing.T) {
	m := New(testIdeas())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	model, ok := next.(Model)
	require.True(t, ok)

	// Second mode sorts by competition, LOW first.
	rows := model.Rows()
	assert.Equal(t, "alpha", rows[0][0])
	assert.Equal(t, "gamma", rows[1][0])
	assert.Equal(t, "beta", rows[2][0])

	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	model, ok = next.(Model)
	require.True(t, ok)

	// Third mode sorts alphabetically.
	rows = model.Rows()
	assert.Equal(t, "alpha", rows[0][0])
	assert.Equal(t, "beta", rows[1][0])
	assert.Equal(t, "gamma", rows[2][0])
}

func TestUpdate_QuitKeys(t *testing.T) {
	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			m := New(testIdeas())

			var msg tea.KeyMsg
			switch key {
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			case "ctrl+c":
				msg = tea.KeyMsg{Type: tea.KeyCtrlC}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			}

			_, cmd := m.Update(msg)
			require.NotNil(t, cmd, "expected quit command")
		})
	}
}

func TestView_ContainsTitleAndHelp(t *testing.T) {
	m := New(testIdeas())

	view := m.View()

	assert.Contains(t, view, "Keyword ideas (3)")
	assert.Contains(t, view, "sort")
}
