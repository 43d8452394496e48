// Package tui provides an interactive terminal browser for keyword
// research results, built with Bubble Tea.
package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Meganathan02/seo-keyword-code/internal/adapters/driving/tui/styles"
	"github.com/Meganathan02/seo-keyword-code/internal/core/domain"
)

// sortMode controls the ordering of the results table.
type sortMode int

const (
	sortByVolume sortMode = iota
	sortByCompetition
	sortByKeyword
)

func (m sortMode) String() string {
	switch m {
	case sortByCompetition:
		return "competition"
	case sortByKeyword:
		return "keyword"
	default:
		return "volume"
	}
}

// competitionRank orders competition buckets for sorting.
var competitionRank = map[domain.CompetitionLevel]int{
	domain.CompetitionLow:     0,
	domain.CompetitionMedium:  1,
	domain.CompetitionHigh:    2,
	domain.CompetitionUnknown: 3,
}

// Model is the Bubble Tea model for the results browser.
type Model struct {
	ideas  []domain.KeywordIdea
	table  table.Model
	styles *styles.Styles
	sort   sortMode
}

// New creates a results browser for the given keyword ideas.
func New(ideas []domain.KeywordIdea) Model {
	s := styles.DefaultStyles()

	columns := []table.Column{
		{Title: "Keyword", Width: 36},
		{Title: "Searches/mo", Width: 12},
		{Title: "Competition", Width: 12},
		{Title: "Low $", Width: 8},
		{Title: "High $", Width: 8},
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	ts := table.DefaultStyles()
	ts.Header = s.Header
	ts.Selected = s.Selected
	tbl.SetStyles(ts)

	m := Model{
		ideas:  ideas,
		table:  tbl,
		styles: s,
		sort:   sortByVolume,
	}
	m.applySort()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses: s cycles the sort order, q/esc quits.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "s":
			m.sort = (m.sort + 1) % 3
			m.applySort()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table with a title and help line.
func (m Model) View() string {
	title := m.styles.Title.Render(fmt.Sprintf("Keyword ideas (%d)", len(m.ideas)))
	help := m.styles.Muted.Render(
		fmt.Sprintf("↑/↓ navigate · s sort (%s) · q quit", m.sort))
	return title + "\n" + m.table.View() + "\n" + help + "\n"
}

// applySort re-sorts the ideas and rebuilds the table rows.
func (m *Model) applySort() {
	sorted := make([]domain.KeywordIdea, len(m.ideas))
	copy(sorted, m.ideas)

	switch m.sort {
	case sortByCompetition:
		sort.SliceStable(sorted, func(i, j int) bool {
			return competitionRank[sorted[i].Competition] < competitionRank[sorted[j].Competition]
		})
	case sortByKeyword:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Keyword < sorted[j].Keyword
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].SearchVolume > sorted[j].SearchVolume
		})
	}
	m.ideas = sorted

	rows := make([]table.Row, 0, len(sorted))
	for _, idea := range sorted {
		rows = append(rows, table.Row{
			idea.Keyword,
			fmt.Sprintf("%d", idea.SearchVolume),
			string(idea.Competition),
			fmt.Sprintf("%.2f", idea.LowBidUSD),
			fmt.Sprintf("%.2f", idea.HighBidUSD),
		})
	}
	m.table.SetRows(rows)
}

// Rows exposes the current table rows. Used in tests.
func (m Model) Rows() []table.Row {
	return m.table.Rows()
}

// Run opens the results browser and blocks until the user quits.
func Run(ideas []domain.KeywordIdea) error {
	program := tea.NewProgram(New(ideas), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
