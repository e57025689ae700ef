package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m mainModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchResultsMsg:
		// a stale response for an earlier query is dropped
		if msg.query != m.lastQuery {
			return m, nil
		}
		m.searching = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.results = msg.animes
		m.resultIdx = 0
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.screen = screenHome
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			m.results = nil
			m.resultIdx = 0
			m.lastQuery = ""
			m.errMsg = ""
			return m, nil
		case "up":
			if m.resultIdx > 0 {
				m.resultIdx--
			}
			return m, nil
		case "down":
			if m.resultIdx < len(m.results)-1 {
				m.resultIdx++
			}
			return m, nil
		case "enter":
			if len(m.results) == 0 {
				return m, nil
			}
			m.searchInput.Blur()
			return m.openDetail(m.results[m.resultIdx])
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	query := strings.TrimSpace(m.searchInput.Value())
	if query != m.lastQuery {
		m.lastQuery = query
		if len([]rune(query)) < minSearchInputRunes {
			m.results = nil
			m.resultIdx = 0
			m.searching = false
			return m, cmd
		}
		m.searching = true
		return m, tea.Batch(cmd, m.cmdSearch(query))
	}

	return m, cmd
}

// minSearchInputRunes mirrors the catalog's own minimum query length so
// the screen never issues a request the catalog would ignore.
const minSearchInputRunes = 3

func (m mainModel) viewSearch() string {
	var b strings.Builder

	b.WriteString(m.searchInput.View() + "\n\n")

	switch {
	case m.searching:
		b.WriteString("Searching...\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n")
	case len([]rune(m.lastQuery)) < minSearchInputRunes:
		b.WriteString(helpStyle.Render("Type at least 3 characters to search.") + "\n")
	case len(m.results) == 0:
		b.WriteString("No titles match \"" + m.lastQuery + "\".\n")
	default:
		for i, anime := range m.results {
			cursor := "  "
			if i == m.resultIdx {
				cursor = "> "
			}
			b.WriteString(cursor + animeLine(anime) + "\n")
		}
	}

	return renderPage("SEARCH", strings.TrimRight(b.String(), "\n"),
		"enter: details │ esc: back")
}

func (m mainModel) cmdSearch(query string) tea.Cmd {
	ctx := m.ctx
	catalog := m.catalog

	return func() tea.Msg {
		animes, err := catalog.Search(ctx, query, searchLimit)
		return searchResultsMsg{query: query, animes: animes, err: err}
	}
}
