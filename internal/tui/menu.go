package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MenuModel is the welcome page: pick between login, registration, and
// the google sign-in shortcut.
type MenuModel struct {
	items  []string
	idx    int
	status string
	errMsg string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{
		items: []string{"Log in", "Create account", "Continue with Google"},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		// Only failed google sign-ins come back here; success quits the flow.
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		m.errMsg = ""
		switch m.idx {
		case 0:
			return m, func() tea.Msg { return NavigateTo{Page: "login"} }
		case 1:
			return m, func() tea.Msg { return NavigateTo{Page: "register"} }
		case 2:
			return m, func() tea.Msg { return NavigateTo{Page: "login", Payload: googleSignInMsg{}} }
		}
	}

	return m, nil
}

func (m *MenuModel) View() string {
	var b strings.Builder

	b.WriteString("Welcome to AnimeReview\n\n")
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor + item + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	return renderPage("ANIMEREVIEW", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move")
}

// googleSignInMsg asks the login page to run the google flow right away.
type googleSignInMsg struct{}
