package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkrylov/animereview/internal/service"
	"github.com/dkrylov/animereview/internal/store"
	"github.com/dkrylov/animereview/models"
)

type profileMode int

const (
	profileViewing profileMode = iota
	profileEditingName
	profileChangingPassword
)

type profileState struct {
	mode profileMode

	prefs       models.Preferences
	prefsLoaded bool

	nameInput    textinput.Model
	currentInput textinput.Model
	newPassInput textinput.Model
	focus        int

	confirmDelete bool
	busy          bool
	errMsg        string
	status        string
}

func newProfileState() profileState {
	nameInput := textinput.New()
	nameInput.Placeholder = "full name"
	nameInput.CharLimit = 64
	nameInput.Width = 32

	currentInput := textinput.New()
	currentInput.Placeholder = "current password"
	currentInput.EchoMode = textinput.EchoPassword
	currentInput.CharLimit = 64
	currentInput.Width = 32

	newPassInput := textinput.New()
	newPassInput.Placeholder = "new password"
	newPassInput.EchoMode = textinput.EchoPassword
	newPassInput.CharLimit = 64
	newPassInput.Width = 32

	return profileState{
		nameInput:    nameInput,
		currentInput: currentInput,
		newPassInput: newPassInput,
	}
}

func (m mainModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case preferencesMsg:
		if msg.err != nil {
			m.profile.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.profile.prefs = msg.prefs
		m.profile.prefsLoaded = true
		m.profile.errMsg = ""
		return m, nil

	case profileSavedMsg:
		m.profile.busy = false
		if msg.err != nil {
			m.profile.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.profile.errMsg = ""
		m.profile.mode = profileViewing
		m.profile.nameInput.Blur()
		m.profile.status = "Profile updated"
		return m, cmdClearProfileStatusLater()

	case passwordChangedMsg:
		m.profile.busy = false
		if msg.err != nil {
			m.profile.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.profile.errMsg = ""
		m.profile.mode = profileViewing
		m.profile.currentInput.Blur()
		m.profile.newPassInput.Blur()
		m.profile.currentInput.SetValue("")
		m.profile.newPassInput.SetValue("")
		m.profile.status = "Password changed"
		return m, cmdClearProfileStatusLater()

	case profileStatusClearMsg:
		m.profile.status = ""
		return m, nil

	case tea.KeyMsg:
		switch m.profile.mode {
		case profileEditingName:
			return m.updateProfileNameForm(msg)
		case profileChangingPassword:
			return m.updateProfilePasswordForm(msg)
		default:
			return m.updateProfileViewing(msg)
		}
	}

	return m, nil
}

func (m mainModel) updateProfileViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.profile.confirmDelete {
		switch msg.String() {
		case "y", "Y":
			return m, m.cmdDeleteAccount()
		case "n", "N", "esc":
			m.profile.confirmDelete = false
		}
		return m, nil
	}

	user := m.services.Session.Current()

	switch msg.String() {
	case "esc":
		m.screen = screenHome
		return m, nil
	case "e":
		m.profile.mode = profileEditingName
		if user != nil {
			m.profile.nameInput.SetValue(user.FullName)
		}
		m.profile.nameInput.Focus()
		m.profile.errMsg = ""
		return m, textinput.Blink
	case "w":
		if user != nil && user.Provider != models.ProviderEmail {
			m.profile.errMsg = humanizeError(service.ErrWrongProvider)
			return m, nil
		}
		m.profile.mode = profileChangingPassword
		m.profile.focus = 0
		m.profile.currentInput.Focus()
		m.profile.newPassInput.Blur()
		m.profile.errMsg = ""
		return m, textinput.Blink
	case "n":
		m.profile.prefs.Notifications = !m.profile.prefs.Notifications
		return m, m.cmdSavePreferences(m.profile.prefs)
	case "m":
		m.profile.prefs.DarkMode = !m.profile.prefs.DarkMode
		return m, m.cmdSavePreferences(m.profile.prefs)
	case "g":
		m.profile.prefs.Language = nextLanguage(m.profile.prefs.Language)
		return m, m.cmdSavePreferences(m.profile.prefs)
	case "l":
		return m, m.cmdLogout()
	case "ctrl+d":
		m.profile.confirmDelete = true
		return m, nil
	}

	return m, nil
}

func (m mainModel) updateProfileNameForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.profile.mode = profileViewing
		m.profile.nameInput.Blur()
		m.profile.errMsg = ""
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.profile.nameInput.Value())
		if name == "" {
			m.profile.errMsg = "Name cannot be empty."
			return m, nil
		}
		m.profile.busy = true
		return m, m.cmdSaveProfile(name)
	}

	var cmd tea.Cmd
	m.profile.nameInput, cmd = m.profile.nameInput.Update(msg)
	return m, cmd
}

func (m mainModel) updateProfilePasswordForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.profile.mode = profileViewing
		m.profile.currentInput.Blur()
		m.profile.newPassInput.Blur()
		m.profile.currentInput.SetValue("")
		m.profile.newPassInput.SetValue("")
		m.profile.errMsg = ""
		return m, nil
	case "tab", "shift+tab", "down", "up":
		m.profile.focus = 1 - m.profile.focus
		if m.profile.focus == 0 {
			m.profile.newPassInput.Blur()
			m.profile.currentInput.Focus()
		} else {
			m.profile.currentInput.Blur()
			m.profile.newPassInput.Focus()
		}
		return m, textinput.Blink
	case "enter":
		current := m.profile.currentInput.Value()
		newPassword := m.profile.newPassInput.Value()
		if current == "" || newPassword == "" {
			m.profile.errMsg = "Both passwords are required."
			return m, nil
		}
		m.profile.busy = true
		return m, m.cmdChangePassword(current, newPassword)
	}

	var cmd tea.Cmd
	if m.profile.focus == 0 {
		m.profile.currentInput, cmd = m.profile.currentInput.Update(msg)
	} else {
		m.profile.newPassInput, cmd = m.profile.newPassInput.Update(msg)
	}
	return m, cmd
}

func (m mainModel) viewProfile() string {
	switch m.profile.mode {
	case profileEditingName:
		return m.viewProfileNameForm()
	case profileChangingPassword:
		return m.viewProfilePasswordForm()
	}

	var b strings.Builder

	if user := m.services.Session.Current(); user != nil {
		b.WriteString("Name:      " + user.FullName + "\n")
		b.WriteString("Email:     " + user.Email + "\n")
		b.WriteString("Provider:  " + string(user.Provider) + "\n")
		if !user.CreatedAt.IsZero() {
			b.WriteString("Member since: " + user.CreatedAt.Format("2 Jan 2006") + "\n")
		}
	} else {
		b.WriteString("Not signed in.\n")
	}

	b.WriteString("\nPreferences\n")
	if m.profile.prefsLoaded {
		b.WriteString("  [n] Notifications: " + onOff(m.profile.prefs.Notifications) + "\n")
		b.WriteString("  [m] Dark mode:     " + onOff(m.profile.prefs.DarkMode) + "\n")
		b.WriteString("  [g] Language:      " + m.profile.prefs.Language + "\n")
	} else {
		b.WriteString("  loading...\n")
	}

	if m.profile.confirmDelete {
		b.WriteString("\n" + errorStyle.Render("Delete your account and all your reviews? (y/n)") + "\n")
	}
	if m.profile.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.profile.errMsg) + "\n")
	}
	if m.profile.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.profile.status) + "\n")
	}

	return renderPage("PROFILE", strings.TrimRight(b.String(), "\n"),
		"e: edit name │ w: change password │ l: log out │ ctrl+d: delete account │ esc: back")
}

func (m mainModel) viewProfileNameForm() string {
	var b strings.Builder
	b.WriteString("Full name:\n")
	b.WriteString(m.profile.nameInput.View() + "\n")
	if m.profile.busy {
		b.WriteString("\nSaving...\n")
	}
	if m.profile.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.profile.errMsg) + "\n")
	}
	return renderPage("EDIT PROFILE", strings.TrimRight(b.String(), "\n"), "enter: save │ esc: cancel")
}

func (m mainModel) viewProfilePasswordForm() string {
	var b strings.Builder
	b.WriteString("Current password:\n")
	b.WriteString(m.profile.currentInput.View() + "\n\n")
	b.WriteString("New password:\n")
	b.WriteString(m.profile.newPassInput.View() + "\n")
	if m.profile.busy {
		b.WriteString("\nSaving...\n")
	}
	if m.profile.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.profile.errMsg) + "\n")
	}
	return renderPage("CHANGE PASSWORD", strings.TrimRight(b.String(), "\n"),
		"tab: switch field │ enter: save │ esc: cancel")
}

func (m mainModel) cmdLoadPreferences() tea.Cmd {
	ctx := m.ctx
	kv := m.kv

	return func() tea.Msg {
		var prefs models.Preferences
		if err := kv.Get(ctx, store.KeyPreferences, &prefs); err != nil {
			return preferencesMsg{err: err}
		}
		return preferencesMsg{prefs: prefs}
	}
}

func (m mainModel) cmdSavePreferences(prefs models.Preferences) tea.Cmd {
	ctx := m.ctx
	kv := m.kv

	return func() tea.Msg {
		if err := kv.Set(ctx, store.KeyPreferences, prefs); err != nil {
			return preferencesMsg{prefs: prefs, err: err}
		}
		return preferencesMsg{prefs: prefs}
	}
}

func (m mainModel) cmdSaveProfile(fullName string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		user, err := auth.UpdateProfile(ctx, models.ProfileUpdate{FullName: &fullName})
		return profileSavedMsg{user: user, err: err}
	}
}

func (m mainModel) cmdChangePassword(current, newPassword string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		return passwordChangedMsg{err: auth.ChangePassword(ctx, current, newPassword)}
	}
}

func (m mainModel) cmdDeleteAccount() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		return accountDeletedMsg{err: auth.DeleteAccount(ctx)}
	}
}

func cmdClearProfileStatusLater() tea.Cmd {
	return tea.Tick(statusLingerTime, func(time.Time) tea.Msg {
		return profileStatusClearMsg{}
	})
}

func nextLanguage(current string) string {
	switch current {
	case "es":
		return "en"
	case "en":
		return "ja"
	default:
		return "es"
	}
}
