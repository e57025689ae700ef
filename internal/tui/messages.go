package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkrylov/animereview/models"
)

// NavigateTo switches the router to another page. An optional Payload is
// delivered to the opened page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult finishes a login, register, or google sign-in attempt.
type AuthResult struct {
	User models.User
	Err  error
}

type catalogLoadedMsg struct {
	animes []models.Anime
	err    error
}

type searchResultsMsg struct {
	query  string
	animes []models.Anime
	err    error
}

type detailLoadedMsg struct {
	anime    models.Anime
	reviews  []models.Review
	myReview models.Review
	hasMine  bool
	err      error
}

type reviewSavedMsg struct {
	err error
}

type reviewDeletedMsg struct {
	err error
}

type profileSavedMsg struct {
	user models.User
	err  error
}

type passwordChangedMsg struct {
	err error
}

type preferencesMsg struct {
	prefs models.Preferences
	err   error
}

type accountDeletedMsg struct {
	err error
}

type loggedOutMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}

type profileStatusClearMsg struct{}
