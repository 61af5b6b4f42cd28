package tui

import (
	"github.com/MKhiriev/go-auth-panel/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names understood by RootModel.
const (
	pageLogin    = "login"
	pagePanel    = "panel"
	pageCreate   = "create"
	pagePassword = "password"
	pageUsername = "username"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// StatusNotice is shown in the panel status line.
type StatusNotice struct {
	Text string
}

type loginResultMsg struct {
	user models.User
	err  error
}

type usersLoadedMsg struct {
	current models.User
	users   []models.User
	err     error
}

type userDeletedMsg struct {
	username string
	err      error
}

type formSubmittedMsg struct {
	notice string
	err    error
}

type loggedOutMsg struct{}

type copiedMsg struct {
	id  string
	err error
}
