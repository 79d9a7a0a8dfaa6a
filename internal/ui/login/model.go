package login

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rhaddad/propman/internal/auth"
	"github.com/rhaddad/propman/internal/theme"
)

// ResultMsg carries the outcome of a login attempt to the root model.
type ResultMsg struct {
	Session *auth.Session
	Err     error
}

// Model is the login form view.
type Model struct {
	form     *huh.Form
	svc      *auth.Service
	username string
	password string
	errMsg   string
	width    int
	height   int
}

// New creates a new login form.
func New(svc *auth.Service, width, height int) Model {
	m := Model{
		svc:    svc,
		width:  width,
		height: height,
	}
	m.form = m.newForm()
	return m
}

// newForm builds a fresh credentials form bound to the model's fields.
func (m *Model) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&m.username),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.password),
		),
	)
}

// Init starts the form.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the login view. When the form completes,
// it attempts the login and emits a ResultMsg.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		username, password := m.username, m.password
		svc := m.svc

		// Reset for the next attempt in case this one fails.
		m.username, m.password = "", ""
		m.form = m.newForm()

		return m, tea.Batch(m.form.Init(), func() tea.Msg {
			session, err := svc.Login(context.Background(), username, password)
			return ResultMsg{Session: session, Err: err}
		})
	}

	return m, cmd
}

// View renders the login form with any error from the last attempt.
func (m Model) View() string {
	title := theme.HeaderStyle.Render("Property Manager — Sign In")

	parts := []string{title, "", m.form.View()}
	if m.errMsg != "" {
		errStyle := lipgloss.NewStyle().Foreground(theme.ColorRed)
		parts = append(parts, errStyle.Render(m.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// SetError records a failed attempt for display above the form.
func (m *Model) SetError(err error) {
	if errors.Is(err, auth.ErrInvalidCredentials) {
		m.errMsg = "Invalid username or password."
		return
	}
	m.errMsg = "Login failed. Check the application log."
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
