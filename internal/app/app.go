package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/rhaddad/propman/internal/auth"
	"github.com/rhaddad/propman/internal/credential"
	"github.com/rhaddad/propman/internal/keys"
	"github.com/rhaddad/propman/internal/model"
	"github.com/rhaddad/propman/internal/notify"
	"github.com/rhaddad/propman/internal/store"
	"github.com/rhaddad/propman/internal/ui"
	helpview "github.com/rhaddad/propman/internal/ui/help"
	"github.com/rhaddad/propman/internal/ui/login"
	"github.com/rhaddad/propman/internal/ui/notifications"
)

// sweepDoneMsg carries the notification state after a manual expiry sweep.
type sweepDoneMsg struct {
	notifications []model.Notification
	unreadCount   int
}

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewLogin ViewState = iota
	ViewNotifications
	ViewHelp
)

// Model is the root Bubble Tea model that manages view routing,
// layout, and the session lifecycle.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	store        *store.SQLiteStore
	authSvc      *auth.Service
	center       *notify.Center
	scanner      *notify.Scanner
	poller       *notify.Poller
	keys         *keys.KeyMap
	log          *logrus.Entry

	loginView login.Model
	notifView notifications.Model
	helpView  helpview.Model

	user        *model.User
	unreadCount int
	ready       bool
}

// New creates the root application model. When user is non-nil a
// previous session was restored from the keyring and the login view
// is skipped.
func New(s *store.SQLiteStore, authSvc *auth.Service, cfg *model.AppConfig, user *model.User) Model {
	k := keys.DefaultKeyMap()
	center := notify.NewCenter(s, cfg.Notification.RecentLimit)
	scanner := notify.NewScanner(s, center)
	poller := notify.NewPoller(center, cfg.Notification.PollInterval())

	m := Model{
		currentView: ViewLogin,
		store:       s,
		authSvc:     authSvc,
		center:      center,
		scanner:     scanner,
		poller:      poller,
		keys:        k,
		log:         logrus.WithField("component", "app"),
		loginView:   login.New(authSvc, 80, 24),
		notifView:   notifications.New(center, k, 80, 24),
		helpView:    helpview.New(k, 80, 24),
		user:        user,
	}
	if user != nil {
		m.currentView = ViewNotifications
	}
	return m
}

// Init starts the login form, or the notification machinery directly
// when a session was restored.
func (m Model) Init() tea.Cmd {
	if m.user != nil {
		return m.startSession()
	}
	return m.loginView.Init()
}

// startSession runs the startup expiry sweep and starts the poller.
func (m Model) startSession() tea.Cmd {
	return tea.Batch(
		m.runSweep(),
		m.poller.Start(),
	)
}

// runSweep returns a command that runs the expiry scan and reloads the
// recent notifications.
func (m Model) runSweep() tea.Cmd {
	scanner := m.scanner
	center := m.center
	return func() tea.Msg {
		ctx := context.Background()
		scanner.CheckExpiryReminders(ctx)
		notifs, err := center.FetchRecent(ctx)
		if err != nil {
			return sweepDoneMsg{notifications: center.Notifications(), unreadCount: center.UnreadCount()}
		}
		return sweepDoneMsg{notifications: notifs, unreadCount: center.UnreadCount()}
	}
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentHeight := m.layout.ContentHeight()
		m.loginView.SetSize(msg.Width, contentHeight)
		m.notifView.SetSize(msg.Width, contentHeight)
		m.helpView.SetSize(msg.Width, contentHeight)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case login.ResultMsg:
		if msg.Err != nil {
			m.log.WithError(msg.Err).Warn("login failed")
			m.loginView.SetError(msg.Err)
			return m, nil
		}
		m.user = msg.Session.User
		if err := credential.SaveSessionToken(msg.Session.Token); err != nil {
			m.log.WithError(err).Warn("saving session token")
		}
		m.currentView = ViewNotifications
		return m, m.startSession()

	case notify.RefreshedMsg:
		if msg.Err != nil {
			m.log.WithError(msg.Err).Warn("refreshing notifications")
		} else {
			m.notifView.SetNotifications(msg.Notifications)
			m.unreadCount = msg.UnreadCount
		}
		return m, m.poller.WaitForNextResult()

	case sweepDoneMsg:
		m.notifView.SetNotifications(msg.notifications)
		m.unreadCount = msg.unreadCount
		return m, nil

	case notifications.LoadedMsg:
		m.unreadCount = m.center.UnreadCount()
		var cmd tea.Cmd
		m.notifView, cmd = m.notifView.Update(msg)
		return m, cmd

	case notifications.SweepRequestedMsg:
		return m, m.runSweep()

	case tea.KeyMsg:
		// Global keys that work regardless of current view.
		switch msg.String() {
		case "ctrl+c":
			m.quit()
			return m, tea.Quit

		case "q":
			if m.currentView == ViewNotifications {
				m.quit()
				return m, tea.Quit
			}

		case "?":
			if m.currentView == ViewLogin {
				break
			}
			if m.currentView == ViewHelp {
				m.currentView = m.previousView
				return m, nil
			}
			m.previousView = m.currentView
			m.currentView = ViewHelp
			return m, nil

		case "esc":
			if m.currentView == ViewHelp {
				m.currentView = m.previousView
				return m, nil
			}
		}
	}

	// Delegate to active sub-view.
	return m.updateActiveView(msg)
}

// quit stops the poller and releases the store.
func (m *Model) quit() {
	m.poller.Stop()
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewLogin:
		m.loginView, cmd = m.loginView.Update(msg)
	case ViewNotifications:
		m.notifView, cmd = m.notifView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.currentView == ViewLogin {
		return m.loginView.View()
	}

	badge := ""
	if m.unreadCount > 0 {
		badge = fmt.Sprintf(" %d unread ", m.unreadCount)
	}
	header := m.layout.RenderHeader(m.headerTitle(), badge)
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// headerTitle returns the header text, including the signed-in user.
func (m Model) headerTitle() string {
	if m.user != nil {
		return fmt.Sprintf("Property Manager — %s", m.user.Username)
	}
	return "Property Manager"
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewNotifications:
		return m.notifView.View()
	case ViewHelp:
		return m.helpView.View()
	default:
		return ""
	}
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	default:
		return "q quit | ? help | r read | R read all | d delete | g refresh | s check expiries"
	}
}
