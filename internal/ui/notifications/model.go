package notifications

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rhaddad/propman/internal/keys"
	"github.com/rhaddad/propman/internal/model"
	"github.com/rhaddad/propman/internal/notify"
	"github.com/rhaddad/propman/internal/theme"
)

// LoadedMsg is sent when notifications have been loaded from the center.
type LoadedMsg struct {
	Notifications []model.Notification
}

// SweepRequestedMsg asks the root model to run an expiry sweep.
type SweepRequestedMsg struct{}

// Model is the notification center view.
type Model struct {
	list   list.Model
	center *notify.Center
	keys   *keys.KeyMap
	width  int
	height int
}

// New creates a new notification center view.
func New(center *notify.Center, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, ItemDelegate{}, width, height-2)
	l.Title = "Notifications"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	return Model{
		list:   l,
		center: center,
		keys:   k,
		width:  width,
		height: height,
	}
}

// Init returns a command that loads the initial notifications.
func (m Model) Init() tea.Cmd {
	return m.Load()
}

// Update handles messages for the notification view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		m.SetNotifications(msg.Notifications)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleKeys processes notification actions.
func (m Model) handleKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.MarkRead):
		item, ok := m.list.SelectedItem().(Item)
		if !ok {
			return m, nil
		}
		return m, m.markRead(item.Notification.ID)

	case key.Matches(msg, m.keys.MarkAllRead):
		return m, m.markAllRead()

	case key.Matches(msg, m.keys.Delete):
		item, ok := m.list.SelectedItem().(Item)
		if !ok {
			return m, nil
		}
		return m, m.delete(item.Notification.ID)

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refresh()

	case key.Matches(msg, m.keys.Sweep):
		return m, func() tea.Msg { return SweepRequestedMsg{} }
	}

	// Delegate to the list for navigation keys.
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the notification view.
func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray).
			Render("No notifications.\n\nPress 's' to run the expiry check.")
	}

	return m.list.View()
}

// SetNotifications replaces the list contents.
func (m *Model) SetNotifications(notifications []model.Notification) {
	items := make([]list.Item, len(notifications))
	for i, n := range notifications {
		items[i] = Item{Notification: n}
	}
	m.list.SetItems(items)
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
}

// Load returns a tea.Cmd that reads the current mirror contents.
func (m Model) Load() tea.Cmd {
	center := m.center
	return func() tea.Msg {
		return LoadedMsg{Notifications: center.Notifications()}
	}
}

// refresh reconciles the mirror against the database, then reloads.
func (m Model) refresh() tea.Cmd {
	center := m.center
	return func() tea.Msg {
		notifications, err := center.FetchRecent(context.Background())
		if err != nil {
			return LoadedMsg{Notifications: center.Notifications()}
		}
		return LoadedMsg{Notifications: notifications}
	}
}

// markRead marks one notification read and reloads from the mirror.
func (m Model) markRead(id int64) tea.Cmd {
	center := m.center
	return func() tea.Msg {
		_ = center.MarkRead(context.Background(), id)
		return LoadedMsg{Notifications: center.Notifications()}
	}
}

// markAllRead marks everything read and reloads from the mirror.
func (m Model) markAllRead() tea.Cmd {
	center := m.center
	return func() tea.Msg {
		_ = center.MarkAllRead(context.Background())
		return LoadedMsg{Notifications: center.Notifications()}
	}
}

// delete removes one notification and reloads from the mirror.
func (m Model) delete(id int64) tea.Cmd {
	center := m.center
	return func() tea.Msg {
		_ = center.Delete(context.Background(), id)
		return LoadedMsg{Notifications: center.Notifications()}
	}
}
