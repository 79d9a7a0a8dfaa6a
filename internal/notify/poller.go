package notify

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/rhaddad/propman/internal/model"
)

// fetchTimeout is the maximum time allowed for a single refresh.
const fetchTimeout = 10 * time.Second

// RefreshedMsg is a tea.Msg sent after the poller reloads the
// notification mirror.
type RefreshedMsg struct {
	Notifications []model.Notification
	UnreadCount   int
	Err           error
}

// Poller periodically reloads the notification center from the database
// so changes made outside the cached window become visible.
type Poller struct {
	center   *Center
	interval time.Duration
	log      *logrus.Entry

	resultCh chan RefreshedMsg
	stopCh   chan struct{}

	mu       sync.Mutex
	running  bool
	inFlight bool
}

// NewPoller creates a poller that refreshes center every interval.
func NewPoller(center *Center, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Poller{
		center:   center,
		interval: interval,
		log:      logrus.WithField("component", "poller"),
		resultCh: make(chan RefreshedMsg, 16),
		stopCh:   make(chan struct{}),
	}
}

// Start launches the polling goroutine and returns a subscription command
// that waits for the first refresh result. Starting twice is a no-op.
func (p *Poller) Start() tea.Cmd {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return nil
	}
	p.running = true
	p.mu.Unlock()

	go p.run()

	return p.waitForResult()
}

// Stop halts the polling goroutine. Safe to call once.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running {
		return
	}

	close(p.stopCh)
	p.running = false
}

// run refreshes immediately, then on every tick until stopped.
func (p *Poller) run() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.refresh()

	for {
		select {
		case <-p.stopCh:
			return
		case <-ticker.C:
			p.refresh()
		}
	}
}

// refresh reloads the mirror and sends the result to the subscriber.
// A tick arriving while a previous refresh is still in flight is skipped.
func (p *Poller) refresh() {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return
	}
	p.inFlight = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.inFlight = false
		p.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	notifications, err := p.center.FetchRecent(ctx)
	if err != nil {
		p.log.WithError(err).Error("notification refresh failed")
		p.sendResult(RefreshedMsg{Err: err})
		return
	}

	p.sendResult(RefreshedMsg{
		Notifications: notifications,
		UnreadCount:   p.center.UnreadCount(),
	})
}

// sendResult sends a RefreshedMsg without blocking the poll loop.
func (p *Poller) sendResult(msg RefreshedMsg) {
	select {
	case p.resultCh <- msg:
	default:
		// Drop if the subscriber is behind; the next tick supersedes it.
	}
}

// waitForResult returns a tea.Cmd that waits for the next refresh result.
func (p *Poller) waitForResult() tea.Cmd {
	return func() tea.Msg {
		result, ok := <-p.resultCh
		if !ok {
			return nil
		}
		return result
	}
}

// WaitForNextResult returns a tea.Cmd that waits for the next refresh.
// Call it after processing a RefreshedMsg to keep listening.
func (p *Poller) WaitForNextResult() tea.Cmd {
	return p.waitForResult()
}
