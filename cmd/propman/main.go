package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/DavidGamba/go-getoptions"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/rhaddad/propman/internal/app"
	"github.com/rhaddad/propman/internal/auth"
	"github.com/rhaddad/propman/internal/credential"
	"github.com/rhaddad/propman/internal/model"
	"github.com/rhaddad/propman/internal/notify"
	"github.com/rhaddad/propman/internal/store"
)

// commandLineOptionValues represents the values of the command-line
// options that were passed when the application was invoked.
type commandLineOptionValues struct {
	Config string
	Check  bool
}

func parseCommandLine() *commandLineOptionValues {
	optionValues := &commandLineOptionValues{}
	opt := getoptions.New()

	defaultConfigPath := model.DefaultConfigPath()

	opt.Bool("help", false, opt.Alias("h", "?"))
	opt.StringVar(&optionValues.Config, "config", defaultConfigPath,
		opt.Alias("c"),
		opt.Description("the path to the configuration file"))
	opt.BoolVar(&optionValues.Check, "check", false,
		opt.Description("run the expiry check once and exit"))

	_, err := opt.Parse(os.Args[1:])
	if opt.Called("help") {
		fmt.Fprint(os.Stderr, opt.Help())
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n\n", err)
		fmt.Fprint(os.Stderr, opt.Help(getoptions.HelpSynopsis))
		os.Exit(1)
	}

	return optionValues
}

// initLogging routes log output to a file next to the configuration,
// keeping the terminal free for the UI.
func initLogging(configPath string) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	logPath := filepath.Join(filepath.Dir(configPath), "propman.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		logrus.SetOutput(os.Stderr)
		return
	}
	logrus.SetOutput(f)
}

// ensureSessionSecret generates and persists a signing secret on first run.
func ensureSessionSecret(configPath string, cfg *model.AppConfig) error {
	if cfg.Session.Secret != "" {
		return nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Errorf("generating session secret: %w", err)
	}
	cfg.Session.Secret = hex.EncodeToString(buf)

	if err := model.SaveConfig(configPath, cfg); err != nil {
		return fmt.Errorf("persisting session secret: %w", err)
	}
	return nil
}

// restoreSession tries to resume a previous login from the keyring.
// Returns nil when no valid session token is stored.
func restoreSession(ctx context.Context, svc *auth.Service) *model.User {
	token := credential.SessionToken()
	if token == "" {
		return nil
	}

	user, err := svc.CheckAuth(ctx, token)
	if err != nil || user == nil {
		credential.ClearSessionToken()
		return nil
	}
	return user
}

func main() {
	optionValues := parseCommandLine()

	initLogging(optionValues.Config)

	cfg, err := model.LoadConfig(optionValues.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %s\n", err)
		os.Exit(1)
	}

	if err := ensureSessionSecret(optionValues.Config, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	s, err := store.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %s\n", err)
		os.Exit(1)
	}
	defer s.Close()

	ctx := context.Background()
	if err := auth.EnsureDefaultAdmin(ctx, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding default user: %s\n", err)
		os.Exit(1)
	}

	svc := auth.NewService(s, cfg.Session.Secret, time.Duration(cfg.Session.TTLHours)*time.Hour)

	if optionValues.Check {
		runCheck(ctx, s, cfg)
		return
	}

	user := restoreSession(ctx, svc)

	m := app.New(s, svc, cfg, user)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %s\n", err)
		os.Exit(1)
	}
}

// runCheck performs a single headless expiry scan, for cron-style use.
func runCheck(ctx context.Context, s *store.SQLiteStore, cfg *model.AppConfig) {
	center := notify.NewCenter(s, cfg.Notification.RecentLimit)
	scanner := notify.NewScanner(s, center)
	scanner.CheckExpiryReminders(ctx)

	count, err := s.CountUnreadNotifications(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error counting notifications: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("expiry check complete, %d unread notifications\n", count)
}
