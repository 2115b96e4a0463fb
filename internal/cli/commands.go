// Package cli implements the planora command line client. It drives the
// same entity store as the server: against a remote API when a server is
// configured, or fully in memory with demo data in local mode.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Abhinav6284/Planora/internal/demo"
	"github.com/Abhinav6284/Planora/internal/gateway"
	"github.com/Abhinav6284/Planora/internal/session"
	"github.com/Abhinav6284/Planora/internal/store"
)

type app struct {
	server  string
	dataDir string
	local   bool

	sessions *session.Store
	client   *gateway.Client
	store    *store.Store
}

func New() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "planora",
		Short:         "Tasks, projects, and notes from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&a.server, "server", envOr("PLANORA_SERVER", "http://localhost:8080"), "base URL of the planora API")
	cmd.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "directory for session state (default: user config dir)")
	cmd.PersistentFlags().BoolVar(&a.local, "local", false, "work against an in-memory store seeded with demo data")

	addLogin(cmd, a)
	addLogout(cmd, a)
	addWhoami(cmd, a)
	addTask(cmd, a)
	addProject(cmd, a)
	addNote(cmd, a)
	addCalendar(cmd, a)
	addDashboard(cmd, a)
	addChat(cmd, a)

	return cmd
}

// connect wires the store for the selected mode. Remote mode refreshes
// the mirror up front so id lookups see the backend's current state.
func (a *app) connect(ctx context.Context) error {
	if err := a.openSessions(); err != nil {
		return err
	}

	if a.local {
		a.store = store.New(store.Options{})
		a.store.Seed(demo.Tasks(), demo.Projects(), demo.Notes())
		return nil
	}

	opts := []gateway.Option{}
	if token, ok := a.sessions.Token(); ok {
		opts = append(opts, gateway.WithToken(token))
	}
	a.client = gateway.New(a.server, opts...)
	a.store = store.New(store.Options{Remote: a.client})

	if err := a.store.Refresh(ctx); err != nil {
		return fmt.Errorf("refresh from %s: %w", a.server, err)
	}
	return nil
}

func (a *app) openSessions() error {
	dir := a.dataDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("resolve config dir: %w", err)
		}
		dir = filepath.Join(base, "planora")
	}
	a.sessions = session.NewStore(dir)
	return nil
}

// gatewayOnly builds an API client without touching the entity store,
// for auth commands that must work before any data exists.
func (a *app) gatewayOnly() (*gateway.Client, error) {
	if err := a.openSessions(); err != nil {
		return nil, err
	}
	opts := []gateway.Option{}
	if token, ok := a.sessions.Token(); ok {
		opts = append(opts, gateway.WithToken(token))
	}
	return gateway.New(a.server, opts...), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
