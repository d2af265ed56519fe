package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/2beens/lifedash/internal/apiclient"
	"github.com/2beens/lifedash/internal/session"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, apiclient.ErrUnauthorized) {
			err = fmt.Errorf("%w: run `lifectl login` first", err)
		}
		_, _ = fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

type app struct {
	cfgPath string
	cfg     *cliConfig
	api     *apiclient.Client
	store   *session.FileStore
	out     io.Writer
}

type rootFlags struct {
	configPath string
	serverURL  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "lifectl",
		Short:         "lifedash command line client",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", defaultConfigPath(), "lifectl config file")
	root.PersistentFlags().StringVar(&flags.serverURL, "server", "", "lifedash API url, overrides the config")

	root.AddCommand(newLoginCmd(flags))
	root.AddCommand(newLogoutCmd(flags))
	root.AddCommand(newGymCmd(flags))
	root.AddCommand(newStudyCmd(flags))
	root.AddCommand(newRecoverCmd(flags))
	return root
}

func loadApp(cmd *cobra.Command, flags *rootFlags) (*app, error) {
	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.serverURL != "" {
		cfg.ServerURL = flags.serverURL
	}

	log.SetOutput(os.Stderr)
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("invalid log level [%s]: %s", cfg.LogLevel, err)
	}

	apiclient.UserAgent = fmt.Sprintf("lifectl/%s (%s)", version, cfg.DeviceID)
	return &app{
		cfgPath: flags.configPath,
		cfg:     cfg,
		api:     apiclient.New(cfg.ServerURL, cfg.Token, nil),
		store:   session.NewFileStore(filepath.Clean(cfg.StateDir)),
		out:     cmd.OutOrStdout(),
	}, nil
}

// manager builds the session manager of a domain and recovers its state first.
func (a *app) manager(ctx context.Context, tracker session.Tracker) *session.Manager {
	m := session.NewManager(tracker, a.store)
	if err := m.Recover(ctx); err != nil {
		log.Warnf("%s: recover session: %s", tracker.Domain(), err)
	}
	return m
}

func (a *app) gymManager(ctx context.Context) *session.Manager {
	return a.manager(ctx, session.NewGymTracker(a.api, session.DefaultMaxAge))
}

func (a *app) studyManager(ctx context.Context) *session.Manager {
	return a.manager(ctx, session.NewStudyTracker(a.api, session.DefaultMaxAge))
}

func (a *app) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}

func newRecoverCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "recover",
		Short: "Reconcile local session state with the server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			for _, m := range []*session.Manager{a.gymManager(cmd.Context()), a.studyManager(cmd.Context())} {
				a.printf("%s\n", renderStatus(m))
				if err := m.LastError(); err != nil {
					a.printf("  %s\n", faintStyle.Render("last error: "+err.Error()))
				}
			}
			return nil
		},
	}
}
