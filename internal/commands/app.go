package commands

import (
	"fmt"
	"log/slog"

	"github.com/trackwise-dev/trackwise/internal/config"
	"github.com/trackwise-dev/trackwise/internal/log"
	"github.com/trackwise-dev/trackwise/internal/repository"
	"github.com/trackwise-dev/trackwise/internal/session"
	"github.com/trackwise-dev/trackwise/internal/storage"
	"github.com/trackwise-dev/trackwise/internal/transport"
)

// rootOptions carries the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	verbose    bool
}

// app wires config, session, and repository together for one command
// invocation.
type app struct {
	cfg  *config.Config
	sess *session.Store
	repo *repository.Repository
	log  *log.Logger
}

func (o *rootOptions) app() (*app, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	store, err := storage.OpenFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("opening credential store: %w", err)
	}
	sess := session.New(store)

	logger := log.Discard()
	if o.verbose {
		logger = log.New(slog.LevelDebug, "trackwise")
	}

	client := transport.NewClient(transport.Options{
		BaseURL: cfg.APIURL,
		Timeout: cfg.Timeout,
		Tokens:  sess,
		OnUnauthorized: func() {
			// A 401 invalidates the whole session, not just this call.
			_ = sess.Logout()
		},
		Retry:  transport.DefaultPolicy(),
		Logger: logger.WithComponent("transport"),
	})

	return &app{
		cfg:  cfg,
		sess: sess,
		repo: repository.New(client),
		log:  logger,
	}, nil
}

// requireAuth fails fast with a login hint when no credential is held.
func (a *app) requireAuth() error {
	if !a.sess.Authenticated() {
		return fmt.Errorf("not logged in: run 'trackwise login <username>' first")
	}
	return nil
}

// translateErr maps transport errors onto user-facing messages. Errors
// outside the taxonomy pass through untouched.
func translateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case transport.IsAuthError(err):
		return fmt.Errorf("session expired or rejected: run 'trackwise login <username>' again")
	case transport.IsNotFoundError(err):
		return fmt.Errorf("transaction not found")
	case transport.IsNetworkError(err):
		return fmt.Errorf("could not reach the expense API: %w", err)
	default:
		return err
	}
}
