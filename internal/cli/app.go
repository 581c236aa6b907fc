package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"github.com/crewdeck/crewdeck/internal/api"
	"github.com/crewdeck/crewdeck/internal/config"
	"github.com/crewdeck/crewdeck/internal/credentials"
	"github.com/crewdeck/crewdeck/internal/logging"
	"github.com/crewdeck/crewdeck/internal/session"

	_ "modernc.org/sqlite"
)

// App wires the config, credential store, API client and session manager
// behind an interactive shell.
type App struct {
	config  *config.Config
	api     *api.Client
	session *session.Manager
	tokens  *credentials.TokenStore
	log     logging.Logger
	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	var db *sql.DB
	var repo credentials.Repository = credentials.NoopRepository{}

	if c.CredentialsDB != "" {
		var err error
		db, err = credentials.Open(ctx, c.CredentialsDB)
		if err != nil {
			log.Error(ctx, "error initializing credentials database", "error", err)
			return nil, err
		}
		repo = credentials.NewSQLiteRepository(db)
	}

	tokens, err := credentials.NewTokenStore(ctx, repo)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	apiClient := api.New(c.BaseURL, tokens, api.WithTimeout(c.RequestTimeout))

	return &App{
		config:  c,
		api:     apiClient,
		session: session.NewManager(apiClient, tokens, log),
		tokens:  tokens,
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	if a.db != nil {
		defer a.db.Close()
	}
	a.session.Init(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.User() != nil
}
