package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"chat-cli/alias"
	"chat-cli/auth"
	"chat-cli/errors"
	"chat-cli/format"
	"chat-cli/internal"
	"chat-cli/repositories"
	"chat-cli/resolver"
	"chat-cli/runtime"
	"chat-cli/services"

	"github.com/dgraph-io/badger/v4"
)

// app carries the configuration and streams of one invocation. Flags write
// straight into cfg, so by the time a command runs it holds every layer.
type app struct {
	cfg      internal.Config
	noUpdate bool
	noColour bool
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
}

func newApp(cfg internal.Config, stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{cfg: cfg, stdin: stdin, stdout: stdout, stderr: stderr}
}

func (a *app) colours() bool {
	return a.cfg.Colours && !a.noColour
}

// setup creates the directories and opens the log file. The returned close
// function flushes the log.
func (a *app) setup() (*slog.Logger, func(), error) {
	if err := a.cfg.EnsureDirs(); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(a.cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: open log file: %v", errors.ErrSetup, err)
	}
	level := slog.LevelWarn
	if a.cfg.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return log, func() { _ = f.Close() }, nil
}

func (a *app) aliasStores(log *slog.Logger) (alias.Store, alias.Store) {
	return alias.NewStore(log, a.cfg.ConversationCachePath()), alias.NewStore(log, a.cfg.UserCachePath())
}

// openStore opens the local chat store and builds the account service on it.
func (a *app) openStore(log *slog.Logger) (*badger.DB, *services.AuthService, error) {
	db, err := repositories.Open(a.cfg.StorePath, log, a.cfg.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: open chat store: %v", errors.ErrSetup, err)
	}
	key, err := repositories.SigningKey(db, auth.NewSigningKey)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("%w: signing key: %v", errors.ErrSetup, err)
	}
	users := repositories.NewUserRepository(db, log)
	return db, services.NewAuthService(log, users, key, a.cfg.TokenDuration), nil
}

// execute resolves args against the alias caches and runs the command in a
// session. Resolution errors stop the run before the store is opened.
func (a *app) execute(ctx context.Context, args resolver.Args) error {
	log, closeLog, err := a.setup()
	if err != nil {
		return err
	}
	defer closeLog()

	conversations, users := a.aliasStores(log)
	cmd, err := resolver.Resolve(args, resolver.Aliases{
		Conversations: conversations.Load(),
		Users:         users.Load(),
	})
	if err != nil {
		log.Warn("Command rejected", "error", err)
		return err
	}
	log.Debug("Command resolved", "command", cmd.Name())

	db, authService, err := a.openStore(log)
	if err != nil {
		return err
	}
	defer func() {
		if cErr := db.Close(); cErr != nil {
			log.Warn("Closing chat store failed", "error", cErr)
		}
	}()

	prompter := auth.NewPrompter(log, authService, a.cfg.TokenPath, a.stdin, a.stdout)
	client := services.NewChatService(log, authService, prompter,
		repositories.NewUserRepository(db, log),
		repositories.NewConversationRepository(db, log),
		repositories.NewEventRepository(db, log),
	)
	session := runtime.NewSession(log, client, format.NewPrinter(a.stdout, a.colours()), conversations, users, runtime.Config{
		RequestTimeout: a.cfg.RequestTimeout,
		RefreshCaches:  !a.noUpdate,
	})
	return session.Run(ctx, cmd)
}

// register creates an account and keeps its token, so the next command does
// not prompt.
func (a *app) register(ctx context.Context, email, fullName string) error {
	log, closeLog, err := a.setup()
	if err != nil {
		return err
	}
	defer closeLog()

	db, authService, err := a.openStore(log)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	prompter := auth.NewPrompter(log, authService, a.cfg.TokenPath, a.stdin, a.stdout)
	password, err := prompter.AskPassword("Password: ")
	if err != nil {
		return fmt.Errorf("%w: read password: %v", errors.ErrAuth, err)
	}
	confirmation, err := prompter.AskPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("%w: read password: %v", errors.ErrAuth, err)
	}
	if password != confirmation {
		return fmt.Errorf("%w: passwords do not match", errors.ErrInvalidArguments)
	}

	callCtx, cancel := context.WithTimeout(ctx, a.cfg.RequestTimeout)
	defer cancel()
	token, err := authService.Register(callCtx, email, password, fullName)
	if err != nil {
		return err
	}
	if err = os.WriteFile(a.cfg.TokenPath, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("%w: save token: %v", errors.ErrSetup, err)
	}
	return format.NewPrinter(a.stdout, a.colours()).Notice("Account created for %s", email)
}

// labels lists the cached aliases for shell completion. It never logs.
func (a *app) labels(path string) []string {
	return alias.NewStore(slog.New(slog.NewTextHandler(io.Discard, nil)), path).Load().Labels()
}
