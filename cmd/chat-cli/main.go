package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"chat-cli/errors"
	"chat-cli/internal"
)

// Exit codes reported to the shell.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
	exitSetup   = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns its exit code. Every deferred
// cleanup has run by the time it returns.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	dirs, err := internal.ResolveDirs()
	if err != nil {
		fmt.Fprintf(stderr, "chat-cli: %v\n", err)
		return exitSetup
	}
	cfg, err := internal.Load(dirs, ".env")
	if err != nil {
		fmt.Fprintf(stderr, "chat-cli: %v\n", err)
		return exitConfig
	}

	root := newRootCommand(newApp(cfg, stdin, stdout, stderr))
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err = root.ExecuteContext(ctx); err != nil {
		report(stderr, err)
		return exitCode(err)
	}
	return exitOK
}

func report(w io.Writer, err error) {
	switch {
	case stderrors.Is(err, errors.ErrAuth):
		fmt.Fprintf(w, "Login failed (%v)\n", err)
	default:
		fmt.Fprintf(w, "chat-cli: %v\n", err)
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case stderrors.Is(err, errors.ErrUsage):
		return exitConfig
	case stderrors.Is(err, errors.ErrSetup), stderrors.Is(err, errors.ErrAuth):
		return exitSetup
	default:
		return exitRuntime
	}
}
