package auth

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"chat-cli/errors"

	"golang.org/x/term"
)

// Authenticator is the login side of the chat service.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
	Verify(ctx context.Context, token string) error
}

// Prompter acquires a session token. A valid token stored at tokenPath is
// reused; otherwise the user is asked for credentials on in.
type Prompter struct {
	log       *slog.Logger
	auth      Authenticator
	tokenPath string
	in        io.Reader
	reader    *bufio.Reader
	out       io.Writer
}

func NewPrompter(log *slog.Logger, auth Authenticator, tokenPath string, in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		log:       log,
		auth:      auth,
		tokenPath: tokenPath,
		in:        in,
		reader:    bufio.NewReader(in),
		out:       out,
	}
}

// Token implements contract.ICredentialProvider.
func (p *Prompter) Token(ctx context.Context) (string, error) {
	if token, ok := p.storedToken(ctx); ok {
		return token, nil
	}

	email, err := p.AskLine("E-mail: ")
	if err != nil {
		return "", fmt.Errorf("%w: read e-mail: %v", errors.ErrAuth, err)
	}
	password, err := p.AskPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("%w: read password: %v", errors.ErrAuth, err)
	}
	if err = ValidateCredentials(Credentials{Email: email, Password: password}); err != nil {
		return "", err
	}

	token, err := p.auth.Login(ctx, email, password)
	if err != nil {
		return "", err
	}
	if err = os.WriteFile(p.tokenPath, []byte(token+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("%w: save token: %v", errors.ErrSetup, err)
	}
	p.log.Debug("Session token saved", "path", p.tokenPath)
	return token, nil
}

func (p *Prompter) storedToken(ctx context.Context) (string, bool) {
	raw, err := os.ReadFile(p.tokenPath)
	if err != nil {
		if !os.IsNotExist(err) {
			p.log.Warn("Session token unreadable", "path", p.tokenPath, "error", err)
		}
		return "", false
	}
	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", false
	}
	if err = p.auth.Verify(ctx, token); err != nil {
		p.log.Info("Stored session token rejected", "error", err)
		return "", false
	}
	return token, true
}

// AskLine prints prompt and reads one line.
func (p *Prompter) AskLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskPassword reads a line without echo when in is a terminal.
func (p *Prompter) AskPassword(prompt string) (string, error) {
	f, ok := p.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return p.AskLine(prompt)
	}
	fmt.Fprint(p.out, prompt)
	password, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(password), nil
}
