package e2e

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
)

// Result is the outcome of one chat-cli invocation.
type Result struct {
	Code   int
	Stdout string
	Stderr string
}

type BaseCLISuite struct {
	suite.Suite
	Config  Config
	dataDir string
	cfgDir  string
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseCLISuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.Binary == "" {
		s.T().Skip("E2E_BINARY is not set")
	}
}

// SetupTest gives every test its own configuration and data directories.
func (s *BaseCLISuite) SetupTest() {
	root := s.T().TempDir()
	if s.Config.KeepStore {
		var err error
		root, err = os.MkdirTemp("", "chat-cli-e2e-")
		s.Require().NoError(err)
		s.T().Logf("Keeping store in %s", root)
	}
	s.cfgDir = filepath.Join(root, "config")
	s.dataDir = filepath.Join(root, "data")
}

func (s *BaseCLISuite) TokenPath(account string) string {
	return filepath.Join(s.dataDir, account+".token")
}

// CLI runs the binary with stdin and args, logging a header and the outcome.
func (s *BaseCLISuite) CLI(name, stdin string, args ...string) Result {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	ctx, cancel := context.WithTimeout(context.Background(), s.Config.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.Config.Binary, append(args, "--no-color")...)
	cmd.Env = append(os.Environ(),
		"CHAT_CLI_CONFIG_DIR="+s.cfgDir,
		"CHAT_CLI_DATA_DIR="+s.dataDir,
	)
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case stderrors.As(err, &exitErr):
		result.Code = exitErr.ExitCode()
	default:
		s.Require().NoError(err, "chat-cli could not be started")
	}

	s.T().Logf("chat-cli %s [exit %d] in %v", strings.Join(args, " "), result.Code, time.Since(start))
	if result.Stderr != "" {
		s.T().Logf("STDERR:\n%s", result.Stderr)
	}
	return result
}

// MustCLI is CLI for invocations that have to succeed.
func (s *BaseCLISuite) MustCLI(name, stdin string, args ...string) Result {
	result := s.CLI(name, stdin, args...)
	s.Require().Equal(0, result.Code, result.Stderr)
	return result
}
