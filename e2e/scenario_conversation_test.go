package e2e

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

const password = "ComplexPass123!"

type testConversationSuite struct {
	BaseCLISuite
}

func TestConversationSuite(t *testing.T) {
	suite.Run(t, &testConversationSuite{})
}

func (s *testConversationSuite) register(account, email, name string) {
	s.MustCLI("Register "+name, password+"\n"+password+"\n",
		"register", "-e", email, "--name", name, "--token", s.TokenPath(account))
}

func (s *testConversationSuite) TestFullConversationFlow() {
	s.register("alice", "alice@example.com", "Alice Smith")
	s.register("bob", "bob@example.com", "Bob Jones")
	s.register("bob2", "bob2@example.com", "Bob Jones")

	// --- STEP 1: ALIASES ---
	s.Run("Step 1: Homonyms get distinct aliases", func() {
		res := s.MustCLI("List users", "", "users", "--token", s.TokenPath("alice"))
		s.Contains(res.Stdout, "Alice_Smith")
		s.Contains(res.Stdout, "Bob_Jones")
		s.Contains(res.Stdout, "Bob_Jones_1")
	})

	// --- STEP 2: CONVERSATION ---
	s.Run("Step 2: Create a named conversation", func() {
		res := s.MustCLI("Create conversation", "", "create", "--name", "Weekend plans", "-u", "Bob_Jones", "-u", "Bob_Jones_1", "--token", s.TokenPath("alice"))
		s.Contains(res.Stdout, "Conversation created: Weekend plans")
	})

	s.Run("Step 3: Send a message with an attachment", func() {
		attachment := filepath.Join(s.T().TempDir(), "notes.txt")
		s.Require().NoError(os.WriteFile(attachment, []byte("bring snacks\n"), 0o600))

		res := s.MustCLI("Send message", "", "send", "-c", "Weekend_plans", "-m", "see https://example.com", "-a", attachment, "--token", s.TokenPath("alice"))
		s.Contains(res.Stdout, "Message sent to Weekend_plans")
	})

	s.Run("Step 4: Rename the conversation", func() {
		s.MustCLI("Rename conversation", "", "rename", "-c", "Weekend_plans", "--name", "Trip", "--token", s.TokenPath("alice"))
	})

	// --- STEP 5: READ BACK ---
	s.Run("Step 5: The history is printed oldest first", func() {
		res := s.MustCLI("Read history", "", "get", "-c", "Trip", "--token", s.TokenPath("alice"))
		lines := strings.Split(strings.TrimSpace(res.Stdout), "\n")
		s.Require().Len(lines, 3)
		s.Contains(lines[0], "Alice added Bob Jones, Bob Jones to the conversation")
		s.Contains(lines[1], "Alice: see https://example.com [attachment: notes.txt (text/plain; charset=utf-8, 13 B)]")
		s.Contains(lines[2], "Alice renamed the conversation to Trip")
	})

	// --- STEP 6: ERRORS ---
	s.Run("Step 6: Usage errors exit before any network action", func() {
		res := s.CLI("Send without destination", "", "send", "-m", "lost", "--token", s.TokenPath("alice"))
		s.Equal(2, res.Code)

		res = s.CLI("Send to a user", "", "send", "-u", "Bob_Jones", "-m", "hi", "--token", s.TokenPath("alice"))
		s.Equal(2, res.Code)
		s.Contains(res.Stderr, "not implemented")
	})

	s.Run("Step 7: Leaving hides the conversation", func() {
		s.MustCLI("Leave conversation", "", "leave", "-c", "Trip", "--token", s.TokenPath("alice"))
		res := s.MustCLI("List conversations", "", "--token", s.TokenPath("alice"))
		s.NotContains(res.Stdout, "Trip")

		res = s.MustCLI("Bob reads history", "", "--token", s.TokenPath("bob"))
		s.Contains(res.Stdout, "Trip")
		res = s.MustCLI("Bob reads history", "", "get", "-c", "Trip", "-n", "1", "--token", s.TokenPath("bob"))
		s.Contains(res.Stdout, "Alice Smith left the conversation")
	})
}

func (s *testConversationSuite) TestLoginFailure() {
	s.register("alice", "alice@example.com", "Alice Smith")

	res := s.CLI("Login with a wrong password", "alice@example.com\nWrongPass123!\n", "--token", s.TokenPath("other"))
	s.Equal(3, res.Code)
	s.Contains(res.Stderr, "Login failed (")
}
