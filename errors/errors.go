// Package errors holds the error taxonomy of the CLI.
// Every specific error wraps one of the four categories so the entry point
// can pick an exit code with errors.Is.
package errors

import "fmt"

// Categories
var (
	ErrUsage     = fmt.Errorf("usage error")
	ErrSetup     = fmt.Errorf("setup error")
	ErrAuth      = fmt.Errorf("authentication failed")
	ErrTransport = fmt.Errorf("chat service error")
)

// Usage
var (
	ErrNoTarget            = fmt.Errorf("%w: one of --conversation, --user or --number is required", ErrUsage)
	ErrAmbiguousTarget     = fmt.Errorf("%w: only one of --conversation, --user or --number may be given", ErrUsage)
	ErrUnknownConversation = fmt.Errorf("%w: unknown conversation alias", ErrUsage)
	ErrUnknownUser         = fmt.Errorf("%w: unknown user alias", ErrUsage)
	ErrMissingConversation = fmt.Errorf("%w: a conversation alias is required", ErrUsage)
	ErrInvalidArguments    = fmt.Errorf("%w: invalid arguments", ErrUsage)
	ErrNotImplemented      = fmt.Errorf("%w: not implemented", ErrUsage)
	ErrInvalidAttachment   = fmt.Errorf("%w: invalid attachment", ErrUsage)
)

// Authentication
var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrAuth)
	ErrInvalidPassword    = fmt.Errorf("%w: password does not meet the complexity rules", ErrAuth)
	ErrUserAlreadyExists  = fmt.Errorf("%w: an account already exists for this e-mail", ErrAuth)
	ErrInvalidToken       = fmt.Errorf("%w: session token is invalid or expired", ErrAuth)
	ErrTokenGeneration    = fmt.Errorf("%w: could not issue a session token", ErrAuth)
)

// Chat service
var (
	ErrNotConnected         = fmt.Errorf("%w: not connected", ErrTransport)
	ErrConversationNotFound = fmt.Errorf("%w: conversation not found", ErrTransport)
	ErrUserNotFound         = fmt.Errorf("%w: user not found", ErrTransport)
	ErrNotParticipant       = fmt.Errorf("%w: not a participant of this conversation", ErrTransport)
)
