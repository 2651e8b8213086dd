package domain

import "strings"

// UnknownName is displayed for users the roster has no name for.
const UnknownName = "Unknown"

type User struct {
	ID        string
	FullName  string
	FirstName string
	Email     string
}

// DisplayName returns the full name, or UnknownName when the user has none.
func (u User) DisplayName() string {
	if strings.TrimSpace(u.FullName) == "" {
		return UnknownName
	}
	return u.FullName
}

// ShortName returns the first name, falling back on the display name.
func (u User) ShortName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	if fields := strings.Fields(u.FullName); len(fields) > 0 {
		return fields[0]
	}
	return UnknownName
}
