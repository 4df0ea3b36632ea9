package domain

import "regexp"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateName checks the registration name rule. Recoverable: callers
// re-prompt instead of aborting.
func ValidateName(name string) error {
	if len([]rune(name)) < 2 {
		return ErrInvalidName
	}
	return nil
}

// ValidateEmail checks the address against the registration pattern.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}
