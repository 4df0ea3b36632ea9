package domain

import "errors"

var (
	// ErrNoQuestions indicates the configured bank contains zero questions.
	ErrNoQuestions = errors.New("question bank is empty")
	// ErrBankNotFound indicates the requested question bank could not be loaded.
	ErrBankNotFound = errors.New("question bank not found")
	// ErrInvalidName rejects player names shorter than two characters.
	ErrInvalidName = errors.New("name must be at least 2 characters")
	// ErrInvalidEmail rejects addresses that do not look like an email.
	ErrInvalidEmail = errors.New("invalid email format")
)
