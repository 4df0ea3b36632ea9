package term

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"qliz/internal/domain"
)

// PromptPlayer collects name, email, and marketing consent on stdin. Runs in
// cooked mode, before the raw-mode game screen is entered. Validation
// failures re-prompt instead of aborting.
func (s *Screen) PromptPlayer() (domain.Player, error) {
	reader := bufio.NewReader(s.in)

	s.header.Fprintln(s.out, "PLAYER REGISTRATION")

	name, err := s.promptField(reader, "NAME: ", domain.ValidateName)
	if err != nil {
		return domain.Player{}, err
	}
	email, err := s.promptField(reader, "EMAIL: ", domain.ValidateEmail)
	if err != nil {
		return domain.Player{}, err
	}
	consent, err := s.promptConsent(reader)
	if err != nil {
		return domain.Player{}, err
	}

	return domain.Player{
		Name:             name,
		Email:            email,
		MarketingConsent: consent,
		CreatedAt:        time.Now(),
	}, nil
}

func (s *Screen) promptField(reader *bufio.Reader, label string, validate func(string) error) (string, error) {
	for {
		s.accent.Fprint(s.out, label)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		value := strings.TrimSpace(line)
		if err := validate(value); err != nil {
			s.bad.Fprintf(s.out, "%v\n", err)
			continue
		}
		return value, nil
	}
}

func (s *Screen) promptConsent(reader *bufio.Reader) (bool, error) {
	for {
		s.accent.Fprint(s.out, "Consent to receive marketing emails and store your email address? [y/N]: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return false, fmt.Errorf("read input: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		}
		s.bad.Fprintln(s.out, "please answer y or n")
	}
}
