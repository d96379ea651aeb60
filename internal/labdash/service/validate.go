package service

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/aussiebroadwan/labdash/internal/labdash/domain"
)

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}

func normalizeFullName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxFullNameLength {
		return "", ErrInvalidName
	}
	return name, nil
}

func checkPassword(pw string) error {
	n := utf8.RuneCountInString(pw)
	switch {
	case n < MinPasswordLength:
		return ErrPasswordTooShort
	case n > MaxPasswordLength:
		return ErrPasswordTooLong
	}
	return nil
}

func parseKnownRole(raw string) (domain.Role, error) {
	r := domain.ParseRole(raw)
	if !r.Known() {
		return domain.RoleUnknown, ErrInvalidRole
	}
	return r, nil
}
