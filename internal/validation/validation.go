// Package validation provides input validation helpers shared by the
// service layer and the CLI commands.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/badoux/checkmail"
)

// addressShape requires a dotted domain (local@domain.tld). checkmail
// accepts bare domains, which the mail service must not.
var addressShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[a-zA-Z]{2,}$`)

// Email validates the shape of an email address. It does not touch the
// network; deliverability is the transport's problem.
func Email(addr string) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return fmt.Errorf("email address is required")
	}
	if strings.ContainsAny(addr, "<>\r\n") {
		return fmt.Errorf("invalid email address: %s", addr)
	}
	if err := checkmail.ValidateFormat(addr); err != nil {
		return fmt.Errorf("invalid email address %s: %w", addr, err)
	}
	if !addressShape.MatchString(addr) {
		return fmt.Errorf("invalid email address: %s", addr)
	}
	return nil
}

// IsValidEmail reports whether addr passes Email.
func IsValidEmail(addr string) bool {
	return Email(addr) == nil
}

// Required checks for blank strings.
func Required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}
