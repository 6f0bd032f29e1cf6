// Package contacts implements an in-memory address book. The store is
// constructed and injected by the caller; persistence across CLI
// invocations is handled by the file snapshot in file.go, which is an
// external collaborator of the store, not part of it.
package contacts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/salmonumbrella/mailcli/internal/validation"
)

// Contact is one address book entry. Group is empty unless assigned;
// display defaults are the CLI's business, not the store's.
type Contact struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Email    string            `json:"email"`
	Group    string            `json:"group,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

var (
	ErrMissingName  = errors.New("contact name is required")
	ErrUnknownField = errors.New("unknown contact field")
)

// Store holds contacts in insertion order. All operations are linear
// scans; one CLI invocation never holds enough contacts for that to
// matter. Not safe for concurrent use.
type Store struct {
	contacts []Contact
}

func NewStore() *Store {
	return &Store{}
}

// Add validates and appends a contact. The email is lowercased and the
// name trimmed before storage.
func (s *Store) Add(name, email, group string) (*Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validation.Email(email); err != nil {
		return nil, err
	}

	c := Contact{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
		Group: strings.TrimSpace(group),
	}
	s.contacts = append(s.contacts, c)
	return &c, nil
}

// List returns up to limit contacts in insertion order, or all of them
// when limit <= 0.
func (s *Store) List(limit int) []Contact {
	out := make([]Contact, len(s.contacts))
	copy(out, s.contacts)
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out
}

// Len reports the number of stored contacts.
func (s *Store) Len() int {
	return len(s.contacts)
}

// Get returns the contact with the given id, or nil if absent.
func (s *Store) Get(id string) *Contact {
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			c := s.contacts[i]
			return &c
		}
	}
	return nil
}

// ByGroup returns contacts whose group exactly matches the trimmed
// argument. An empty group yields an empty result, never the full list.
func (s *Store) ByGroup(group string) []Contact {
	group = strings.TrimSpace(group)
	if group == "" {
		return nil
	}
	var out []Contact
	for _, c := range s.contacts {
		if c.Group == group {
			out = append(out, c)
		}
	}
	return out
}

// Search returns contacts whose name or email contains the query,
// case-insensitively. An empty query yields an empty result.
func (s *Store) Search(query string) []Contact {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	var out []Contact
	for _, c := range s.contacts {
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.Email), query) {
			out = append(out, c)
		}
	}
	return out
}

// UpdateField updates a single named field. Returns nil, nil when the
// id is not found. Email updates are validated exactly like Add.
func (s *Store) UpdateField(id, field, value string) (*Contact, error) {
	return s.UpdateFields(id, map[string]string{field: value})
}

// UpdateFields merges the given fields into the contact. Returns
// nil, nil when the id is not found. All fields are validated before
// any mutation so a partial merge can not happen.
func (s *Store) UpdateFields(id string, updates map[string]string) (*Contact, error) {
	idx := s.index(id)
	if idx < 0 {
		return nil, nil
	}

	merged := s.contacts[idx]
	for field, value := range updates {
		switch field {
		case "name":
			value = strings.TrimSpace(value)
			if value == "" {
				return nil, ErrMissingName
			}
			merged.Name = value
		case "email":
			value = strings.ToLower(strings.TrimSpace(value))
			if err := validation.Email(value); err != nil {
				return nil, err
			}
			merged.Email = value
		case "group":
			merged.Group = strings.TrimSpace(value)
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	s.contacts[idx] = merged
	c := merged
	return &c, nil
}

// Delete removes the contact with the given id and reports whether a
// record was found.
func (s *Store) Delete(id string) bool {
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	s.contacts = append(s.contacts[:idx], s.contacts[idx+1:]...)
	return true
}

func (s *Store) index(id string) int {
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			return i
		}
	}
	return -1
}
