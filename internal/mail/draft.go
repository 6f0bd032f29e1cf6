package mail

import (
	"time"

	"github.com/google/uuid"
)

// Draft is a validated draft message. Drafts live only in the current
// process; Stored is always false until server-side storage exists.
type Draft struct {
	ID      string    `json:"id"`
	To      []string  `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Created time.Time `json:"created"`
	Stored  bool      `json:"stored"`
}

// ScheduledEmail is a validated scheduled send. Like drafts, nothing
// is persisted and no send is triggered; Stored reports that.
type ScheduledEmail struct {
	ID      string    `json:"id"`
	To      []string  `json:"to"`
	Subject string    `json:"subject"`
	SendAt  time.Time `json:"send_at"`
	Stored  bool      `json:"stored"`
}

// CreateDraft validates a draft and assigns it an id. The draft is
// not uploaded anywhere.
func (s *Service) CreateDraft(to []string, subject, body string) (*Draft, error) {
	if err := validateSend(to, subject, body, ""); err != nil {
		return nil, err
	}
	return &Draft{
		ID:      uuid.NewString(),
		To:      to,
		Subject: subject,
		Body:    body,
		Created: time.Now(),
		Stored:  false,
	}, nil
}

// ScheduleEmail validates a future send and assigns it an id. No
// timer is armed and nothing is persisted.
func (s *Service) ScheduleEmail(to []string, subject, body string, sendAt time.Time) (*ScheduledEmail, error) {
	if err := validateSend(to, subject, body, ""); err != nil {
		return nil, err
	}
	if !sendAt.After(time.Now()) {
		return nil, ErrScheduleInPast
	}
	return &ScheduledEmail{
		ID:      uuid.NewString(),
		To:      to,
		Subject: subject,
		SendAt:  sendAt,
		Stored:  false,
	}, nil
}
