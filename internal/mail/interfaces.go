package mail

import "time"

// Mailer is the full email surface used by the command layer.
// *Service implements it; tests substitute MockMailer.
type Mailer interface {
	Send(to []string, subject, textBody, htmlBody string) error
	SendWithAttachments(to []string, subject, textBody, htmlBody string, paths []string) error
	SendBatch(to []string, subject, textBody, htmlBody string) (*BatchResult, error)
	SendEach(items []BulkItem) (*BatchResult, error)
	Forward(id string, to []string, note string) error
	Reply(id, body string, replyAll bool) error

	ReadRecent(count int, withBody bool) ([]Message, error)
	GetByID(id string) (*Message, error)
	MarkRead(id string, seen bool) error
	Search(filter SearchFilter, page, limit int) (*SearchResult, error)
	Statistics() (*Stats, error)

	Delete(id string) error
	DeleteBatch(ids []string) (*BatchResult, error)

	CreateDraft(to []string, subject, body string) (*Draft, error)
	ScheduleEmail(to []string, subject, body string, sendAt time.Time) (*ScheduledEmail, error)

	Close() error
}

var _ Mailer = (*Service)(nil)
