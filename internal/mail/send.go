package mail

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/salmonumbrella/mailcli/internal/validation"
	gomail "gopkg.in/gomail.v2"
)

// BatchFailure records one failed item of a batch operation.
type BatchFailure struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

// BatchResult partitions a batch into successes and failures. Every
// input item lands in exactly one of the two lists.
type BatchResult struct {
	Succeeded []string       `json:"succeeded"`
	Failed    []BatchFailure `json:"failed"`
}

// Send delivers one message to the given recipients. At least one of
// textBody and htmlBody must be set; when both are, the message goes
// out as multipart/alternative.
func (s *Service) Send(to []string, subject, textBody, htmlBody string) error {
	if err := validateSend(to, subject, textBody, htmlBody); err != nil {
		return err
	}
	m := s.buildMessage(to, subject, textBody, htmlBody)
	return s.deliver(m)
}

// SendWithAttachments delivers one message with the given files
// attached. Every path must exist before anything is sent.
func (s *Service) SendWithAttachments(to []string, subject, textBody, htmlBody string, paths []string) error {
	if err := validateSend(to, subject, textBody, htmlBody); err != nil {
		return err
	}
	if len(paths) == 0 {
		return ErrNoAttachments
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("attachment %s: %w", p, err)
		}
	}

	m := s.buildMessage(to, subject, textBody, htmlBody)
	for _, p := range paths {
		m.Attach(p)
	}
	return s.deliver(m)
}

// SendBatch sends the same message to each recipient individually and
// reports per-recipient outcomes. Recipients that fail validation are
// recorded as failures without blocking the rest.
func (s *Service) SendBatch(to []string, subject, textBody, htmlBody string) (*BatchResult, error) {
	if len(to) == 0 {
		return nil, ErrNoRecipients
	}
	if err := validateContent(subject, textBody, htmlBody); err != nil {
		return nil, err
	}

	result := &BatchResult{}
	for _, addr := range to {
		if err := validation.Email(addr); err != nil {
			result.Failed = append(result.Failed, BatchFailure{ID: addr, Reason: err.Error()})
			continue
		}
		m := s.buildMessage([]string{addr}, subject, textBody, htmlBody)
		if err := s.deliver(m); err != nil {
			result.Failed = append(result.Failed, BatchFailure{ID: addr, Reason: err.Error()})
			continue
		}
		result.Succeeded = append(result.Succeeded, addr)
	}
	return result, nil
}

// BulkItem is one independent message of a SendEach batch.
type BulkItem struct {
	To       []string `json:"to"`
	Subject  string   `json:"subject"`
	TextBody string   `json:"body"`
	HTMLBody string   `json:"html,omitempty"`
}

// key identifies an item in batch results: its first recipient, or a
// positional label when the item has none.
func (b BulkItem) key(i int) string {
	if len(b.To) > 0 {
		return b.To[0]
	}
	return fmt.Sprintf("item %d", i+1)
}

// SendEach sends a list of independent messages sequentially. Each
// item is validated and sent on its own; one failure never aborts the
// rest.
func (s *Service) SendEach(items []BulkItem) (*BatchResult, error) {
	result := &BatchResult{}
	for i, item := range items {
		if err := validateSend(item.To, item.Subject, item.TextBody, item.HTMLBody); err != nil {
			result.Failed = append(result.Failed, BatchFailure{ID: item.key(i), Reason: err.Error()})
			continue
		}
		m := s.buildMessage(item.To, item.Subject, item.TextBody, item.HTMLBody)
		if err := s.deliver(m); err != nil {
			result.Failed = append(result.Failed, BatchFailure{ID: item.key(i), Reason: err.Error()})
			continue
		}
		result.Succeeded = append(result.Succeeded, item.key(i))
	}
	return result, nil
}

// Forward fetches the message with the given id and sends its body to
// new recipients. The optional note is prepended to the forwarded
// body. Nothing is sent when the message cannot be found.
func (s *Service) Forward(id string, to []string, note string) error {
	if err := validateRecipients(to); err != nil {
		return err
	}
	orig, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if orig == nil {
		return ErrEmailNotFound
	}

	subject := orig.Subject
	if !strings.HasPrefix(strings.ToLower(subject), "fwd:") {
		subject = "Fwd: " + subject
	}

	var b strings.Builder
	if note != "" {
		b.WriteString(note)
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "---------- Forwarded message ----------\nFrom: %s\nDate: %s\nSubject: %s\n\n%s",
		orig.From, orig.Date.Format(time.RFC1123Z), orig.Subject, orig.Body)

	m := s.buildMessage(to, subject, b.String(), "")
	return s.deliver(m)
}

// Reply sends a reply to the message with the given id. With replyAll
// the original To and Cc recipients are kept on the thread.
func (s *Service) Reply(id, body string, replyAll bool) error {
	if strings.TrimSpace(body) == "" {
		return ErrMissingBody
	}
	orig, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if orig == nil {
		return ErrEmailNotFound
	}

	to := []string{orig.From}
	var cc []string
	if replyAll {
		self := strings.ToLower(s.cfg.Username)
		for _, a := range orig.To {
			if !strings.Contains(strings.ToLower(a), self) {
				to = append(to, a)
			}
		}
		cc = orig.Cc
	}

	subject := orig.Subject
	if !strings.HasPrefix(strings.ToLower(subject), "re:") {
		subject = "Re: " + subject
	}

	m := s.buildMessage(to, subject, body, "")
	if len(cc) > 0 {
		m.SetHeader("Cc", cc...)
	}
	return s.deliver(m)
}

func (s *Service) buildMessage(to []string, subject, textBody, htmlBody string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.Username)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	switch {
	case textBody != "" && htmlBody != "":
		m.SetBody("text/plain", textBody)
		m.AddAlternative("text/html", htmlBody)
	case htmlBody != "":
		m.SetBody("text/html", htmlBody)
	default:
		m.SetBody("text/plain", textBody)
	}
	return m
}

func (s *Service) deliver(m *gomail.Message) error {
	if err := s.sender().DialAndSend(m); err != nil {
		return wrapTransport(CodeSMTPSend, err)
	}
	return nil
}

func validateSend(to []string, subject, textBody, htmlBody string) error {
	if err := validateRecipients(to); err != nil {
		return err
	}
	return validateContent(subject, textBody, htmlBody)
}

func validateRecipients(to []string) error {
	if len(to) == 0 {
		return ErrNoRecipients
	}
	for _, addr := range to {
		if err := validation.Email(addr); err != nil {
			return &AddressError{Address: addr, Err: err}
		}
	}
	return nil
}

func validateContent(subject, textBody, htmlBody string) error {
	if strings.TrimSpace(subject) == "" {
		return ErrMissingSubject
	}
	if textBody == "" && htmlBody == "" {
		return ErrMissingBody
	}
	return nil
}
