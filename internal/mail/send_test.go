package mail

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-imap"
)

func TestSend_DeliversOneMessage(t *testing.T) {
	smtp := &fakeSMTP{}
	s, _ := newTestService(&fakeIMAP{}, smtp)

	err := s.Send([]string{"alice@example.com", "bob@example.com"}, "Hello", "plain text", "")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if len(smtp.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(smtp.sent))
	}
	if got := smtp.sent[0].GetHeader("To"); len(got) != 2 {
		t.Errorf("To = %v, want both recipients", got)
	}
}

func TestSend_ValidatesBeforeDialing(t *testing.T) {
	dialed := false
	s := NewService(Config{Username: "me@example.com"})
	s.dialSMTP = func(Config) smtpSender {
		dialed = true
		return &fakeSMTP{}
	}

	tests := []struct {
		name    string
		to      []string
		subject string
		text    string
		want    error
	}{
		{"no recipients", nil, "Hi", "body", ErrNoRecipients},
		{"empty subject", []string{"a@example.com"}, "  ", "body", ErrMissingSubject},
		{"empty body", []string{"a@example.com"}, "Hi", "", ErrMissingBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.Send(tt.to, tt.subject, tt.text, ""); !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	err := s.Send([]string{"not-an-address"}, "Hi", "body", "")
	if !IsAddressError(err) {
		t.Errorf("got %v, want AddressError", err)
	}
	var ae *AddressError
	if errors.As(err, &ae) && ae.Address != "not-an-address" {
		t.Errorf("Address = %q, want the rejected input", ae.Address)
	}

	if dialed {
		t.Error("validation failures must not reach the dialer")
	}
}

func TestSend_TransportFailureWrapped(t *testing.T) {
	smtp := &fakeSMTP{err: errors.New("550 mailbox unavailable")}
	s, _ := newTestService(&fakeIMAP{}, smtp)

	err := s.Send([]string{"a@example.com"}, "Hi", "body", "")
	var pe *ProtocolError
	if !errors.As(err, &pe) || pe.Code != CodeSMTPSend {
		t.Errorf("got %v, want ProtocolError with %s", err, CodeSMTPSend)
	}
}

func TestSendWithAttachments_RequiresExistingFiles(t *testing.T) {
	smtp := &fakeSMTP{}
	s, _ := newTestService(&fakeIMAP{}, smtp)
	to := []string{"a@example.com"}

	if err := s.SendWithAttachments(to, "Hi", "body", "", nil); !errors.Is(err, ErrNoAttachments) {
		t.Errorf("got %v, want ErrNoAttachments", err)
	}

	err := s.SendWithAttachments(to, "Hi", "body", "", []string{"/no/such/file.pdf"})
	if err == nil || !strings.Contains(err.Error(), "attachment") {
		t.Errorf("got %v, want attachment stat error", err)
	}
	if len(smtp.sent) != 0 {
		t.Error("nothing should be sent when an attachment is missing")
	}

	path := filepath.Join(t.TempDir(), "report.txt")
	if err := os.WriteFile(path, []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := s.SendWithAttachments(to, "Hi", "body", "", []string{path}); err != nil {
		t.Fatalf("SendWithAttachments: %v", err)
	}
	if len(smtp.sent) != 1 {
		t.Errorf("sent %d messages, want 1", len(smtp.sent))
	}
}

func TestSendBatch_PerRecipientOutcomes(t *testing.T) {
	smtp := &fakeSMTP{}
	s, _ := newTestService(&fakeIMAP{}, smtp)

	result, err := s.SendBatch([]string{"good@example.com", "bad-address", "other@example.com"}, "Hi", "body", "")
	if err != nil {
		t.Fatalf("SendBatch: %v", err)
	}
	if len(result.Succeeded) != 2 {
		t.Errorf("succeeded = %v, want 2 recipients", result.Succeeded)
	}
	if len(result.Failed) != 1 || result.Failed[0].ID != "bad-address" {
		t.Errorf("failed = %+v, want only bad-address", result.Failed)
	}
	if len(smtp.sent) != 2 {
		t.Errorf("sent %d messages, want one per valid recipient", len(smtp.sent))
	}
}

func TestSendEach_IsolatesItemFailures(t *testing.T) {
	smtp := &fakeSMTP{}
	s, _ := newTestService(&fakeIMAP{}, smtp)

	items := []BulkItem{
		{To: []string{"a@example.com"}, Subject: "One", TextBody: "x"},
		{To: []string{"b@example.com"}, Subject: "", TextBody: "x"},
		{To: nil, Subject: "Three", TextBody: "x"},
		{To: []string{"d@example.com"}, Subject: "Four", TextBody: "x"},
	}
	result, err := s.SendEach(items)
	if err != nil {
		t.Fatalf("SendEach: %v", err)
	}
	if len(result.Succeeded) != 2 {
		t.Errorf("succeeded = %v, want items one and four", result.Succeeded)
	}
	if len(result.Failed) != 2 {
		t.Errorf("failed = %+v, want two items", result.Failed)
	}
	if len(smtp.sent) != 2 {
		t.Errorf("sent %d messages, want 2", len(smtp.sent))
	}
}

func TestForward_MissingMessageSendsNothing(t *testing.T) {
	smtp := &fakeSMTP{}
	s, _ := newTestService(&fakeIMAP{}, smtp)

	err := s.Forward("123", []string{"a@example.com"}, "")
	if !errors.Is(err, ErrEmailNotFound) {
		t.Fatalf("got %v, want ErrEmailNotFound", err)
	}
	if len(smtp.sent) != 0 {
		t.Error("nothing should be sent when the source message is missing")
	}
}

func TestForward_PrefixesSubjectAndQuotesBody(t *testing.T) {
	conn := &fakeIMAP{
		fetchFunc: func(_ *imap.SeqSet, _ []imap.FetchItem, ch chan *imap.Message) error {
			ch <- &imap.Message{
				Uid: 9,
				Envelope: &imap.Envelope{
					Subject: "Quarterly numbers",
					From:    []*imap.Address{{MailboxName: "carol", HostName: "example.com"}},
					Date:    time.Now(),
				},
			}
			return nil
		},
	}
	smtp := &fakeSMTP{}
	s, _ := newTestService(conn, smtp)

	if err := s.Forward("9", []string{"a@example.com"}, "see below"); err != nil {
		t.Fatalf("Forward: %v", err)
	}
	if len(smtp.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(smtp.sent))
	}
	if got := smtp.sent[0].GetHeader("Subject"); len(got) != 1 || got[0] != "Fwd: Quarterly numbers" {
		t.Errorf("Subject = %v, want Fwd: prefix", got)
	}
}

func TestReply_AddressesOriginalSender(t *testing.T) {
	conn := &fakeIMAP{
		fetchFunc: func(_ *imap.SeqSet, _ []imap.FetchItem, ch chan *imap.Message) error {
			ch <- &imap.Message{
				Uid: 4,
				Envelope: &imap.Envelope{
					Subject: "Re: standup",
					From:    []*imap.Address{{MailboxName: "carol", HostName: "example.com"}},
					To: []*imap.Address{
						{MailboxName: "me", HostName: "example.com"},
						{MailboxName: "dave", HostName: "example.com"},
					},
					Date: time.Now(),
				},
			}
			return nil
		},
	}
	smtp := &fakeSMTP{}
	s, _ := newTestService(conn, smtp)

	if err := s.Reply("4", "on my way", true); err != nil {
		t.Fatalf("Reply: %v", err)
	}
	to := smtp.sent[0].GetHeader("To")
	if len(to) != 2 {
		t.Fatalf("To = %v, want sender plus dave, not self", to)
	}
	if got := smtp.sent[0].GetHeader("Subject"); len(got) != 1 || got[0] != "Re: standup" {
		t.Errorf("Subject = %v, want existing Re: kept", got)
	}
}

func TestCreateDraft_NotStored(t *testing.T) {
	s, dials := newTestService(&fakeIMAP{}, &fakeSMTP{})

	draft, err := s.CreateDraft([]string{"a@example.com"}, "Later", "draft body")
	if err != nil {
		t.Fatalf("CreateDraft: %v", err)
	}
	if draft.ID == "" {
		t.Error("draft must get an id")
	}
	if draft.Stored {
		t.Error("Stored must be false")
	}
	if *dials != 0 {
		t.Error("drafting must not touch the server")
	}
}

func TestScheduleEmail_RejectsPast(t *testing.T) {
	s, _ := newTestService(&fakeIMAP{}, &fakeSMTP{})
	to := []string{"a@example.com"}

	_, err := s.ScheduleEmail(to, "Hi", "body", time.Now().Add(-time.Minute))
	if !errors.Is(err, ErrScheduleInPast) {
		t.Errorf("got %v, want ErrScheduleInPast", err)
	}

	sched, err := s.ScheduleEmail(to, "Hi", "body", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("ScheduleEmail: %v", err)
	}
	if sched.Stored {
		t.Error("Stored must be false")
	}
}
