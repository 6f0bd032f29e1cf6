package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/salmonumbrella/mailcli/internal/mail"
)

func TestEmailRead_PrintsTable(t *testing.T) {
	mock := &mail.MockMailer{
		ReadRecentFunc: func(count int, withBody bool) ([]mail.Message, error) {
			if count != 2 {
				t.Errorf("count = %d, want 2", count)
			}
			if withBody {
				t.Error("withBody = true without --body")
			}
			return []mail.Message{
				{ID: "102", From: "carol@example.com", Subject: "Newest", Date: time.Now(), Flags: []string{"seen"}},
				{ID: "101", From: "dave@example.com", Subject: "Older", Date: time.Now()},
			}, nil
		},
	}
	app := newTestApp(t, mock)

	out, err := runCommand(t, app, "email", "read", "--count", "2")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Newest") || !strings.Contains(out, "Older") {
		t.Fatalf("missing rows: %q", out)
	}
	if strings.Index(out, "Newest") > strings.Index(out, "Older") {
		t.Error("rows must keep newest-first order")
	}
}

func TestEmailRead_JSONOutput(t *testing.T) {
	mock := &mail.MockMailer{
		ReadRecentFunc: func(count int, withBody bool) ([]mail.Message, error) {
			return []mail.Message{{ID: "7", Subject: "hello"}}, nil
		},
	}
	app := newTestApp(t, mock)

	out, err := runCommand(t, app, "--output=json", "email", "read")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, `"id": "7"`) {
		t.Fatalf("missing JSON field: %q", out)
	}
}

func TestEmailSend_PassesFlags(t *testing.T) {
	var gotTo []string
	var gotSubject string
	mock := &mail.MockMailer{
		SendFunc: func(to []string, subject, textBody, htmlBody string) error {
			gotTo = to
			gotSubject = subject
			return nil
		},
	}
	app := newTestApp(t, mock)

	_, err := runCommand(t, app, "email", "send",
		"--to", "a@example.com", "--to", "b@example.com",
		"--subject", "Hi", "--body", "Hello")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(gotTo) != 2 || gotTo[0] != "a@example.com" {
		t.Errorf("to = %v", gotTo)
	}
	if gotSubject != "Hi" {
		t.Errorf("subject = %q", gotSubject)
	}
}

func TestEmailSend_AttachmentsRouteToAttachmentSend(t *testing.T) {
	attachCalled := false
	mock := &mail.MockMailer{
		SendWithAttachmentsFunc: func(to []string, subject, textBody, htmlBody string, paths []string) error {
			attachCalled = true
			if len(paths) != 1 || paths[0] != "report.pdf" {
				t.Errorf("paths = %v", paths)
			}
			return nil
		},
	}
	app := newTestApp(t, mock)

	_, err := runCommand(t, app, "email", "send",
		"--to", "a@example.com", "--subject", "Hi", "--body", "x", "--attach", "report.pdf")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !attachCalled {
		t.Error("SendWithAttachments was not called")
	}
}

func TestEmailDelete_ForceSkipsPrompt(t *testing.T) {
	deleted := ""
	mock := &mail.MockMailer{
		DeleteFunc: func(id string) error {
			deleted = id
			return nil
		},
	}
	app := newTestApp(t, mock)

	if _, err := runCommand(t, app, "email", "delete", "42", "--force"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if deleted != "42" {
		t.Errorf("deleted = %q, want 42", deleted)
	}
}

func TestEmailDelete_DeclinedExitsZero(t *testing.T) {
	mock := &mail.MockMailer{
		DeleteFunc: func(id string) error {
			t.Error("delete must not run after a declined confirmation")
			return nil
		},
	}
	app := newTestApp(t, mock)
	withStdin(t, "no\n")

	if _, err := runCommand(t, app, "email", "delete", "42"); err != nil {
		t.Fatalf("declined confirmation must not be an error, got %v", err)
	}
}

func TestEmailBulkDelete_DryRun(t *testing.T) {
	mock := &mail.MockMailer{
		DeleteBatchFunc: func(ids []string) (*mail.BatchResult, error) {
			t.Error("dry run must not delete")
			return &mail.BatchResult{}, nil
		},
	}
	app := newTestApp(t, mock)

	out, err := runCommand(t, app, "email", "bulk-delete", "1", "2", "--dry-run")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Would delete 2 emails") {
		t.Fatalf("missing dry run header: %q", out)
	}
}

func TestEmailBulkDelete_PrintsPartition(t *testing.T) {
	mock := &mail.MockMailer{
		DeleteBatchFunc: func(ids []string) (*mail.BatchResult, error) {
			return &mail.BatchResult{
				Succeeded: []string{"1"},
				Failed:    []mail.BatchFailure{{ID: "2", Reason: "email not found"}},
			}, nil
		},
	}
	app := newTestApp(t, mock)

	out, err := runCommand(t, app, "email", "bulk-delete", "1", "2", "--yes")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Deleted 1 emails, 1 failed:") {
		t.Fatalf("missing summary: %q", out)
	}
}

func TestEmailBulkSend_FileRoutesToSendEach(t *testing.T) {
	var got []mail.BulkItem
	mock := &mail.MockMailer{
		SendEachFunc: func(items []mail.BulkItem) (*mail.BatchResult, error) {
			got = items
			return &mail.BatchResult{Succeeded: []string{"a@example.com"}}, nil
		},
	}
	app := newTestApp(t, mock)

	path := filepath.Join(t.TempDir(), "messages.json")
	payload := `[{"to":["a@example.com"],"subject":"Hi","body":"x"}]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCommand(t, app, "email", "bulk-send", "--file", path); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(got) != 1 || got[0].Subject != "Hi" {
		t.Errorf("items = %+v", got)
	}
}

func TestEmailSearch_ParsesDates(t *testing.T) {
	var got mail.SearchFilter
	mock := &mail.MockMailer{
		SearchFunc: func(filter mail.SearchFilter, page, limit int) (*mail.SearchResult, error) {
			got = filter
			return &mail.SearchResult{Messages: []mail.Message{}, Page: page, Limit: limit}, nil
		},
	}
	app := newTestApp(t, mock)

	_, err := runCommand(t, app, "email", "search", "--from", "billing@example.com", "--since", "2026-01-02")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got.From != "billing@example.com" {
		t.Errorf("From = %q", got.From)
	}
	if got.Since.IsZero() {
		t.Error("Since was not parsed")
	}
}

func TestEmailStats_Table(t *testing.T) {
	mock := &mail.MockMailer{
		StatisticsFunc: func() (*mail.Stats, error) {
			return &mail.Stats{Total: 10, Unseen: 3, Flagged: 1, Today: 2}, nil
		},
	}
	app := newTestApp(t, mock)

	out, err := runCommand(t, app, "email", "stats")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "TOTAL") || !strings.Contains(out, "10") {
		t.Fatalf("missing stats: %q", out)
	}
}

func TestDraftSchedule_ParsesAt(t *testing.T) {
	var gotAt time.Time
	mock := &mail.MockMailer{
		ScheduleEmailFunc: func(to []string, subject, body string, sendAt time.Time) (*mail.ScheduledEmail, error) {
			gotAt = sendAt
			return &mail.ScheduledEmail{ID: "s1", SendAt: sendAt}, nil
		},
	}
	app := newTestApp(t, mock)

	_, err := runCommand(t, app, "draft", "schedule",
		"--to", "a@example.com", "--subject", "Hi", "--body", "x", "--at", "tomorrow")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if gotAt.IsZero() {
		t.Error("sendAt was not parsed")
	}
}

func TestReadShortcut_MatchesEmailRead(t *testing.T) {
	calls := 0
	mock := &mail.MockMailer{
		ReadRecentFunc: func(count int, withBody bool) ([]mail.Message, error) {
			calls++
			return nil, nil
		},
	}
	app := newTestApp(t, mock)

	if _, err := runCommand(t, app, "read"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if calls != 1 {
		t.Errorf("ReadRecent calls = %d, want 1", calls)
	}
}
