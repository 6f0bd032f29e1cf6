package mail

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-imap"
	gomessage "github.com/emersion/go-message/mail"
)

// BodyPlaceholder is used when only headers were fetched.
const BodyPlaceholder = "(body not fetched)"

// Message is one email as seen through IMAP. ID is the UID within the
// selected mailbox, rendered as a decimal string.
type Message struct {
	ID      string    `json:"id"`
	From    string    `json:"from"`
	To      []string  `json:"to,omitempty"`
	Cc      []string  `json:"cc,omitempty"`
	Bcc     []string  `json:"bcc,omitempty"`
	Subject string    `json:"subject"`
	Date    time.Time `json:"date"`
	Flags   []string  `json:"flags,omitempty"`
	Body    string    `json:"body,omitempty"`
	Size    uint32    `json:"size,omitempty"`
}

// IsSeen reports whether the message carries the seen flag.
func (m *Message) IsSeen() bool {
	for _, f := range m.Flags {
		if f == "seen" {
			return true
		}
	}
	return false
}

// messageFromIMAP converts a fetched IMAP message. When section is
// non-nil the body literal is parsed; otherwise the body holds a
// placeholder. A missing envelope date falls back to the given time.
func messageFromIMAP(msg *imap.Message, section *imap.BodySectionName, now time.Time) Message {
	out := Message{
		ID:    fmt.Sprintf("%d", msg.Uid),
		Flags: normalizeFlags(msg.Flags),
		Body:  BodyPlaceholder,
		Size:  msg.Size,
		Date:  now,
	}

	if env := msg.Envelope; env != nil {
		out.Subject = env.Subject
		out.From = firstAddress(env.From)
		out.To = addressStrings(env.To)
		out.Cc = addressStrings(env.Cc)
		out.Bcc = addressStrings(env.Bcc)
		if !env.Date.IsZero() {
			out.Date = env.Date
		}
	}

	if section != nil {
		if r := msg.GetBody(section); r != nil {
			if body, err := extractBody(r); err == nil {
				out.Body = body
			} else {
				out.Body = fmt.Sprintf("(failed to parse body: %v)", err)
			}
		}
	}
	return out
}

// extractBody walks the MIME structure and returns the first inline
// text part, preferring text/plain over text/html.
func extractBody(r io.Reader) (string, error) {
	mr, err := gomessage.CreateReader(r)
	if err != nil {
		return "", fmt.Errorf("reading message: %w", err)
	}

	var plain, html string
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("reading part: %w", err)
		}

		switch h := part.Header.(type) {
		case *gomessage.InlineHeader:
			ctype, _, _ := h.ContentType()
			data, err := io.ReadAll(part.Body)
			if err != nil {
				continue
			}
			switch {
			case ctype == "text/plain" && plain == "":
				plain = string(data)
			case ctype == "text/html" && html == "":
				html = string(data)
			}
		case *gomessage.AttachmentHeader:
			// skipped; attachments are not downloaded
		}
	}

	if plain != "" {
		return strings.TrimRight(plain, "\r\n"), nil
	}
	if html != "" {
		return strings.TrimRight(html, "\r\n"), nil
	}
	return "", nil
}

// normalizeFlags strips the IMAP backslash prefix and lowercases, so
// "\Seen" renders as "seen".
func normalizeFlags(flags []string) []string {
	if len(flags) == 0 {
		return nil
	}
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		f = strings.ToLower(strings.TrimPrefix(f, "\\"))
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func firstAddress(addrs []*imap.Address) string {
	if len(addrs) == 0 {
		return ""
	}
	return formatAddress(addrs[0])
}

func addressStrings(addrs []*imap.Address) []string {
	if len(addrs) == 0 {
		return nil
	}
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		out = append(out, formatAddress(a))
	}
	return out
}

// formatAddress renders a bare mailbox@host address; display names and
// angle brackets are dropped.
func formatAddress(a *imap.Address) string {
	return a.Address()
}
