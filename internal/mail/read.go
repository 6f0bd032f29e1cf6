package mail

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/emersion/go-imap"
)

const inbox = "INBOX"

// maxReadCount caps a single ReadRecent request.
const maxReadCount = 1000

// ReadRecent returns the newest count messages from the inbox, newest
// first. With withBody the body literal is fetched and parsed; whether
// that marks messages seen follows the MarkSeenOnRead setting.
func (s *Service) ReadRecent(count int, withBody bool) ([]Message, error) {
	if count < 1 || count > maxReadCount {
		return nil, ErrInvalidCount
	}

	c, err := s.ensureIMAP()
	if err != nil {
		return nil, err
	}

	readOnly := !withBody || !s.cfg.MarkSeenOnRead
	mbox, err := c.Select(inbox, readOnly)
	if err != nil {
		return nil, wrapTransport(CodeIMAPConnect, err)
	}
	if mbox.Messages == 0 {
		return []Message{}, nil
	}

	from := uint32(1)
	if uint32(count) < mbox.Messages {
		from = mbox.Messages - uint32(count) + 1
	}
	seqset := new(imap.SeqSet)
	seqset.AddRange(from, mbox.Messages)

	items := []imap.FetchItem{imap.FetchEnvelope, imap.FetchFlags, imap.FetchUid, imap.FetchRFC822Size}
	var section *imap.BodySectionName
	if withBody {
		section = &imap.BodySectionName{Peek: !s.cfg.MarkSeenOnRead}
		items = append(items, section.FetchItem())
	}

	ch := make(chan *imap.Message, count)
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqset, items, ch)
	}()

	now := time.Now()
	var messages []Message
	for msg := range ch {
		messages = append(messages, messageFromIMAP(msg, section, now))
	}
	if err := <-done; err != nil {
		return nil, wrapTransport(CodeIMAPConnect, err)
	}

	// fetch yields ascending sequence numbers; newest last
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// GetByID fetches a single message, including its body, by UID. An
// absent message is (nil, nil), not an error; only a blank id fails.
func (s *Service) GetByID(id string) (*Message, error) {
	uid, err := parseUID(id)
	if err != nil {
		if errors.Is(err, ErrMissingEmailID) {
			return nil, err
		}
		// malformed ids cannot name a message
		return nil, nil
	}

	c, err := s.ensureIMAP()
	if err != nil {
		return nil, err
	}
	if _, err := c.Select(inbox, true); err != nil {
		return nil, wrapTransport(CodeIMAPConnect, err)
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(uid)
	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{imap.FetchEnvelope, imap.FetchFlags, imap.FetchUid, imap.FetchRFC822Size, section.FetchItem()}

	ch := make(chan *imap.Message, 1)
	done := make(chan error, 1)
	go func() {
		done <- c.UidFetch(seqset, items, ch)
	}()

	var found *Message
	now := time.Now()
	for msg := range ch {
		m := messageFromIMAP(msg, section, now)
		found = &m
	}
	if err := <-done; err != nil {
		return nil, wrapTransport(CodeIMAPConnect, err)
	}
	return found, nil
}

// MarkRead sets or clears the seen flag on one message. Flag stores
// are idempotent; marking an already-seen message succeeds.
func (s *Service) MarkRead(id string, seen bool) error {
	uid, err := parseUID(id)
	if err != nil {
		return err
	}

	c, err := s.ensureIMAP()
	if err != nil {
		return err
	}
	if _, err := c.Select(inbox, false); err != nil {
		return wrapTransport(CodeIMAPConnect, err)
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(uid)
	op := imap.FlagsOp(imap.AddFlags)
	if !seen {
		op = imap.RemoveFlags
	}
	item := imap.FormatFlagsOp(op, true)
	if err := c.UidStore(seqset, item, []interface{}{imap.SeenFlag}, nil); err != nil {
		return wrapTransport(CodeIMAPConnect, err)
	}
	return nil
}

func parseUID(id string) (uint32, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return 0, ErrMissingEmailID
	}
	uid, err := strconv.ParseUint(id, 10, 32)
	if err != nil || uid == 0 {
		return 0, fmt.Errorf("%w: %q is not a valid id", ErrEmailNotFound, id)
	}
	return uint32(uid), nil
}
