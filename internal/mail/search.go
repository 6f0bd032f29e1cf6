package mail

import (
	"net/textproto"
	"time"

	"github.com/emersion/go-imap"
)

const maxSearchLimit = 100

// SearchFilter narrows a mailbox search. Zero-valued fields are
// ignored; set fields are combined with AND.
type SearchFilter struct {
	From    string
	To      string
	Subject string
	Text    string
	Since   time.Time
	Before  time.Time
	Seen    bool
	Unseen  bool
	Flagged bool
}

// SearchResult is one page of matches. Total counts every match, not
// just the returned page.
type SearchResult struct {
	Messages []Message `json:"messages"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}

// Search runs a filtered inbox search and returns the requested page,
// newest first. Pagination is applied on the UID list so only the
// page's envelopes are fetched.
func (s *Service) Search(filter SearchFilter, page, limit int) (*SearchResult, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}
	if limit < 1 || limit > maxSearchLimit {
		return nil, ErrInvalidLimit
	}

	c, err := s.ensureIMAP()
	if err != nil {
		return nil, err
	}
	if _, err := c.Select(inbox, true); err != nil {
		return nil, wrapTransport(CodeIMAPConnect, err)
	}

	uids, err := c.UidSearch(searchCriteria(filter))
	if err != nil {
		return nil, wrapTransport(CodeIMAPConnect, err)
	}

	result := &SearchResult{
		Messages: []Message{},
		Total:    len(uids),
		Page:     page,
		Limit:    limit,
	}

	// UIDs come back ascending; newest first
	for i, j := 0, len(uids)-1; i < j; i, j = i+1, j-1 {
		uids[i], uids[j] = uids[j], uids[i]
	}

	start := (page - 1) * limit
	if start >= len(uids) {
		return result, nil
	}
	end := start + limit
	if end > len(uids) {
		end = len(uids)
	}
	pageUIDs := uids[start:end]

	seqset := new(imap.SeqSet)
	seqset.AddNum(pageUIDs...)
	items := []imap.FetchItem{imap.FetchEnvelope, imap.FetchFlags, imap.FetchUid, imap.FetchRFC822Size}

	ch := make(chan *imap.Message, len(pageUIDs))
	done := make(chan error, 1)
	go func() {
		done <- c.UidFetch(seqset, items, ch)
	}()

	now := time.Now()
	byUID := make(map[uint32]Message, len(pageUIDs))
	for msg := range ch {
		byUID[msg.Uid] = messageFromIMAP(msg, nil, now)
	}
	if err := <-done; err != nil {
		return nil, wrapTransport(CodeIMAPConnect, err)
	}

	// keep the newest-first page order regardless of fetch order
	for _, uid := range pageUIDs {
		if m, ok := byUID[uid]; ok {
			result.Messages = append(result.Messages, m)
		}
	}
	return result, nil
}

func searchCriteria(f SearchFilter) *imap.SearchCriteria {
	criteria := imap.NewSearchCriteria()
	header := textproto.MIMEHeader{}
	if f.From != "" {
		header.Add("From", f.From)
	}
	if f.To != "" {
		header.Add("To", f.To)
	}
	if f.Subject != "" {
		header.Add("Subject", f.Subject)
	}
	if len(header) > 0 {
		criteria.Header = header
	}
	if f.Text != "" {
		criteria.Text = []string{f.Text}
	}
	if !f.Since.IsZero() {
		criteria.Since = f.Since
	}
	if !f.Before.IsZero() {
		criteria.Before = f.Before
	}
	if f.Seen {
		criteria.WithFlags = append(criteria.WithFlags, imap.SeenFlag)
	}
	if f.Unseen {
		criteria.WithoutFlags = append(criteria.WithoutFlags, imap.SeenFlag)
	}
	if f.Flagged {
		criteria.WithFlags = append(criteria.WithFlags, imap.FlaggedFlag)
	}
	return criteria
}
