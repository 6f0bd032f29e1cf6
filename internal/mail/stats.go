package mail

import (
	"sync"
	"time"

	"github.com/emersion/go-imap"
)

// Stats summarizes the inbox.
type Stats struct {
	Total   int `json:"total"`
	Unseen  int `json:"unseen"`
	Flagged int `json:"flagged"`
	Today   int `json:"today"`
}

// Statistics counts inbox totals. The four counts are independent
// searches issued concurrently on the shared connection; the client
// serializes them on the wire.
func (s *Service) Statistics() (*Stats, error) {
	c, err := s.ensureIMAP()
	if err != nil {
		return nil, err
	}
	if _, err := c.Select(inbox, true); err != nil {
		return nil, wrapTransport(CodeIMAPConnect, err)
	}

	midnight := time.Now().Truncate(24 * time.Hour)

	queries := []*imap.SearchCriteria{
		imap.NewSearchCriteria(),
		{WithoutFlags: []string{imap.SeenFlag}},
		{WithFlags: []string{imap.FlaggedFlag}},
		{Since: midnight},
	}

	counts := make([]int, len(queries))
	errs := make([]error, len(queries))
	var wg sync.WaitGroup
	for i, criteria := range queries {
		wg.Add(1)
		go func(i int, criteria *imap.SearchCriteria) {
			defer wg.Done()
			uids, err := c.UidSearch(criteria)
			if err != nil {
				errs[i] = err
				return
			}
			counts[i] = len(uids)
		}(i, criteria)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, wrapTransport(CodeIMAPConnect, err)
		}
	}

	return &Stats{
		Total:   counts[0],
		Unseen:  counts[1],
		Flagged: counts[2],
		Today:   counts[3],
	}, nil
}
