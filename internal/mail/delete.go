package mail

import (
	"github.com/emersion/go-imap"
)

// Delete flags one message deleted and expunges the mailbox.
func (s *Service) Delete(id string) error {
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
	item := imap.FormatFlagsOp(imap.AddFlags, true)
	if err := c.UidStore(seqset, item, []interface{}{imap.DeletedFlag}, nil); err != nil {
		return wrapTransport(CodeIMAPConnect, err)
	}
	if err := c.Expunge(nil); err != nil {
		return wrapTransport(CodeIMAPConnect, err)
	}
	return nil
}

// DeleteBatch deletes the given messages and reports per-id outcomes.
// Every id ends up in exactly one of Succeeded and Failed. An empty
// input returns an empty result without touching the server; a failed
// connection fails every id.
func (s *Service) DeleteBatch(ids []string) (*BatchResult, error) {
	result := &BatchResult{}
	if len(ids) == 0 {
		return result, nil
	}

	uids := make(map[string]uint32, len(ids))
	var valid []string
	for _, id := range ids {
		uid, err := parseUID(id)
		if err != nil {
			result.Failed = append(result.Failed, BatchFailure{ID: id, Reason: err.Error()})
			continue
		}
		uids[id] = uid
		valid = append(valid, id)
	}
	if len(valid) == 0 {
		return result, nil
	}

	c, err := s.ensureIMAP()
	if err != nil {
		for _, id := range valid {
			result.Failed = append(result.Failed, BatchFailure{ID: id, Reason: err.Error()})
		}
		return result, nil
	}
	if _, err := c.Select(inbox, false); err != nil {
		err = wrapTransport(CodeIMAPConnect, err)
		for _, id := range valid {
			result.Failed = append(result.Failed, BatchFailure{ID: id, Reason: err.Error()})
		}
		return result, nil
	}

	item := imap.FormatFlagsOp(imap.AddFlags, true)
	var flagged []string
	for _, id := range valid {
		seqset := new(imap.SeqSet)
		seqset.AddNum(uids[id])
		if err := c.UidStore(seqset, item, []interface{}{imap.DeletedFlag}, nil); err != nil {
			result.Failed = append(result.Failed, BatchFailure{ID: id, Reason: wrapTransport(CodeIMAPConnect, err).Error()})
			continue
		}
		flagged = append(flagged, id)
	}

	if len(flagged) > 0 {
		if err := c.Expunge(nil); err != nil {
			// the flags may or may not have stuck; report the ids as
			// failed rather than claiming a finished delete
			reason := wrapTransport(CodeIMAPConnect, err).Error()
			for _, id := range flagged {
				result.Failed = append(result.Failed, BatchFailure{ID: id, Reason: reason})
			}
			return result, nil
		}
		result.Succeeded = append(result.Succeeded, flagged...)
	}
	return result, nil
}
