package mail

import "time"

// MockMailer implements Mailer with overridable functions. Unset
// functions return zero values.
type MockMailer struct {
	SendFunc                func(to []string, subject, textBody, htmlBody string) error
	SendWithAttachmentsFunc func(to []string, subject, textBody, htmlBody string, paths []string) error
	SendBatchFunc           func(to []string, subject, textBody, htmlBody string) (*BatchResult, error)
	SendEachFunc            func(items []BulkItem) (*BatchResult, error)
	ForwardFunc             func(id string, to []string, note string) error
	ReplyFunc               func(id, body string, replyAll bool) error
	ReadRecentFunc          func(count int, withBody bool) ([]Message, error)
	GetByIDFunc             func(id string) (*Message, error)
	MarkReadFunc            func(id string, seen bool) error
	SearchFunc              func(filter SearchFilter, page, limit int) (*SearchResult, error)
	StatisticsFunc          func() (*Stats, error)
	DeleteFunc              func(id string) error
	DeleteBatchFunc         func(ids []string) (*BatchResult, error)
	CreateDraftFunc         func(to []string, subject, body string) (*Draft, error)
	ScheduleEmailFunc       func(to []string, subject, body string, sendAt time.Time) (*ScheduledEmail, error)
	CloseFunc               func() error
}

var _ Mailer = (*MockMailer)(nil)

func (m *MockMailer) Send(to []string, subject, textBody, htmlBody string) error {
	if m.SendFunc != nil {
		return m.SendFunc(to, subject, textBody, htmlBody)
	}
	return nil
}

func (m *MockMailer) SendWithAttachments(to []string, subject, textBody, htmlBody string, paths []string) error {
	if m.SendWithAttachmentsFunc != nil {
		return m.SendWithAttachmentsFunc(to, subject, textBody, htmlBody, paths)
	}
	return nil
}

func (m *MockMailer) SendBatch(to []string, subject, textBody, htmlBody string) (*BatchResult, error) {
	if m.SendBatchFunc != nil {
		return m.SendBatchFunc(to, subject, textBody, htmlBody)
	}
	return &BatchResult{}, nil
}

func (m *MockMailer) SendEach(items []BulkItem) (*BatchResult, error) {
	if m.SendEachFunc != nil {
		return m.SendEachFunc(items)
	}
	return &BatchResult{}, nil
}

func (m *MockMailer) Forward(id string, to []string, note string) error {
	if m.ForwardFunc != nil {
		return m.ForwardFunc(id, to, note)
	}
	return nil
}

func (m *MockMailer) Reply(id, body string, replyAll bool) error {
	if m.ReplyFunc != nil {
		return m.ReplyFunc(id, body, replyAll)
	}
	return nil
}

func (m *MockMailer) ReadRecent(count int, withBody bool) ([]Message, error) {
	if m.ReadRecentFunc != nil {
		return m.ReadRecentFunc(count, withBody)
	}
	return nil, nil
}

func (m *MockMailer) GetByID(id string) (*Message, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(id)
	}
	return nil, nil
}

func (m *MockMailer) MarkRead(id string, seen bool) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(id, seen)
	}
	return nil
}

func (m *MockMailer) Search(filter SearchFilter, page, limit int) (*SearchResult, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(filter, page, limit)
	}
	return &SearchResult{Messages: []Message{}, Page: page, Limit: limit}, nil
}

func (m *MockMailer) Statistics() (*Stats, error) {
	if m.StatisticsFunc != nil {
		return m.StatisticsFunc()
	}
	return &Stats{}, nil
}

func (m *MockMailer) Delete(id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

func (m *MockMailer) DeleteBatch(ids []string) (*BatchResult, error) {
	if m.DeleteBatchFunc != nil {
		return m.DeleteBatchFunc(ids)
	}
	return &BatchResult{}, nil
}

func (m *MockMailer) CreateDraft(to []string, subject, body string) (*Draft, error) {
	if m.CreateDraftFunc != nil {
		return m.CreateDraftFunc(to, subject, body)
	}
	return &Draft{}, nil
}

func (m *MockMailer) ScheduleEmail(to []string, subject, body string, sendAt time.Time) (*ScheduledEmail, error) {
	if m.ScheduleEmailFunc != nil {
		return m.ScheduleEmailFunc(to, subject, body, sendAt)
	}
	return &ScheduledEmail{}, nil
}

func (m *MockMailer) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}
