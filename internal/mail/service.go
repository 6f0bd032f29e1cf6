// Package mail implements the SMTP/IMAP email service. Sending goes
// through gomail, reading through go-imap. The IMAP connection is
// established lazily on the first read operation and reused until
// Close.
package mail

import (
	"crypto/tls"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	gomail "gopkg.in/gomail.v2"
)

// Config carries the transport settings for one account.
type Config struct {
	SMTPHost string
	SMTPPort int
	IMAPHost string
	IMAPPort int

	Username string
	Password string

	SMTPSSL bool
	IMAPTLS bool

	// MarkSeenOnRead controls whether fetching bodies sets \Seen.
	MarkSeenOnRead bool

	ConnectTimeout   time.Duration
	OperationTimeout time.Duration
}

// imapConn is the subset of *client.Client used by the service.
type imapConn interface {
	Select(name string, readOnly bool) (*imap.MailboxStatus, error)
	Fetch(seqset *imap.SeqSet, items []imap.FetchItem, ch chan *imap.Message) error
	UidFetch(seqset *imap.SeqSet, items []imap.FetchItem, ch chan *imap.Message) error
	UidSearch(criteria *imap.SearchCriteria) ([]uint32, error)
	UidStore(seqset *imap.SeqSet, item imap.StoreItem, value interface{}, ch chan *imap.Message) error
	Expunge(ch chan uint32) error
	Logout() error
}

// smtpSender is the subset of *gomail.Dialer used by the service.
type smtpSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// connState tracks the IMAP connection lifecycle.
type connState int

const (
	stateIdle connState = iota
	stateConnecting
	stateReady
)

// Service talks to one mail account over SMTP and IMAP. It is safe
// for concurrent use; the first reader dials IMAP and later callers
// share the connection.
type Service struct {
	cfg Config

	mu      sync.Mutex
	state   connState
	conn    imapConn
	dialErr error
	pending chan struct{}

	smtp smtpSender

	// dial seams, replaced in tests
	dialIMAP func(Config) (imapConn, error)
	dialSMTP func(Config) smtpSender
}

// NewService builds a Service for the given account. No connection is
// made until an operation needs one.
func NewService(cfg Config) *Service {
	return &Service{
		cfg:      cfg,
		dialIMAP: dialIMAP,
		dialSMTP: dialSMTP,
	}
}

// sender returns the memoized SMTP dialer.
func (s *Service) sender() smtpSender {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.smtp == nil {
		s.smtp = s.dialSMTP(s.cfg)
	}
	return s.smtp
}

// ensureIMAP returns the shared IMAP connection, dialing it on first
// use. Concurrent callers during a dial wait for its outcome instead
// of dialing again; a failed dial is reported to every waiter and the
// next call after that starts a fresh attempt.
func (s *Service) ensureIMAP() (imapConn, error) {
	for {
		s.mu.Lock()
		switch s.state {
		case stateReady:
			c := s.conn
			s.mu.Unlock()
			return c, nil
		case stateConnecting:
			wait := s.pending
			s.mu.Unlock()
			<-wait
			s.mu.Lock()
			err := s.dialErr
			s.mu.Unlock()
			if err != nil {
				return nil, err
			}
			continue
		case stateIdle:
			s.state = stateConnecting
			s.pending = make(chan struct{})
			s.dialErr = nil
			s.mu.Unlock()

			conn, err := s.dialIMAP(s.cfg)

			s.mu.Lock()
			if err != nil {
				s.state = stateIdle
				s.dialErr = wrapTransport(CodeIMAPConnect, err)
				err = s.dialErr
			} else {
				s.state = stateReady
				s.conn = conn
			}
			close(s.pending)
			s.mu.Unlock()
			if err != nil {
				return nil, err
			}
			return conn, nil
		}
	}
}

// Close logs out the IMAP session if one is open. The service can be
// used again afterwards; the next read redials.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateReady {
		return nil
	}
	conn := s.conn
	s.state = stateIdle
	s.conn = nil
	if err := conn.Logout(); err != nil {
		return fmt.Errorf("closing imap connection: %w", err)
	}
	return nil
}

func dialIMAP(cfg Config) (imapConn, error) {
	addr := fmt.Sprintf("%s:%d", cfg.IMAPHost, cfg.IMAPPort)
	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout}

	var c *client.Client
	var err error
	if cfg.IMAPTLS {
		c, err = client.DialWithDialerTLS(dialer, addr, &tls.Config{ServerName: cfg.IMAPHost})
	} else {
		c, err = client.DialWithDialer(dialer, addr)
	}
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", addr, err)
	}

	c.Timeout = cfg.OperationTimeout
	if err := c.Login(cfg.Username, cfg.Password); err != nil {
		c.Logout()
		return nil, fmt.Errorf("login as %s: %w", cfg.Username, err)
	}
	return c, nil
}

func dialSMTP(cfg Config) smtpSender {
	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password)
	d.SSL = cfg.SMTPSSL
	return d
}
