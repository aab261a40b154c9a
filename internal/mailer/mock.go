package mailer

import "sync"

// Mock records sent messages instead of delivering them. Safe for concurrent
// use in tests.
type Mock struct {
	mu       sync.Mutex
	Messages []MockMessage
	Err      error
}

// MockMessage is one recorded send.
type MockMessage struct {
	To      string
	Subject string
	Body    string
}

// NewMock creates an empty recording sender.
func NewMock() *Mock {
	return &Mock{}
}

// Send records the message, or returns the configured error.
func (m *Mock) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Messages = append(m.Messages, MockMessage{To: to, Subject: subject, Body: htmlBody})
	return nil
}

// Sent returns a copy of the recorded messages.
func (m *Mock) Sent() []MockMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MockMessage, len(m.Messages))
	copy(out, m.Messages)
	return out
}
