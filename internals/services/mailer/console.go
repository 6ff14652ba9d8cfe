// file: internals/services/mailer/console.go
package mailer

import (
	"sync"

	"bursary_backend/internals/configs"
)

// consoleMailer logs mail instead of sending it. Sent messages are kept so
// tests can assert on them.
type consoleMailer struct {
	mu   sync.Mutex
	sent []Message
}

func NewConsoleMailer() *consoleMailer {
	return &consoleMailer{}
}

func (m *consoleMailer) Send(msg Message) error {
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()

	configs.Log.WithField("to", msg.ToAddress).
		WithField("subject", msg.Subject).
		Info("mail (console): " + msg.TextBody)
	return nil
}

func (m *consoleMailer) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.sent))
	copy(out, m.sent)
	return out
}
