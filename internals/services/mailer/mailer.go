// file: internals/services/mailer/mailer.go
package mailer

import (
	"bursary_backend/internals/configs"
)

// Message is a single outbound mail. Bodies are prebuilt by callers; the
// mailer only delivers.
type Message struct {
	ToName    string
	ToAddress string
	Subject   string
	TextBody  string
	HTMLBody  string
}

type Mailer interface {
	Send(msg Message) error
}

// New returns the SendGrid mailer when SENDGRID_API_KEY is configured and the
// console mailer otherwise (dev/test).
func New() Mailer {
	key := configs.Conf.GetString("SENDGRID_API_KEY")
	if key == "" {
		return NewConsoleMailer()
	}
	return NewSendgridMailer(key)
}
