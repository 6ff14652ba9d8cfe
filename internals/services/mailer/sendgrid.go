// file: internals/services/mailer/sendgrid.go
package mailer

import (
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"bursary_backend/internals/configs"
)

type sendgridMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

func NewSendgridMailer(apiKey string) Mailer {
	return &sendgridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from: sgmail.NewEmail(
			configs.Conf.GetString("MAIL_FROM_NAME"),
			configs.Conf.GetString("MAIL_FROM_ADDRESS"),
		),
	}
}

func (m *sendgridMailer) Send(msg Message) error {
	to := sgmail.NewEmail(msg.ToName, msg.ToAddress)
	mail := sgmail.NewSingleEmail(m.from, msg.Subject, to, msg.TextBody, msg.HTMLBody)

	res, err := m.client.Send(mail)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}
