package sendgrid

import (
	"context"
	"net/http"

	"github.com/sendgrid/rest"
	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/paydesk/paydesk/internal/notification/domain"
)

// Sender implements domain.MailSender on the SendGrid v3 mail API.
type Sender struct {
	client *sg.Client
	from   *mail.Email
}

// New builds a sender. When httpClient is non-nil it replaces the SDK's
// default transport, letting outbound calls carry trace context.
func New(apiKey, senderName, senderEmail string, httpClient *http.Client) *Sender {
	if httpClient != nil {
		sg.DefaultClient = &rest.Client{HTTPClient: httpClient}
	}
	return &Sender{
		client: sg.NewSendClient(apiKey),
		from:   mail.NewEmail(senderName, senderEmail),
	}
}

func (s *Sender) Send(ctx context.Context, to, subject, htmlBody string) (int, error) {
	message := mail.NewSingleEmail(s.from, subject, mail.NewEmail("", to), "", htmlBody)
	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return 0, err
	}
	return resp.StatusCode, nil
}

var _ domain.MailSender = (*Sender)(nil)
