package mailer

import (
	"fmt"
	"io"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"
	gomail "gopkg.in/gomail.v2"

	"communityhub_backend/internals/configs"
)

// Mailer is the outbound-notification collaborator. Handlers depend on this
// interface so tests can swap in a recording fake.
type Mailer interface {
	SendCheckInConfirmation(to, name, eventTitle, checkOutToken string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer() *SMTPMailer {
	port, err := strconv.Atoi(configs.SMTPPort)
	if err != nil {
		port = 587
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(configs.SMTPHost, port, configs.SMTPUser, configs.SMTPPass),
		from:   configs.MailFrom,
	}
}

// SendCheckInConfirmation mails the attendee their check-out token: QR PNG
// attached plus a hosted QR image URL for clients that strip attachments.
func (m *SMTPMailer) SendCheckInConfirmation(to, name, eventTitle, checkOutToken string) error {
	png, err := qrcode.Encode(checkOutToken, qrcode.Medium, 250)
	if err != nil {
		return fmt.Errorf("encode qr: %w", err)
	}

	qrImageURL := fmt.Sprintf("https://api.qrserver.com/v1/create-qr-code/?size=250x250&data=%s", checkOutToken)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("You're checked in: %s", eventTitle))
	msg.SetBody("text/html", fmt.Sprintf(
		`<p>Hi %s,</p>
<p>You are checked in to <b>%s</b>. Show the QR code below at the exit scan.</p>
<p><img src="%s" alt="check-out QR" /></p>
<p>Token: <code>%s</code></p>`,
		name, eventTitle, qrImageURL, checkOutToken,
	))
	msg.Attach("check-out-qr.png", gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(png)
		return err
	}))

	return m.dialer.DialAndSend(msg)
}
