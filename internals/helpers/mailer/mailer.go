// file: internals/helpers/mailer/mailer.go
package mailer

import (
	"log"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"academyku_backend/internals/configs"
)

var (
	host     = "https://api.sendgrid.com"
	endpoint = "/v3/mail/send"
)

type Message struct {
	ToEmail string
	ToName  string
	Subject string
	Text    string
	HTML    string
}

// Send kirim email transaksional via Sendgrid, fire-and-forget.
// Gagal kirim hanya dicatat di log — request pemanggil tidak ikut gagal.
// Tanpa SENDGRID_API_KEY, pesan dicetak ke console (mode dev).
func Send(msg Message) {
	go func() {
		if configs.SendgridAPIKey == "" {
			log.Printf("📧 [MAIL-CONSOLE] to=%s subject=%q\n%s", msg.ToEmail, msg.Subject, msg.Text)
			return
		}
		send(msg)
	}()
}

func prepare(msg Message) *sgmail.SGMailV3 {
	from := sgmail.NewEmail(configs.DefaultFromName, configs.DefaultFromEmail)
	subject := "[" + configs.AcademyName + "] " + msg.Subject

	p := sgmail.NewPersonalization()
	p.Subject = subject
	p.AddTos(sgmail.NewEmail(msg.ToName, msg.ToEmail))

	m := sgmail.NewV3Mail()
	m.SetFrom(from)
	m.AddPersonalizations(p)

	html := msg.HTML
	if html == "" {
		html = "<pre>" + msg.Text + "</pre>"
	}
	m.AddContent(
		sgmail.NewContent("text/plain", msg.Text),
		sgmail.NewContent("text/html", html),
	)
	return m
}

func send(msg Message) {
	req := sendgrid.GetRequest(configs.SendgridAPIKey, endpoint, host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(prepare(msg))

	res, err := sendgrid.API(req)
	if err != nil {
		log.Printf("[MAIL ERROR] sending email: %v", err)
	} else if res.StatusCode >= http.StatusBadRequest {
		log.Printf("[MAIL ERROR] sending email - status: %d - body: %s", res.StatusCode, res.Body)
	}
}
