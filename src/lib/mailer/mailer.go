package mailer

import (
	"bytes"
	"html/template"
	"log"
	"os"

	"carlink/src/lib"
)

// Outbound email is advisory only: SendNotif never reports failure back
// to the operation that triggered it.

const notificationTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0; background-color: #f5f5f5; }
        .container { max-width: 600px; margin: 20px auto; background: #ffffff; border-radius: 8px; box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1); }
        .header { background-color: #f8f9fa; padding: 20px; border-radius: 8px 8px 0 0; border-bottom: 1px solid #eee; }
        .content { padding: 30px 20px; background: #ffffff; }
        .message-content { white-space: pre-line; padding: 0 10px; color: #444; }
        .footer { background-color: #f8f9fa; padding: 15px 20px; border-radius: 0 0 8px 8px; border-top: 1px solid #eee; }
        .footer p { margin: 0; font-size: 12px; color: #666; text-align: center; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h2 style="margin: 0; color: #333; font-size: 20px;">{{.Subject}}</h2>
        </div>
        <div class="content">
            <div class="message-content">{{.Content}}</div>
        </div>
        <div class="footer">
            <p>This is an automated message from CarLink Rentals. You may reply to this email if you have any questions or concerns.</p>
        </div>
    </div>
</body>
</html>`

var notifTmpl = template.Must(template.New("notification").Parse(notificationTemplate))

type templateData struct {
	Subject string
	Content template.HTML
}

// RenderNotification renders the fixed header/content/footer layout.
// Content is trusted HTML produced by the callers, not user input.
func RenderNotification(subject string, content string) (string, error) {
	var buf bytes.Buffer
	err := notifTmpl.Execute(&buf, &templateData{Subject: subject, Content: template.HTML(content)})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendNotif emails a rendered notification to the client, best-effort.
// Errors are logged and discarded.
func SendNotif(title string, message string, clientEmail string) {
	if os.Getenv("SMTP_HOST") == "" {
		log.Println("[mailer] SMTP relay not configured; skipping notification email")
		return
	}
	body, err := RenderNotification(title, "<p>"+template.HTMLEscapeString(message)+"</p>")
	if err != nil {
		log.Printf("[mailer] Error rendering notification email: %s\n", err.Error())
		return
	}
	err = lib.SendMail(&lib.SendMailInput{
		From:    lib.SMTPSender(),
		To:      []string{clientEmail},
		Subject: title,
		Body:    body,
		Html:    true,
	})
	if err != nil {
		log.Printf("[mailer] Error sending notification email to %s: %s\n", clientEmail, err.Error())
	}
}

// SendRich is like SendNotif but the content is trusted HTML composed
// by the caller (reset-link emails).
func SendRich(title string, content string, clientEmail string) {
	if os.Getenv("SMTP_HOST") == "" {
		log.Println("[mailer] SMTP relay not configured; skipping notification email")
		return
	}
	body, err := RenderNotification(title, content)
	if err != nil {
		log.Printf("[mailer] Error rendering notification email: %s\n", err.Error())
		return
	}
	err = lib.SendMail(&lib.SendMailInput{
		From:    lib.SMTPSender(),
		To:      []string{clientEmail},
		Subject: title,
		Body:    body,
		Html:    true,
	})
	if err != nil {
		log.Printf("[mailer] Error sending notification email to %s: %s\n", clientEmail, err.Error())
	}
}

// SendHTML sends pre-rendered HTML and surfaces errors, for flows where
// delivery is the point of the operation (inquiry emails).
func SendHTML(subject string, body string, to string) error {
	return lib.SendMail(&lib.SendMailInput{
		From:    lib.SMTPSender(),
		To:      []string{to},
		Subject: subject,
		Body:    body,
		Html:    true,
	})
}

// SendPlain sends a plain-text message, best-effort.
func SendPlain(subject string, text string, to string) {
	if os.Getenv("SMTP_HOST") == "" {
		log.Println("[mailer] SMTP relay not configured; skipping email")
		return
	}
	err := lib.SendMail(&lib.SendMailInput{
		From:    lib.SMTPSender(),
		To:      []string{to},
		Subject: subject,
		Body:    text,
	})
	if err != nil {
		log.Printf("[mailer] Error sending email to %s: %s\n", to, err.Error())
	}
}
