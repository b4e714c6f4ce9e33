package contact

import (
	"fmt"
	"strings"
	"time"

	"github.com/okonu/portfolio-api/pkg/localtime"
)

// Notification is a rendered email body pair plus subject.
type Notification struct {
	Subject string
	HTML    string
	Text    string
}

// renderNotification builds the owner-facing email for a validated
// submission. All user-supplied fields are HTML-escaped before they touch
// markup; the subject keeps the raw name since subjects are never rendered
// as HTML.
func renderNotification(req Request, now time.Time) Notification {
	received := localtime.Format(now)

	html := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Email from Portfolio</title>
<style>
body { font-family: 'Inter', -apple-system, sans-serif; line-height: 1.6; color: #333; background-color: #f4f6f9; margin: 0; padding: 20px; }
.email-container { max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; box-shadow: 0 4px 16px rgba(0,0,0,0.08); overflow: hidden; }
.email-header { background-color: #6b7280; color: white; text-align: center; padding: 10px; }
.email-header h1 { margin: 0; font-size: 1rem; }
.email-content { padding: 30px; }
.email-section { margin-bottom: 20px; padding-bottom: 20px; border-bottom: 1px solid #e5e7eb; }
.email-footer { text-align: center; color: #6b7280; font-size: 12px; padding: 20px; background-color: #f9fafb; }
strong { color: #1f2937; }
</style>
</head>
<body>
<div class="email-container">
<div class="email-header"><h1>This is a message from my portfolio contact form</h1></div>
<div class="email-content">
<div class="email-section"><strong>Name:</strong><p>%s</p></div>
<div class="email-section"><strong>Email:</strong><p>%s</p></div>
<div class="email-section"><strong>Message:</strong><p>%s</p></div>
</div>
<div class="email-footer"><p>Received at: %s</p></div>
</div>
</body>
</html>`,
		escapeHTML(req.Name), escapeHTML(req.Email), escapeHTML(req.Message), received)

	text := fmt.Sprintf(`Portfolio contact form message

Sender Details:
- Name: %s
- Email: %s

Message:
%s

Received at: %s
`, req.Name, req.Email, req.Message, received)

	return Notification{
		Subject: fmt.Sprintf("Portfolio contact form message from %s", req.Name),
		HTML:    html,
		Text:    text,
	}
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// escapeHTML neutralizes markup in user-supplied text before embedding.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
