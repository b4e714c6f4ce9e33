package waitlist

import (
	"fmt"
	"strings"
	"time"
)

// Brand palette used across the welcome email.
const (
	colorNavy   = "#1E2537"
	colorOrange = "#FF5722"
)

// Notification is the rendered welcome email for a new subscriber.
type Notification struct {
	Subject string
	HTML    string
	Text    string
}

// logoURL falls back to a generated placeholder so the email renders a logo
// even before branding assets exist.
func (c Config) logoURL() string {
	if c.LogoURL != "" {
		return c.LogoURL
	}
	return fmt.Sprintf("https://placehold.co/200x60/%s/%s?text=%s",
		strings.TrimPrefix(colorNavy, "#"), strings.TrimPrefix(colorOrange, "#"), c.AppName)
}

// renderWelcome builds the confirmation email from the brand config. All
// values come from configuration, not user input, so no escaping is needed.
func renderWelcome(cfg Config, now time.Time) Notification {
	year := now.Year()

	html := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Welcome to %[1]s Waitlist</title>
<style>
body { font-family: 'Inter', -apple-system, sans-serif; line-height: 1.6; color: #374151; background-color: #f5f7fa; margin: 0; padding: 0; }
.wrapper { width: 100%%; background-color: #f5f7fa; padding: 40px 10px; }
.email-container { max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 16px; overflow: hidden; box-shadow: 0 5px 15px rgba(0,0,0,0.05); }
.email-header { padding: 30px 40px; text-align: center; border-bottom: 1px solid #f0f0f0; }
.logo { max-width: 180px; height: auto; }
.tagline { display: block; font-size: 14px; color: %[8]s; font-weight: 600; margin-top: 5px; letter-spacing: 1px; }
.email-body { padding: 40px; }
h1 { color: %[8]s; font-size: 24px; font-weight: 700; margin-top: 0; margin-bottom: 20px; }
p { margin: 0 0 20px; color: #4b5563; font-size: 16px; }
.highlight { color: %[9]s; font-weight: 600; }
.button { display: inline-block; background-color: %[9]s; color: #ffffff !important; text-decoration: none; font-weight: 600; font-size: 15px; padding: 12px 30px; border-radius: 8px; margin: 25px 0; }
.divider { height: 1px; width: 100%%; background-color: #f0f0f0; margin: 30px 0; }
.social-bar { padding: 20px 0; text-align: center; border-top: 1px solid #f0f0f0; }
.social-bar a { color: %[8]s; font-weight: 600; text-decoration: none; margin: 0 10px; }
.email-footer { background-color: #f9fafb; color: #6b7280; font-size: 12px; text-align: center; padding: 24px 40px; border-top: 1px solid #f0f0f0; }
</style>
</head>
<body>
<div class="wrapper">
<div class="email-container">
<div class="email-header">
<a href="%[4]s" target="_blank"><img src="%[2]s" alt="%[1]s Logo" class="logo"></a>
<span class="tagline">%[3]s</span>
</div>
<div class="email-body">
<h1>Welcome to the %[1]s Waitlist!</h1>
<p>Hi there,</p>
<p>Thanks for joining the <span class="highlight">%[1]s waitlist</span>! We're thrilled to have you on board and can't wait to share our innovative solution with you.</p>
<p>You're now among the first to know when we launch. We're working hard behind the scenes to create something exceptional, and we're excited to have you join us on this journey.</p>
<p>What happens next? We'll notify you as soon as we're ready to launch, and as a waitlist member, you'll get:</p>
<ul style="color: #4b5563; padding-left: 25px; margin-bottom: 25px;">
<li style="margin-bottom: 10px;">Early access to our platform</li>
<li style="margin-bottom: 10px;">Exclusive features for early adopters</li>
<li>Special launch offers</li>
</ul>
<a href="%[4]s" class="button">Learn More About %[1]s</a>
<div class="divider"></div>
<p style="margin-bottom: 10px;">In the meantime, follow us on social media for updates, behind-the-scenes content, and more:</p>
</div>
<div class="social-bar">
<a href="%[5]s">Twitter</a>
<a href="%[6]s">Instagram</a>
<a href="%[7]s">LinkedIn</a>
</div>
<div class="email-footer">
<p style="margin-bottom: 10px;">&copy; %[10]d %[1]s. All rights reserved.</p>
<p style="margin-bottom: 0;">You received this email because you signed up for the %[1]s waitlist.</p>
</div>
</div>
</div>
</body>
</html>`,
		cfg.AppName, cfg.logoURL(), cfg.AppTagline, cfg.WebsiteURL,
		cfg.SocialTwitter, cfg.SocialInstagram, cfg.SocialLinkedIn,
		colorNavy, colorOrange, year)

	text := fmt.Sprintf(`%[1]s | %[2]s

WELCOME TO THE %[1]s WAITLIST!

Hi there,

Thanks for joining the %[1]s waitlist! We're thrilled to have you on board and can't wait to share our innovative solution with you.

You're now among the first to know when we launch. We're working hard behind the scenes to create something exceptional, and we're excited to have you join us on this journey.

What happens next? We'll notify you as soon as we're ready to launch, and as a waitlist member, you'll get:

- Early access to our platform
- Exclusive features for early adopters
- Special launch offers

Learn more about %[1]s: %[3]s

FOLLOW US FOR UPDATES:
- Twitter: %[4]s
- Instagram: %[5]s
- LinkedIn: %[6]s

If you have any questions or suggestions, feel free to reply to this email.

Best regards,
The %[1]s Team

(c) %[7]d %[1]s. All rights reserved.
You received this email because you signed up for the %[1]s waitlist.
`, cfg.AppName, cfg.AppTagline, cfg.WebsiteURL,
		cfg.SocialTwitter, cfg.SocialInstagram, cfg.SocialLinkedIn, year)

	return Notification{
		Subject: fmt.Sprintf("Welcome to the %s Waitlist!", cfg.AppName),
		HTML:    html,
		Text:    text,
	}
}
