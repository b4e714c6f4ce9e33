package waitlist

// Config holds the waitlist module settings. The brand fields feed the
// confirmation email template; defaults are placeholders so a fresh
// environment still renders a complete email.
type Config struct {
	SenderEmail string `env:"EMAIL_SENDER,required"`
	Collection  string `env:"WAITLIST_COLLECTION" envDefault:"waitlist"`

	AppName         string `env:"APP_NAME" envDefault:"NAME"`
	AppTagline      string `env:"APP_TAGLINE" envDefault:"TAG LINE"`
	WebsiteURL      string `env:"WEBSITE_URL" envDefault:"https://name.ke"`
	LogoURL         string `env:"LOGO_URL"`
	SocialTwitter   string `env:"SOCIAL_TWITTER" envDefault:"https://twitter.com"`
	SocialInstagram string `env:"SOCIAL_INSTAGRAM" envDefault:"https://instagram.com"`
	SocialLinkedIn  string `env:"SOCIAL_LINKEDIN" envDefault:"https://linkedin.com/company"`
}
