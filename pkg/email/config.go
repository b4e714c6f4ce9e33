package email

// Config holds mail transport configuration. Tokens are optional so that
// development environments can run on the file-based DevSender without any
// Postmark account.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	DevOutputDir         string `env:"EMAIL_DEV_OUTPUT_DIR" envDefault:"./email-output"`
}

// Configured reports whether a production transport can be constructed.
func (c Config) Configured() bool {
	return c.PostmarkServerToken != ""
}
