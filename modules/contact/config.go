package contact

// Config identifies the mailbox pair used by the contact form: messages go
// out from the service's sender address to the portfolio owner's inbox, with
// reply-to pointing back at the visitor.
type Config struct {
	SenderEmail    string `env:"EMAIL_SENDER,required"`
	RecipientEmail string `env:"EMAIL_RECIPIENT,required"`
}
