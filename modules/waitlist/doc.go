// Package waitlist implements pre-launch signup: store the email in MongoDB
// behind a unique index, attribute the signup with client IP and UTM
// parameters, and send a best-effort welcome email in the background.
package waitlist
