// Package contact implements the portfolio contact form: validate the
// submission, render the notification email, and deliver it to the site
// owner with reply-to pointing at the visitor.
package contact
