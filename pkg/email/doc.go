// Package email provides a provider-agnostic interface for sending
// transactional emails.
//
// The Sender interface hides the transport so application code never depends
// on a vendor. Two implementations ship with the service:
//
//   - NewPostmarkSender for production delivery
//   - NewDevSender for local development, which saves emails to disk
//
// Senders classify failures with sentinel errors: ErrAuthFailed for rejected
// credentials and ErrSendFailed for everything else. Callers check them with
// errors.Is and decide whether a failure is fatal for their operation.
package email
