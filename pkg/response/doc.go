// Package response owns the JSON envelopes and the status-carrying error type
// shared by all HTTP handlers.
//
// Services return *response.Error for failures the caller may see; handlers
// pass any error to WriteError which renders the {success:false, error:...}
// body with the right status code. Unknown errors become a generic 500 so
// internal details never leak outside development mode.
package response
