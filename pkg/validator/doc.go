// Package validator provides small composable field checks for inbound
// request data.
//
//	err := validator.Apply(
//		validator.Required("email", req.Email),
//		validator.ValidEmail("email", req.Email),
//	)
//
// Apply returns validator.Errors listing every failed field, which callers
// translate to their own user-facing messages.
package validator
