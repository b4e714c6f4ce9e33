// Package binder parses HTTP requests into typed values.
//
// Binders are plain functions applied in order; each handles one source:
//
//	var req JoinRequest
//	for _, bind := range []func(*http.Request, any) error{binder.JSON(), binder.Query()} {
//		if err := bind(r, &req); err != nil { ... }
//	}
//
// The JSON binder reads the body, the query binder fills remaining empty
// string fields from URL parameters, so body values win when both are given.
package binder
