package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// JSON returns a binder that decodes an application/json request body into v.
// Unknown fields are tolerated so clients may send extra attribution data.
// An empty body leaves v untouched, letting query binders fill the gaps.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Body == nil {
			return nil
		}

		contentType := r.Header.Get("Content-Type")
		if contentType != "" {
			mediaType, _, err := mime.ParseMediaType(contentType)
			if err != nil || mediaType != "application/json" {
				return fmt.Errorf("%w: got %q, expected application/json", ErrUnsupportedMediaType, contentType)
			}
		}

		if err := json.NewDecoder(r.Body).Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return nil
	}
}
