package binder

import (
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"
)

// Query returns a binder that fills string fields tagged `query:"name"` from
// URL query parameters. Fields already populated (by a body binder applied
// earlier) are left alone, giving body values precedence over query values.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindQuery(v, r.URL.Query())
	}
}

func bindQuery(v any, values url.Values) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a non-nil struct pointer", ErrInvalidTarget)
	}

	elem := rv.Elem()
	typ := elem.Type()

	for i := range typ.NumField() {
		field := typ.Field(i)
		tag := field.Tag.Get("query")
		if tag == "" || tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")

		param := values.Get(name)
		if param == "" {
			continue
		}

		fv := elem.Field(i)
		if !fv.CanSet() || fv.Kind() != reflect.String {
			continue
		}
		if fv.String() == "" {
			fv.SetString(param)
		}
	}
	return nil
}
