package utils

import (
	"net/http"
	"reflect"
	"strings"
)

// BindForm copies url-encoded form values into the string fields of dst that
// carry a form tag. dst must be a pointer to a struct.
func BindForm(r *http.Request, dst interface{}) error {
	if err := r.ParseForm(); err != nil {
		return err
	}

	value := reflect.ValueOf(dst).Elem()
	fields := value.Type()
	for i := 0; i < fields.NumField(); i++ {
		name := strings.SplitN(fields.Field(i).Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		field := value.Field(i)
		if field.Kind() != reflect.String || !field.CanSet() {
			continue
		}
		field.SetString(r.PostForm.Get(name))
	}
	return nil
}

// SafeRedirectTarget keeps redirects on this origin.
func SafeRedirectTarget(target, fallback string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return fallback
	}
	return target
}
