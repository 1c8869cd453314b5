package utils

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MissingRequiredFields maps binding failures on required fields back to
// their JSON names, so validation responses can list every missing field
// at once instead of the first.
func MissingRequiredFields(err error, body any) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	t := reflect.TypeOf(body)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	var missing []string
	for _, fe := range verrs {
		if fe.Tag() != "required" {
			continue
		}
		field, ok := t.FieldByName(fe.StructField())
		if !ok {
			missing = append(missing, fe.Field())
			continue
		}
		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "" || name == "-" {
			name = fe.Field()
		}
		missing = append(missing, name)
	}
	return missing
}
