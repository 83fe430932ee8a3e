package validator

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ParseError flattens a gin binding error into one message per field, so the
// caller learns which fields failed and why.
func ParseError(err error) map[string]string {
	errors := make(map[string]string)
	switch e := err.(type) {
	case validator.ValidationErrors:
		for _, fe := range e {
			errors[fe.Field()] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
		}
	case *json.UnmarshalTypeError:
		// Wrong JSON type for a field, e.g. a string where a number belongs.
		errors[e.Field] = fmt.Sprintf("Expected type '%s' for field '%s'", e.Type.String(), e.Field)
	default:
		if err != nil { // Non-validator errors (malformed JSON, empty body)
			errors["error"] = err.Error()
		}
	}
	return errors
}
