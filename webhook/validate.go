package webhook

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

/* ValidateForm checks a form before any backend call
 * Returns *ValidationError carrying one message per failed field
 */
func ValidateForm(form FormData) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Errors: []string{err.Error()}}
	}
	messages := make([]string, 0, len(fieldErrs))
	seen := make(map[string]bool)
	for _, fe := range fieldErrs {
		msg := messageFor(fe)
		if seen[msg] {
			continue
		}
		seen[msg] = true
		messages = append(messages, msg)
	}
	return &ValidationError{Errors: messages}
}

func messageFor(fe validator.FieldError) string {
	field := fe.StructField()
	switch {
	case field == "Name":
		return "Webhook name is required"
	case field == "URL" && fe.Tag() == "url":
		return "Webhook URL must be a valid URL"
	case field == "URL":
		return "Webhook URL is required"
	case field == "Triggers":
		return "At least one trigger must be selected"
	case strings.HasPrefix(field, "Triggers["):
		return "Trigger codenames must not be empty"
	default:
		return fe.Error()
	}
}
