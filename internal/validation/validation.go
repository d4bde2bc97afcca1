package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/taskops/taskstore/internal/dto"
	apierrors "github.com/taskops/taskstore/internal/errors"
)

// Validator checks request bodies before they reach the services. It is a
// pure function of its input and never touches the database.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Field names in violation reports follow the JSON wire names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for an empty tag name, which would be a
	// programming error caught by any test run.
	if err := v.RegisterValidation("capitalized", capitalized); err != nil {
		panic(fmt.Sprintf("validation: failed to register capitalized rule: %v", err))
	}

	return &Validator{validate: v}
}

// ValidateCreateUser checks a user creation body.
func (v *Validator) ValidateCreateUser(req *dto.CreateUserRequest) *apierrors.ValidationError {
	return v.check(req)
}

// ValidateTask checks a task creation or update body.
func (v *Validator) ValidateTask(req *dto.TaskRequest) *apierrors.ValidationError {
	return v.check(req)
}

func (v *Validator) check(s interface{}) *apierrors.ValidationError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &apierrors.ValidationError{
			Fields: []apierrors.FieldViolation{{Field: "body", Reason: err.Error()}},
		}
	}

	fields := make([]apierrors.FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apierrors.FieldViolation{
			Field:  fieldPath(fe),
			Reason: reason(fe),
		})
	}

	return &apierrors.ValidationError{Fields: fields}
}

// capitalized requires a non-empty string whose first rune is an uppercase
// letter.
func capitalized(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

// fieldPath strips the root struct name from the namespace, leaving the JSON
// path of the field, e.g. "profile.email".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.Join(strings.Fields(fe.Param()), ", "))
	case "capitalized":
		return "Title must start with a capital letter"
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
