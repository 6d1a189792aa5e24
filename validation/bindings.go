// File: validation/bindings.go
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Binding tags registered with gin's validator.
const (
	TagNationalID         = "national_id"
	TagInstitutionalEmail = "institutional_email"
	TagPersonName         = "person_name"
	TagStudentDigits      = "student_digits"
	TagCareer             = "career" // career=<DepartmentField>
)

// RegisterBindings makes the validators available as `binding:"..."` tags on
// request structs. emailDomain falls back to DefaultEmailDomain. Field
// names in validation errors follow the json tags.
func RegisterBindings(emailDomain string) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("validation: gin validator engine is not go-playground/validator")
	}
	return registerOn(v, emailDomain)
}

// NewValidator returns a standalone validator reading the same `binding`
// tags as gin, for validating structs outside a request.
func NewValidator(emailDomain string) *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	if err := registerOn(v, emailDomain); err != nil {
		panic(err)
	}
	return v
}

func registerOn(v *validator.Validate, emailDomain string) error {
	if emailDomain == "" {
		emailDomain = DefaultEmailDomain
	}
	v.RegisterTagNameFunc(jsonFieldName)

	funcs := map[string]validator.Func{
		TagNationalID: func(fl validator.FieldLevel) bool {
			return ValidateNationalID(strings.TrimSpace(fl.Field().String()))
		},
		TagInstitutionalEmail: func(fl validator.FieldLevel) bool {
			return ValidateInstitutionalEmail(strings.TrimSpace(fl.Field().String()), emailDomain)
		},
		TagPersonName: func(fl validator.FieldLevel) bool {
			return ValidateName(fl.Field().String())
		},
		TagStudentDigits: func(fl validator.FieldLevel) bool {
			return ValidateStudentIDDigits(strings.TrimSpace(fl.Field().String()))
		},
		TagCareer: func(fl validator.FieldLevel) bool {
			dept := fl.Parent().FieldByName(fl.Param())
			if !dept.IsValid() || dept.Kind() != reflect.String {
				return false
			}
			return ValidateCareer(dept.String(), fl.Field().String())
		},
	}
	for tag, fn := range funcs {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}
