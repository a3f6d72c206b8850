package word

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func draftValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)
		_ = validate.RegisterValidation("notblank", validators.NotBlank)
	})
	return validate
}

// Validate checks the required-field rules: word and partOfSpeech non-blank,
// at least one definition and no blank definitions.
func (d Draft) Validate() error {
	err := draftValidator().Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Fields: []string{err.Error()}}
	}
	seen := map[string]bool{}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// definitions[2] -> definitions
		name, _, _ := strings.Cut(fe.Field(), "[")
		if seen[name] {
			continue
		}
		seen[name] = true
		fields = append(fields, name)
	}
	return &ValidationError{Fields: fields}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}
