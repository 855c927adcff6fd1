package validate

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const notBlankTag = "notblank"

// Validator adapts go-playground/validator to fiber's StructValidator and
// renders failures as short English sentences keyed by JSON field name.
type Validator struct {
	v  *validator.Validate
	tr ut.Translator
}

func New() *Validator {
	v := validator.New()

	english := en.New()
	uni := ut.New(english, english)
	tr, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, tr)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation(notBlankTag, func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		return ok && strings.TrimSpace(s) != ""
	})
	_ = v.RegisterTranslation(notBlankTag, tr,
		func(ut.Translator) error { return nil },
		func(_ ut.Translator, fe validator.FieldError) string { return fe.Field() + " cannot be blank" },
	)

	return &Validator{v: v, tr: tr}
}

var (
	defaultOnce sync.Once
	defaultV    *Validator
)

// Default returns the process-wide validator shared by fiber and handlers.
func Default() *Validator {
	defaultOnce.Do(func() { defaultV = New() })
	return defaultV
}

// Message renders err with the default validator's translations.
func Message(err error) string {
	return Default().Message(err)
}

// Validate satisfies fiber.StructValidator.
func (x *Validator) Validate(out any) error {
	return x.v.Struct(out)
}

// Message turns a validation failure into one human readable line. Other
// errors are returned as-is.
func (x *Validator) Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(x.tr))
	}
	return strings.Join(msgs, "; ")
}

func IsValidationError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}
