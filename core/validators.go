package core

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"
)

// Delimiter separates fields in every table file. Values can never contain it.
const Delimiter = ","

var (
	// custom validation tags & texts
	notBlankTag  = "notblank"
	notBlankText = "{0} cannot be empty"

	noDelimTag  = "nodelim"
	noDelimText = "{0} cannot contain commas or line breaks"

	letterGradeTag  = "lettergrade"
	letterGradeText = "{0} must be A, B, C, D, or F"

	roleTag  = "role"
	roleText = "{0} must be Student or Professor"

	requiredTag  = "required"
	requiredText = "{0} cannot be empty"

	markRangeText = "{0} must be between 0 and 100"

	letterGrades = map[string]bool{"A": true, "B": true, "C": true, "D": true, "F": true}
	roles        = map[string]bool{"Student": true, "Professor": true}
)

// Validate is the shared validator used by the models' Validate methods.
var Validate = NewValidator()

// Validator validates structs and turns validator errors into *ValidationError.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewValidator instantiates the validator with english translations and our custom tags.
func NewValidator() *Validator {
	validate := validator.New()
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	InitValidators(validate, translator)
	return &Validator{validate: validate, translator: translator}
}

// InitValidators registers the translations and custom validators on validate.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// register custom validators
	_ = validate.RegisterValidation(notBlankTag, notBlankValidation)
	RegisterCustomTranslation(validate, translator, notBlankTag, notBlankText)

	_ = validate.RegisterValidation(noDelimTag, noDelimValidation)
	RegisterCustomTranslation(validate, translator, noDelimTag, noDelimText)

	_ = validate.RegisterValidation(letterGradeTag, letterGradeValidation)
	RegisterCustomTranslation(validate, translator, letterGradeTag, letterGradeText)

	_ = validate.RegisterValidation(roleTag, roleValidation)
	RegisterCustomTranslation(validate, translator, roleTag, roleText)

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
	RegisterCustomTranslation(validate, translator, "gte", markRangeText, true)
	RegisterCustomTranslation(validate, translator, "lte", markRangeText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Struct validates s. Field errors are returned as a *ValidationError.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, "validating struct")
	}
	flds := make([]FieldError, 0, len(vErrs))
	msgs := make([]string, 0, len(vErrs))
	for _, vErr := range vErrs {
		msg := vErr.Translate(v.translator)
		flds = append(flds, FieldError{Field: vErr.Field(), Error: msg})
		msgs = append(msgs, msg)
	}
	return NewValidationError(errors.New(strings.Join(msgs, "; ")), flds...)
}

// Custom Global Validators

func notBlankValidation(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

// noDelimValidation rejects values that would break a table line.
func noDelimValidation(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), Delimiter+"\r\n")
}

func letterGradeValidation(fl validator.FieldLevel) bool {
	return letterGrades[strings.ToUpper(fl.Field().String())]
}

func roleValidation(fl validator.FieldLevel) bool {
	return roles[fl.Field().String()]
}
