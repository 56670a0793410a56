package importer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/alexanderramin/lessonlog/internal/domain"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate   *validator.Validate
	translator ut.Translator

	// custom validation tags
	notBlankTag = "notblank"
	weekdayTag  = "weekday"
)

func init() {
	validate = validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, notBlankValidation)
	_ = validate.RegisterValidation(weekdayTag, weekdayValidation)
	validate.RegisterStructValidation(timetableEntryStructValidation, TimetableEntryImport{})

	registerFn := func(ut.Translator) error { return nil }
	for _, tag := range []string{notBlankTag, weekdayTag, "subject_or_class"} {
		_ = validate.RegisterTranslation(tag, translator, registerFn, translateCustomErrs)
	}
}

func translateCustomErrs(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case notBlankTag:
		return fmt.Sprintf("%s cannot be blank", fe.Field())
	case weekdayTag:
		return fmt.Sprintf("%s %q is not a teaching day (Thứ 2 to Thứ 7)", fe.Field(), fe.Value())
	case "subject_or_class":
		return "subject or class is required"
	default:
		return fe.Error()
	}
}

func notBlankValidation(fl validator.FieldLevel) bool {
	if s, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(s) != ""
	}
	return true
}

func weekdayValidation(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok || strings.TrimSpace(s) == "" {
		return true
	}
	_, ok = domain.ParseWeekday(s)
	return ok
}

func timetableEntryStructValidation(sl validator.StructLevel) {
	e := sl.Current().Interface().(TimetableEntryImport)
	if strings.TrimSpace(e.Subject) == "" && strings.TrimSpace(e.Class) == "" {
		sl.ReportError(e.Subject, "subject", "Subject", "subject_or_class", "")
	}
}

// ValidateTimetable checks a parsed timetable. Returns a slice of all
// validation errors found.
func ValidateTimetable(tt *TimetableImport) []error {
	return collect(validate.Struct(tt))
}

// ValidateLessonCatalog checks a parsed lesson catalog.
func ValidateLessonCatalog(c *LessonCatalogImport) []error {
	return collect(validate.Struct(c))
}

// ValidateEquipmentCatalog checks a parsed equipment catalog.
func ValidateEquipmentCatalog(c *EquipmentCatalogImport) []error {
	return collect(validate.Struct(c))
}

// collect flattens validator output into one error per field, named by
// JSON path ("entries[2].day: ...").
func collect(err error) []error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []error{err}
	}
	out := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		path := fe.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		out = append(out, fmt.Errorf("%s: %s", path, fe.Translate(translator)))
	}
	return out
}
