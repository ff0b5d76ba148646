package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

var slugPattern = regexp.MustCompile(`^(?i)[a-z0-9]+(-[a-z0-9]+)*$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json field names so messages line up with the request payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	return v
}

// validateStruct runs tag validation and returns human readable messages
func validateStruct(s interface{}) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fieldMessage(fe))
	}
	return messages
}

func fieldMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())

	switch fe.Tag() {
	case "required", "required_if":
		return label + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be less than %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must have at least %s entries", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", label, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", label, fe.Param())
	case "datetime":
		return label + " must be in YYYY-MM-DD format"
	case "email":
		return label + " format is invalid"
	case "slug":
		return label + " may only contain letters, digits and single dashes"
	default:
		return label + " is invalid"
	}
}

var labelAcronyms = map[string]string{
	"ppe":  "PPE",
	"sds":  "SDS",
	"osha": "OSHA",
	"id":   "ID",
	"mro":  "MRO",
	"sku":  "SKU",
}

// fieldLabel turns "ppe_type" into "PPE type"
func fieldLabel(field string) string {
	parts := strings.Split(field, "_")
	for i, p := range parts {
		if acronym, ok := labelAcronyms[p]; ok {
			parts[i] = acronym
			continue
		}
		if i == 0 && p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// checkDateOrder appends a message when both dates parse and end precedes start
func checkDateOrder(errs []string, start, end, message string) []string {
	if start == "" || end == "" {
		return errs
	}
	s, err1 := ParseDate(start)
	e, err2 := ParseDate(end)
	if err1 == nil && err2 == nil && e.Before(s) {
		errs = append(errs, message)
	}
	return errs
}

// cleanList trims entries and drops blanks
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}
