// Package validation registers the request rules shared by every resource on
// gin's validator engine and provides the normalizers applied after binding.
package validation

import (
	"errors"
	"html"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	personNameRegex = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	phoneRegex      = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	adventureTypes = map[string]struct{}{
		"water": {},
		"air":   {},
		"land":  {},
	}

	strictPolicy = bluemonday.StrictPolicy()

	registerOnce sync.Once
	registerErr  error
)

var ErrUnsupportedEngine = errors.New("binding validator is not go-playground/validator")

// Register installs the custom rules on gin's default validator. Safe to call
// more than once.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = ErrUnsupportedEngine
			return
		}
		registerErr = Configure(v)
	})
	return registerErr
}

// Configure adds the custom rules to v and reports field names by their json tag.
func Configure(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)

	if err := v.RegisterValidation("personname", validatePersonName); err != nil {
		return err
	}
	if err := v.RegisterValidation("phone", validatePhone); err != nil {
		return err
	}
	return v.RegisterValidation("adventure", validateAdventure)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func validatePersonName(fl validator.FieldLevel) bool {
	return personNameRegex.MatchString(fl.Field().String())
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func validateAdventure(fl validator.FieldLevel) bool {
	_, ok := adventureTypes[fl.Field().String()]
	return ok
}

// IsPhone reports whether s matches the accepted phone format
func IsPhone(s string) bool {
	return phoneRegex.MatchString(s)
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Sanitize strips all markup from free text and trims it. Entities produced by
// the sanitizer are decoded again because the result is stored as plain text.
func Sanitize(s string) string {
	cleaned := strictPolicy.Sanitize(s)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// SanitizePtr applies Sanitize to an optional value. Empty results become nil.
func SanitizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := Sanitize(*s)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}

// Dedupe removes repeated entries while keeping the first occurrence order
func Dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
