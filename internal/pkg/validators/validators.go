// Package validators holds the shared validator instance and the custom
// validation tags used by domain entities.
package validators

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	slugPattern      = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	assetPathPattern = regexp.MustCompile(`^/[A-Za-z0-9._/-]+$`)

	instance     *validator.Validate
	instanceOnce sync.Once
)

// Get returns the process-wide validator with custom tags registered.
func Get() *validator.Validate {
	instanceOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Registration only fails for empty tags or nil funcs.
		_ = v.RegisterValidation("slug", SlugValidation)
		_ = v.RegisterValidation("weburl", WebURLValidation)
		_ = v.RegisterValidation("assetpath", AssetPathValidation)
		instance = v
	})
	return instance
}

// Struct validates s and flattens validator errors into a readable message.
func Struct(s interface{}) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%s", strings.Join(messages, "; "))
	}
	return err
}

// SlugValidation accepts lowercase, dash separated identifiers such as "media-partners".
func SlugValidation(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

// WebURLValidation accepts absolute http and https URLs with a host.
func WebURLValidation(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// AssetPathValidation accepts rooted storage paths without traversal segments.
func AssetPathValidation(fl validator.FieldLevel) bool {
	p := fl.Field().String()
	if !assetPathPattern.MatchString(p) {
		return false
	}
	for _, segment := range strings.Split(p, "/") {
		if segment == ".." || segment == "." {
			return false
		}
	}
	return true
}
