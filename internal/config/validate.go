package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/persiancal/jdp/internal/dates"
	"github.com/persiancal/jdp/internal/jcal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("jalalidate", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if dates.IsRelativeDateKeyword(value) {
			return true
		}
		_, err := jcal.Parse(value)
		return err == nil
	})
	_ = v.RegisterValidation("uicolor", func(fl validator.FieldLevel) bool {
		return isUIColor(fl.Field().String())
	})
	return v
}

func isUIColor(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "none", "off", "default":
		return true
	}
	if strings.HasPrefix(v, "#") {
		hex := v[1:]
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		_, err := strconv.ParseUint(hex, 16, 32)
		return err == nil
	}
	n, err := strconv.Atoi(v)
	return err == nil && n >= 0 && n <= 255
}

// Validate checks field formats. Range ordering is checked where the range
// is built, since it needs today's date to resolve relative values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: invalid value %q (%s)", fieldPath(fe), fe.Value(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// fieldPath turns "Config.UI.Colors.Text" into "ui.colors.text".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}
