package apperror

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var shiftNamePattern = regexp.MustCompile(`^[\p{L}\p{N}\s.,\-_()]+$`)

func Init() {
	// Hook the custom rules into gin's binding validator as well.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidations(v)
	}
}

// NewValidator returns a validator configured like the gin binding one.
func NewValidator() *validator.Validate {
	v := validator.New()
	RegisterValidations(v)
	return v
}

// RegisterValidations installs json tag naming plus the hhmm and shiftname rules.
func RegisterValidations(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, err := time.Parse("15:04", s)
		return err == nil
	})
	_ = v.RegisterValidation("shiftname", func(fl validator.FieldLevel) bool {
		return shiftNamePattern.MatchString(fl.Field().String())
	})
}

// ValidShiftName reports whether s only uses letters, digits, whitespace and .,-_()
func ValidShiftName(s string) bool {
	return shiftNamePattern.MatchString(s)
}
