package validators

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// New returns a validator with the project's custom tags registered.
func New() *validator.Validate {
	v := validator.New()

	if err := v.RegisterValidation("br_mobile", func(fl validator.FieldLevel) bool {
		return IsValidBrazilianMobile(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return isClock(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}

// FirstError returns the struct field and tag of the first failed rule.
func FirstError(err error) (field, tag string, ok bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "", "", false
	}
	return verrs[0].StructField(), verrs[0].Tag(), true
}

func isClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return h <= 23 && m <= 59
}
