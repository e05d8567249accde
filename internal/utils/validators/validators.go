package validators

import (
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// emailShape is deliberately loose: one "@", one "." after it,
	// no whitespace. Deliverability is the mail server's problem.
	emailShape  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobileShape = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

// IsEmailShape reports whether s looks like an email address.
func IsEmailShape(s string) bool {
	return emailShape.MatchString(s)
}

// MobileNo validates an international mobile number: optional leading
// "+" followed by 10 to 15 digits.
func MobileNo(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return mobileShape.MatchString(field.String())
}
