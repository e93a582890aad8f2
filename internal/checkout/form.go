package checkout

import (
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

// phonePattern accepts exactly 11 digits starting with 01.
var phonePattern = regexp.MustCompile(`^01[0-9]{9}$`)

// Form is the checkout form as the shopper filled it. Card fields are only
// required when the payment method is card, which the UI does not currently
// offer; cash on delivery is the wired path.
type Form struct {
	FullName      string `validate:"required"`
	Phone         string `validate:"required,egphone"`
	Address       string `validate:"required"`
	Governorate   string `validate:"required"`
	PaymentMethod string
	CardNumber    string `validate:"required_if=PaymentMethod card"`
	ExpiryDate    string `validate:"required_if=PaymentMethod card"`
	CVV           string `validate:"required_if=PaymentMethod card"`
	CardName      string `validate:"required_if=PaymentMethod card"`
	DiscountCode  string
}

// FieldErrors maps form field names to validation messages.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("egphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// Normalize trims the free-text fields and defaults the payment method
// before validation.
func (f Form) Normalize() Form {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Address = strings.TrimSpace(f.Address)
	f.DiscountCode = strings.TrimSpace(f.DiscountCode)
	if f.PaymentMethod == "" {
		f.PaymentMethod = PaymentCash
	}
	return f
}

// Validate runs the synchronous client-side checks and returns per-field
// messages. No network call is made here.
func (f Form) Validate() FieldErrors {
	errs := FieldErrors{}

	err := formValidator.Struct(f)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "invalid form"
		return errs
	}

	for _, fieldError := range validationErrors {
		field := lowerCamel(fieldError.Field())
		switch fieldError.Tag() {
		case "required", "required_if":
			errs[field] = field + " is required"
		case "egphone":
			errs[field] = "phone number is invalid"
		default:
			errs[field] = field + " is invalid"
		}
	}
	return errs
}

func lowerCamel(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func paymentMethodCode(method string) int {
	if method == PaymentCash {
		return 0
	}
	return 1
}
