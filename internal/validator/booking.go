package validator

import (
	"fmt"
	"math"
	"regexp"

	"bookingRegistry/internal/models"

	"github.com/go-playground/validator/v10"
)

const (
	tagEmail       = "booking_email"
	tagWholeNumber = "wholenumber"

	// maxTickets keeps ticket counts inside the range where a float64 holds
	// every integer exactly.
	maxTickets = 1<<53 - 1
)

const (
	MsgNameRequired  = "name is required"
	MsgEmailRequired = "email is required"
	MsgEmailInvalid  = "email is not valid"
	MsgTicketsNotInt = "tickets must be a positive integer"
)

// emailRegex is a structural check only: something, "@", something, ".",
// something, none of it whitespace or "@".
var emailRegex = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()

	if err := v.RegisterValidation(tagEmail, validateEmail); err != nil {
		panic(fmt.Sprintf("register %q validator: %v", tagEmail, err))
	}
	if err := v.RegisterValidation(tagWholeNumber, validateWholeNumber); err != nil {
		panic(fmt.Sprintf("register %q validator: %v", tagWholeNumber, err))
	}

	return v
}

func validateEmail(fl validator.FieldLevel) bool {
	return emailRegex.MatchString(fl.Field().String())
}

func validateWholeNumber(fl validator.FieldLevel) bool {
	f := fl.Field().Float()
	return f == math.Trunc(f) && math.Abs(f) <= maxTickets
}

// ValidateBooking checks a payload and returns every rule it breaks, in a
// stable order. forCreate additionally requires name and email. The result
// is empty when the payload is acceptable.
func ValidateBooking(p models.BookingPayload, forCreate bool) []string {
	var errs []string

	if forCreate && blank(p.Name) {
		errs = append(errs, MsgNameRequired)
	}
	if p.Name.Invalid {
		errs = append(errs, mustBeString("name"))
	}

	if forCreate && blank(p.Email) {
		errs = append(errs, MsgEmailRequired)
	}
	switch {
	case p.Email.Invalid:
		errs = append(errs, mustBeString("email"))
	case p.Email.Set && !p.Email.Null:
		if validate.Var(p.Email.Value, tagEmail) != nil {
			errs = append(errs, MsgEmailInvalid)
		}
	}

	if p.Tickets.Set {
		if p.Tickets.Null || p.Tickets.Invalid ||
			validate.Var(p.Tickets.Value, "gt=0,"+tagWholeNumber) != nil {
			errs = append(errs, MsgTicketsNotInt)
		}
	}

	for _, f := range []struct {
		name  string
		field models.Field[string]
	}{
		{"phone", p.Phone},
		{"organization", p.Organization},
		{"notes", p.Notes},
	} {
		if f.field.Invalid {
			errs = append(errs, mustBeString(f.name))
		}
	}

	return errs
}

// blank reports a required field that was left out, sent as null or sent as
// an empty string. A value of the wrong type is reported separately.
func blank(f models.Field[string]) bool {
	return !f.Set || f.Null || (!f.Invalid && f.Value == "")
}

func mustBeString(field string) string {
	return field + " must be a string"
}
