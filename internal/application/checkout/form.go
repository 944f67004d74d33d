// internal/application/checkout/form.go
package checkout

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	orderdom "sunshinesaree/internal/domain/order"
)

// Form carries the shipping/payment fields collected at checkout.
// Card fields are collected but never transmitted to a processor; only
// the last four digits ever reach a persisted record.
type Form struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`

	PaymentMethod string `json:"paymentMethod"`
	CardNumber    string `json:"cardNumber"`
	CardExpiry    string `json:"cardExpiry"` // MM/YY
	CardCVV       string `json:"cardCvv"`

	Notes string `json:"notes"`
}

// FieldErrors maps field names to human-readable messages. A non-empty
// map blocks submission.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "checkout: invalid form"
	}
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Sprintf("checkout: invalid form fields: %s", strings.Join(keys, ", "))
}

// Validate checks required-field presence and, for card payments, the
// card number length, expiry and CVV. Returns nil when the form is valid.
func (f Form) Validate(now time.Time) FieldErrors {
	errs := FieldErrors{}

	require := func(field, value, msg string) {
		if strings.TrimSpace(value) == "" {
			errs[field] = msg
		}
	}

	require("firstName", f.FirstName, "First name is required")
	require("lastName", f.LastName, "Last name is required")
	require("email", f.Email, "Email is required")
	require("phone", f.Phone, "Phone number is required")
	require("address", f.Address, "Address is required")
	require("city", f.City, "City is required")
	require("state", f.State, "State is required")
	require("pincode", f.Pincode, "Pincode is required")

	if f.PaymentMethod == orderdom.PaymentMethodCard {
		digits := CardDigits(f.CardNumber)
		if digits == "" {
			errs["cardNumber"] = "Card number is required"
		} else if len(digits) < 16 {
			errs["cardNumber"] = "Card number must be 16 digits"
		}

		if strings.TrimSpace(f.CardExpiry) == "" {
			errs["cardExpiry"] = "Expiry date is required"
		} else if expired(f.CardExpiry, now) {
			errs["cardExpiry"] = "Card has expired"
		}

		cvv := CardDigits(f.CardCVV)
		if cvv == "" {
			errs["cardCvv"] = "CVV is required"
		} else if len(cvv) < 3 || len(cvv) > 4 {
			errs["cardCvv"] = "CVV must be 3 or 4 digits"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// CardDigits strips everything but digits from a card field.
func CardDigits(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// expired reports whether an MM/YY expiry is in the past relative to now.
// Malformed expiries are treated as expired.
func expired(expiry string, now time.Time) bool {
	parts := strings.SplitN(strings.TrimSpace(expiry), "/", 2)
	if len(parts) != 2 {
		return true
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || month < 1 || month > 12 {
		return true
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return true
	}

	curYear := now.Year() % 100
	curMonth := int(now.Month())
	return year < curYear || (year == curYear && month < curMonth)
}
