// internal/application/checkout/form_test.go
package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdom "sunshinesaree/internal/domain/order"
)

var checkoutNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func validCODForm() Form {
	return Form{
		FirstName:     "Priya",
		LastName:      "Sharma",
		Email:         "priya@example.com",
		Phone:         "9876543210",
		Address:       "12 MG Road",
		City:          "Bengaluru",
		State:         "Karnataka",
		Pincode:       "560001",
		PaymentMethod: orderdom.PaymentMethodCOD,
	}
}

func validCardForm() Form {
	f := validCODForm()
	f.PaymentMethod = orderdom.PaymentMethodCard
	f.CardNumber = "4111 1111 1111 1111"
	f.CardExpiry = "12/27"
	f.CardCVV = "123"
	return f
}

func TestValidateAcceptsCompleteForms(t *testing.T) {
	assert.Nil(t, validCODForm().Validate(checkoutNow))
	assert.Nil(t, validCardForm().Validate(checkoutNow))
}

func TestValidateRequiredFields(t *testing.T) {
	f := Form{PaymentMethod: orderdom.PaymentMethodCOD}
	errs := f.Validate(checkoutNow)
	require.NotNil(t, errs)

	for _, field := range []string{
		"firstName", "lastName", "email", "phone",
		"address", "city", "state", "pincode",
	} {
		assert.Contains(t, errs, field)
	}
}

func TestValidateCODSkipsCardFields(t *testing.T) {
	f := validCODForm()
	f.CardNumber = ""
	f.CardExpiry = ""
	f.CardCVV = ""

	assert.Nil(t, f.Validate(checkoutNow))
}

func TestValidateCardNumber(t *testing.T) {
	f := validCardForm()
	f.CardNumber = ""
	errs := f.Validate(checkoutNow)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "cardNumber")

	f.CardNumber = "4111 1111"
	errs = f.Validate(checkoutNow)
	require.NotNil(t, errs)
	assert.Equal(t, "Card number must be 16 digits", errs["cardNumber"])
}

func TestValidateExpiry(t *testing.T) {
	f := validCardForm()

	f.CardExpiry = "05/25" // past relative to 2025-06
	errs := f.Validate(checkoutNow)
	require.NotNil(t, errs)
	assert.Equal(t, "Card has expired", errs["cardExpiry"])

	f.CardExpiry = "06/25" // current month is still valid
	assert.Nil(t, f.Validate(checkoutNow))

	f.CardExpiry = "13/27" // malformed month treated as expired
	errs = f.Validate(checkoutNow)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "cardExpiry")

	f.CardExpiry = "banana"
	errs = f.Validate(checkoutNow)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "cardExpiry")
}

func TestValidateCVV(t *testing.T) {
	f := validCardForm()

	f.CardCVV = "12"
	errs := f.Validate(checkoutNow)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "cardCvv")

	f.CardCVV = "1234"
	assert.Nil(t, f.Validate(checkoutNow))

	f.CardCVV = "12345"
	errs = f.Validate(checkoutNow)
	require.NotNil(t, errs)
	assert.Contains(t, errs, "cardCvv")
}

func TestCardDigits(t *testing.T) {
	assert.Equal(t, "4111111111111111", CardDigits("4111 1111 1111 1111"))
	assert.Equal(t, "4111", CardDigits("4-1-1-1"))
	assert.Equal(t, "", CardDigits("no digits"))
}

func TestFieldErrorsMessage(t *testing.T) {
	errs := FieldErrors{"email": "Email is required", "city": "City is required"}
	assert.Equal(t, "checkout: invalid form fields: city, email", errs.Error())
}
