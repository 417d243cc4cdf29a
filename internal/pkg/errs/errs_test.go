package errs_test

import (
	"errors"
	"testing"

	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
	})

	t.Run("numeric IDs are rendered plainly", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", int64(456))
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	err := errs.NewObjectAlreadyExistsError("orderNumber", "ORD2403150001")
	assert.Equal(t, "object already exists: orderNumber is ORD2403150001", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)

	withCause := errs.NewObjectAlreadyExistsErrorWithCause("orderNumber", "ORD2403150001", errors.New("23505"))
	assert.Contains(t, withCause.Error(), "(cause: 23505)")
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("expectedDeliveryDate")

		assert.Equal(t, "value is invalid: expectedDeliveryDate", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("expectedDeliveryDate", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: expectedDeliveryDate (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 1000)

		assert.Equal(t, 0, err.Value)
		assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("sequence", 10000, 1, 9999, cause)

		assert.Equal(t,
			"value is invalid: 10000 is sequence, min value is 1, max value is 9999 (cause: validation failed)",
			err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("customerId")
	assert.Equal(t, "value is required: customerId", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("customerId", errors.New("missing"))
	assert.Equal(t, "value is required: customerId (cause: missing)", withCause.Error())
}

func TestValidationError(t *testing.T) {
	messages := []string{"Customer ID is required", "Carrier ID is required"}
	err := errs.NewValidationError(messages...)

	assert.Equal(t, messages, err.Messages)
	assert.Equal(t, "validation failed: Customer ID is required; Carrier ID is required", err.Error())
	require.ErrorIs(t, err, errs.ErrValidationFailed)

	messages[0] = "mutated"
	assert.Equal(t, "Customer ID is required", err.Messages[0], "messages must be copied")
}

func TestStateViolationError(t *testing.T) {
	err := errs.NewStateViolationError("Only draft orders can be updated", "SUBMITTED")

	assert.Equal(t, "Only draft orders can be updated", err.Rule)
	assert.Equal(t, "state violation: Only draft orders can be updated (state: SUBMITTED)", err.Error())
	require.ErrorIs(t, err, errs.ErrStateViolation)
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExists.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "validation failed", errs.ErrValidationFailed.Error())
	assert.Equal(t, "state violation", errs.ErrStateViolation.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	wrapped := errors.Join(errors.New("outer"), errs.NewObjectNotFoundError("orderId", "1"))
	require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, wrapped, &notFound)
	assert.Equal(t, "orderId", notFound.ParamName)

	var violation *errs.StateViolationError
	require.ErrorAs(t, errors.Join(errs.NewStateViolationError("rule", 11)), &violation)
	assert.Equal(t, 11, violation.State)
}
