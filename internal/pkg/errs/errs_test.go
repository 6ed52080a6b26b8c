package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("customerId", "123")

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, []error{errs.ErrObjectNotFound}, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("storage unavailable")
		err := errs.NewObjectNotFoundErrorWithCause("customerId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: customerId, ID is: 123 (cause: storage unavailable)",
			err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("email", "a@b.io")

		assert.Equal(t, "object already exists: email a@b.io", err.Error())
		assert.Equal(t, []error{errs.ErrObjectAlreadyExists}, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsErrorWithCause("email", "a@b.io", errors.New("unique index"))

		assert.Equal(t, "object already exists: email a@b.io (cause: unique index)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, []error{errs.ErrValueIsInvalid}, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("phone digits", 9, 10, 15)

		assert.Equal(t, "phone digits", err.ParamName)
		assert.Equal(t, 9, err.Value)
		assert.Equal(t, 10, err.Min)
		assert.Equal(t, 15, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is out of range: 9 is phone digits, min value is 10, max value is 15", err.Error())
		assert.Equal(t, []error{errs.ErrValueIsOutOfRange}, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("too short")
		err := errs.NewValueIsOutOfRangeErrorWithCause("postal code length", 1, 3, "unbounded", cause)

		assert.Equal(t,
			"value is out of range: 1 is postal code length, min value is 3, max value is unbounded (cause: too short)",
			err.Error())
	})

	t.Run("newlines in values are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)

		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("street")

		assert.Equal(t, "value is required: street", err.Error())
		assert.Equal(t, []error{errs.ErrValueIsRequired}, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		err := errs.NewValueIsRequiredErrorWithCause("street", errors.New("blank after trimming"))

		assert.Equal(t, "value is required: street (cause: blank after trimming)", err.Error())
	})
}

func TestBusinessRuleViolationError(t *testing.T) {
	errShipped := errors.New("order already shipped")

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewBusinessRuleViolationError("order cannot be cancelled")

		assert.Equal(t, "business rule violation: order cannot be cancelled", err.Error())
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})

	t.Run("with cause both sentinels match", func(t *testing.T) {
		err := errs.NewBusinessRuleViolationErrorWithCause("order cannot be cancelled", errShipped)

		assert.Equal(t,
			"business rule violation: order cannot be cancelled (cause: order already shipped)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
		require.ErrorIs(t, err, errShipped)
	})
}

func TestCauseIsReachable(t *testing.T) {
	cause := errors.New("order has no line items")

	testCases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"not found", errs.NewObjectNotFoundErrorWithCause("order", "1", cause), errs.ErrObjectNotFound},
		{"already exists", errs.NewObjectAlreadyExistsErrorWithCause("order", "1", cause), errs.ErrObjectAlreadyExists},
		{"invalid", errs.NewValueIsInvalidErrorWithCause("items", cause), errs.ErrValueIsInvalid},
		{"out of range", errs.NewValueIsOutOfRangeErrorWithCause("items", 0, 1, 10, cause), errs.ErrValueIsOutOfRange},
		{"required", errs.NewValueIsRequiredErrorWithCause("items", cause), errs.ErrValueIsRequired},
		{"business rule", errs.NewBusinessRuleViolationErrorWithCause("confirm", cause), errs.ErrBusinessRuleViolation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("restore: %w", tc.err)

			require.ErrorIs(t, wrapped, tc.sentinel)
			require.ErrorIs(t, wrapped, cause)
		})
	}
}

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want errs.Kind
	}{
		{"nil", nil, errs.KindUnknown},
		{"plain error", errors.New("connection reset"), errs.KindUnknown},
		{"required", errs.NewValueIsRequiredError("city"), errs.KindInvalidArgument},
		{"invalid", errs.NewValueIsInvalidError("email"), errs.KindInvalidArgument},
		{"out of range", errs.NewValueIsOutOfRangeError("digits", 3, 10, 15), errs.KindInvalidArgument},
		{"business rule", errs.NewBusinessRuleViolationError("x"), errs.KindBusinessRule},
		{"not found", errs.NewObjectNotFoundError("id", "1"), errs.KindNotFound},
		{"already exists", errs.NewObjectAlreadyExistsError("email", "x"), errs.KindAlreadyExists},
		{"wrapped", fmt.Errorf("handler: %w", errs.NewValueIsRequiredError("city")), errs.KindInvalidArgument},
		{
			"joined argument errors",
			errors.Join(errs.NewValueIsRequiredError("city"), errs.NewValueIsInvalidError("email")),
			errs.KindInvalidArgument,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := errs.KindOf(tc.err)

			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want != errs.KindUnknown, got.IsExpected())
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "InvalidArgument", errs.KindInvalidArgument.String())
	assert.Equal(t, "BusinessRule", errs.KindBusinessRule.String())
	assert.Equal(t, "NotFound", errs.KindNotFound.String())
	assert.Equal(t, "AlreadyExists", errs.KindAlreadyExists.String())
	assert.Equal(t, "Unknown", errs.Kind(42).String())
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExists.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "business rule violation", errs.ErrBusinessRuleViolation.Error())
}
