package errs_test

import (
	"errors"
	"testing"

	"dealersales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("documentId", "123")

		assert.Equal(t, "documentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("documentId", "123", cause)

		assert.Equal(t, "documentId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: documentId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("amount")

		assert.Equal(t, "amount", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: amount", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("amount must be greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("amount", cause)

		assert.Equal(t, "amount", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: amount (cause: amount must be greater than 0)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("dealerId")

		assert.Equal(t, "dealerId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: dealerId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("dealerId", cause)

		assert.Equal(t, "dealerId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: dealerId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("wholesalePrice", 150, 0, 120)

		assert.Equal(t, "wholesalePrice", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is wholesalePrice, min value is 0, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})
}

func TestInvalidStateTransitionError(t *testing.T) {
	t.Run("NewInvalidStateTransitionError", func(t *testing.T) {
		err := errs.NewInvalidStateTransitionError("delivery", "DELIVERED", "SCHEDULED")

		assert.Equal(t, "delivery", err.Entity)
		assert.Equal(t, "DELIVERED", err.Current)
		assert.Equal(t, "SCHEDULED", err.Requested)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid state transition: delivery cannot move from DELIVERED to SCHEDULED", err.Error())
		assert.Equal(t, errs.ErrInvalidStateTransition, err.Unwrap())
	})

	t.Run("NewInvalidStateTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("customer has not confirmed receipt")
		err := errs.NewInvalidStateTransitionErrorWithCause("delivery", "IN_TRANSIT", "DELIVERED", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid state transition: delivery cannot move from IN_TRANSIT to DELIVERED (cause: customer has not confirmed receipt)",
			err.Error())
	})
}

func TestWrongDocumentKindError(t *testing.T) {
	err := errs.NewWrongDocumentKindError("record payment", "QUOTE")

	assert.Equal(t, "record payment", err.Operation)
	assert.Equal(t, "QUOTE", err.Kind)
	assert.Equal(t, "wrong document kind: record payment is not allowed for QUOTE documents", err.Error())
	assert.Equal(t, errs.ErrWrongDocumentKind, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrInvalidStateTransition)
		require.Error(t, errs.ErrWrongDocumentKind)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid state transition", errs.ErrInvalidStateTransition.Error())
		assert.Equal(t, "wrong document kind", errs.ErrWrongDocumentKind.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		notFoundErr := errs.NewObjectNotFoundError("documentId", "123")
		require.ErrorIs(t, notFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("amount")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		outOfRangeErr := errs.NewValueIsOutOfRangeError("qty", -1, 1, 100)
		require.ErrorIs(t, outOfRangeErr, errs.ErrValueIsOutOfRange)

		requiredErr := errs.NewValueIsRequiredError("dealerId")
		require.ErrorIs(t, requiredErr, errs.ErrValueIsRequired)

		transitionErr := errs.NewInvalidStateTransitionError("document", "DELIVERED", "OPEN")
		require.ErrorIs(t, transitionErr, errs.ErrInvalidStateTransition)

		wrongKindErr := errs.NewWrongDocumentKindError("schedule delivery", "CONTRACT")
		require.ErrorIs(t, wrongKindErr, errs.ErrWrongDocumentKind)
	})
}
