package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/saasbase/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		errs := validator.ValidationErrors{
			{Field: "email", Message: "is required"},
			{Field: "password", Message: "too short"},
		}
		assert.Equal(t, "validation failed: email: is required; password: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "password", Message: "too short"},
		{Field: "email", Message: "is required"},
		{Field: "password", Message: "missing digit"},
	}

	assert.True(t, errs.Has("email"))
	assert.False(t, errs.Has("name"))
	assert.Equal(t, []string{"too short", "missing digit"}, errs.Get("password"))
	assert.Equal(t, []string{"password", "email"}, errs.Fields())
	assert.Equal(t, []string{"too short", "is required", "missing digit"}, errs.Messages())
	assert.False(t, errs.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(
			validator.Required("name", "John"),
			validator.MaxLen("name", "John", 10),
		))
	})

	t.Run("collects failing rules in order", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("name", "   "),
			validator.NotContains("type", "a_b", "_"),
			validator.RequiredVar("MONGODB_URI", ""),
		)
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 3)
		assert.Equal(t, "field is required", errs[0].Message)
		assert.Equal(t, `must not contain "_"`, errs[1].Message)
		assert.Equal(t, "MONGODB_URI is not set", errs[2].Message)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{{Field: "f", Message: "m"}}
	wrapped := fmt.Errorf("op: %w", errs)
	joined := errors.Join(errors.New("sentinel"), errs)

	assert.Equal(t, errs, validator.ExtractValidationErrors(wrapped))
	assert.Equal(t, errs, validator.ExtractValidationErrors(joined))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))
	assert.Nil(t, validator.ExtractValidationErrors(nil))

	assert.True(t, validator.IsValidationError(wrapped))
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("plain")))
}
