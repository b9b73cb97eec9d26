package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/catalog/internal/domain/validation"
)

func TestNotification_KeepsInsertionOrder(t *testing.T) {
	n := validation.NewNotification()

	require.NoError(t, n.Append(validation.NewError("first")))
	require.NoError(t, n.Append(validation.NewError("second")))

	other := validation.NotificationWith(validation.NewError("third"))
	require.NoError(t, n.AppendAll(other))

	errs := n.Errors()
	require.Len(t, errs, 3)
	assert.Equal(t, "first", errs[0].Message)
	assert.Equal(t, "second", errs[1].Message)
	assert.Equal(t, "third", errs[2].Message)
	assert.True(t, n.HasErrors())

	first, ok := n.FirstError()
	assert.True(t, ok)
	assert.Equal(t, "first", first.Message)
}

func TestNotification_ErrorsReturnsCopy(t *testing.T) {
	n := validation.NotificationWith(validation.NewError("boom"))

	errs := n.Errors()
	errs[0] = validation.NewError("changed")

	assert.Equal(t, "boom", n.Errors()[0].Message)
}

func TestNotification_Err(t *testing.T) {
	n := validation.NewNotification()
	assert.NoError(t, n.Err("could not create Aggregate Genre"))

	_ = n.Append(validation.NewError("'name' should not be null"))
	err := n.Err("could not create Aggregate Genre")

	verr, ok := validation.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "could not create Aggregate Genre", verr.Message)
	assert.Equal(t, "could not create Aggregate Genre: 'name' should not be null", verr.Error())
}

func TestFailFast_AppendReturnsValidationError(t *testing.T) {
	h := validation.NewFailFast()

	err := h.Append(validation.NewError("'name' should not be null"))

	verr, ok := validation.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "'name' should not be null", verr.Message)
	require.Len(t, verr.Errors, 1)
	assert.False(t, h.HasErrors())
	assert.Empty(t, h.Errors())
}

func TestFailFast_AppendAll(t *testing.T) {
	h := validation.NewFailFast()

	assert.NoError(t, h.AppendAll(validation.NewNotification()))

	other := validation.NewNotification()
	_ = other.Append(validation.NewError("a"))
	_ = other.Append(validation.NewError("b"))

	verr, ok := validation.AsValidationError(h.AppendAll(other))
	require.True(t, ok)
	assert.Len(t, verr.Errors, 2)
}

func TestRun(t *testing.T) {
	t.Run("returns the value on success", func(t *testing.T) {
		n := validation.NewNotification()

		value, err := validation.Run(n, func() (int, error) { return 42, nil })

		require.NoError(t, err)
		assert.Equal(t, 42, value)
		assert.False(t, n.HasErrors())
	})

	t.Run("folds validation errors", func(t *testing.T) {
		n := validation.NewNotification()

		value, err := validation.Run(n, func() (*int, error) {
			return nil, validation.NewValidationError("invalid", []validation.Error{
				validation.NewError("a"),
				validation.NewError("b"),
			})
		})

		require.NoError(t, err)
		assert.Nil(t, value)
		require.Len(t, n.Errors(), 2)
		assert.Equal(t, "a", n.Errors()[0].Message)
	})

	t.Run("folds any other error as its message", func(t *testing.T) {
		n := validation.NewNotification()

		_, err := validation.Run(n, func() (string, error) { return "", errors.New("boom") })

		require.NoError(t, err)
		require.Len(t, n.Errors(), 1)
		assert.Equal(t, "boom", n.Errors()[0].Message)
	})

	t.Run("fail fast propagates", func(t *testing.T) {
		_, err := validation.Run(validation.NewFailFast(), func() (string, error) { return "", errors.New("boom") })

		assert.True(t, validation.IsValidationError(err))
	})
}

func TestText(t *testing.T) {
	assert.True(t, validation.IsBlank("  \t"))
	assert.False(t, validation.IsBlank(" a "))
	assert.Equal(t, 3, validation.Length("  abc "))
	assert.Equal(t, 2, validation.Length("çã"))
	assert.True(t, validation.Within("abc", 3, 255))
	assert.False(t, validation.Within("ab ", 3, 255))
}
