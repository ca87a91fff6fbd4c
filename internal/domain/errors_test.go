package domain

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsValidation(t *testing.T) {
	err := NewValidationError("Файл не получен.")
	assert.True(t, IsValidation(err))
	assert.Equal(t, "Файл не получен.", err.Error())

	assert.True(t, IsValidation(errors.Wrap(err, "normalizing table")))
	assert.True(t, IsValidation(Validationf("Неверная дата custom_start: %s", "nope")))

	assert.False(t, IsValidation(nil))
	assert.False(t, IsValidation(errors.New("io failure")))
}
