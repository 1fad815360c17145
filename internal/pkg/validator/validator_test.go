package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("Ana"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("ana@example.com"))
	assert.True(t, IsValidEmail("ana.souza+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("ana@"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("0042"))
	assert.False(t, IsNumeric("42a"))
	assert.False(t, IsNumeric(""))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-03-10")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())

	_, ok = IsValidDate("10/03/2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-13-40")
	assert.False(t, ok)
}

func TestIsValidCountryCode(t *testing.T) {
	assert.True(t, IsValidCountryCode("BR"))
	assert.False(t, IsValidCountryCode("br"))
	assert.False(t, IsValidCountryCode("BRA"))
	assert.False(t, IsValidCountryCode(""))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "is required"},
		{Field: "end_date", Message: "must not be before start_date"},
	}

	assert.Equal(t, "start_date: is required; end_date: must not be before start_date", errs.Error())
	assert.Equal(t, map[string]string{
		"start_date": "is required",
		"end_date":   "must not be before start_date",
	}, errs.ToMap())
}
