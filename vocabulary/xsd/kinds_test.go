package xsd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindString, KindOf(String))
	assert.Equal(t, KindString, KindOf(Token))
	assert.Equal(t, KindInteger, KindOf(Integer))
	assert.Equal(t, KindInteger, KindOf(NonNegativeInteger))
	assert.Equal(t, KindDecimal, KindOf(Decimal))
	assert.Equal(t, KindDecimal, KindOf(Double))
	assert.Equal(t, KindBoolean, KindOf(Boolean))
	assert.Equal(t, KindDate, KindOf(Date))
	assert.Equal(t, KindDateTime, KindOf(DateTime))
	assert.Equal(t, KindAnyURI, KindOf(AnyURI))
	assert.Equal(t, KindUnknown, KindOf("http://example.org/CustomType"))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric(Integer))
	assert.True(t, IsNumeric(Decimal))
	assert.True(t, IsNumeric(Float))
	assert.False(t, IsNumeric(String))
	assert.False(t, IsNumeric(Boolean))
	assert.False(t, IsNumeric("http://example.org/CustomType"))
}

func TestIsStringLike(t *testing.T) {
	assert.True(t, IsStringLike(String))
	assert.True(t, IsStringLike(NormalizedString))
	assert.True(t, IsStringLike(AnyURI))
	assert.False(t, IsStringLike(Integer))
	assert.False(t, IsStringLike(Date))
}
