package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Lexical(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"string", String("Alice"), "Alice"},
		{"integer number", Int(30), "30"},
		{"decimal number", Number(1.5), "1.5"},
		{"bool", Bool(true), "true"},
		{"reference", Reference("http://example.org/a"), "http://example.org/a"},
		{"empty string", String(""), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.Lexical())
		})
	}
}

func TestValue_AsNumber(t *testing.T) {
	n, ok := Int(42).AsNumber()
	require.True(t, ok)
	assert.Equal(t, 42.0, n)

	n, ok = String(" 3.5 ").AsNumber()
	require.True(t, ok)
	assert.Equal(t, 3.5, n)

	_, ok = String("abc").AsNumber()
	assert.False(t, ok)
	_, ok = Bool(true).AsNumber()
	assert.False(t, ok)
	_, ok = Reference("http://example.org/1").AsNumber()
	assert.False(t, ok)
}

func TestValue_AsInteger(t *testing.T) {
	i, ok := Int(7).AsInteger()
	require.True(t, ok)
	assert.Equal(t, int64(7), i)

	i, ok = String("30").AsInteger()
	require.True(t, ok)
	assert.Equal(t, int64(30), i)

	_, ok = Number(1.5).AsInteger()
	assert.False(t, ok, "fractional values are not integers")
	_, ok = String("").AsInteger()
	assert.False(t, ok)
}

func TestValue_AsBool(t *testing.T) {
	for _, s := range []string{"true", "1"} {
		b, ok := String(s).AsBool()
		require.True(t, ok, s)
		assert.True(t, b)
	}
	for _, s := range []string{"false", "0"} {
		b, ok := String(s).AsBool()
		require.True(t, ok, s)
		assert.False(t, b)
	}
	_, ok := String("yes").AsBool()
	assert.False(t, ok)

	b, ok := Number(1).AsBool()
	require.True(t, ok)
	assert.True(t, b)
	_, ok = Number(2).AsBool()
	assert.False(t, ok)
}

func TestRecord_SetAddGet(t *testing.T) {
	rec := New().Set("ex:tag", String("a"))
	rec.Add("ex:tag", String("b"))

	values := rec.Get("ex:tag")
	require.Len(t, values, 2)
	assert.Equal(t, "a", values[0].Str)
	assert.Equal(t, "b", values[1].Str)
	assert.Equal(t, 1, rec.Len())
	assert.Empty(t, rec.Get("ex:missing"))
}

func TestRecord_ZeroValueUsable(t *testing.T) {
	var rec Record
	rec.Set("ex:name", String("Alice"))
	rec.Add("ex:name", String("Ally"))

	require.Len(t, rec.Get("ex:name"), 2)
	assert.Equal(t, 1, rec.Len())

	var other Record
	other.Add("ex:tag", String("a"))
	require.Len(t, other.Get("ex:tag"), 1)
}

func TestCoerce_Time(t *testing.T) {
	midnight := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	v, err := Coerce(midnight)
	require.NoError(t, err)
	assert.Equal(t, KindString, v.Kind)
	assert.Equal(t, "1990-05-17", v.Str)

	stamped := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	v, err = Coerce(stamped)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-02T03:04:05Z", v.Str)
}

func TestFromMap(t *testing.T) {
	rec, err := FromMap(map[string]any{
		"@id":       "urn:person:alice",
		"ex:name":   "Alice",
		"ex:age":    30,
		"ex:scores": []any{1.5, 2.5},
		"ex:active": true,
		"ex:boss":   "<http://example.org/bob>",
	})
	require.NoError(t, err)

	assert.Equal(t, "urn:person:alice", rec.NodeID)
	assert.Equal(t, 5, rec.Len())

	name := rec.Get("ex:name")
	require.Len(t, name, 1)
	assert.Equal(t, KindString, name[0].Kind)

	age := rec.Get("ex:age")
	require.Len(t, age, 1)
	assert.Equal(t, KindNumber, age[0].Kind)
	assert.Equal(t, 30.0, age[0].Num)

	scores := rec.Get("ex:scores")
	require.Len(t, scores, 2)

	boss := rec.Get("ex:boss")
	require.Len(t, boss, 1)
	assert.Equal(t, KindReference, boss[0].Kind)
	assert.Equal(t, "http://example.org/bob", boss[0].Str)
}

func TestFromMap_Errors(t *testing.T) {
	_, err := FromMap(map[string]any{"ex:bad": map[string]any{"nested": 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ex:bad")

	_, err = FromMap(map[string]any{"@id": 42})
	require.Error(t, err)

	_, err = FromMap(map[string]any{"ex:list": []any{1, nil}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value 1")
}
