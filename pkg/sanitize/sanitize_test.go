package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizers_CoverEveryField(t *testing.T) {
	for _, f := range Fields {
		assert.NotNil(t, Sanitizers[f], "missing sanitizer for %s", f)
	}
	assert.Len(t, Sanitizers, len(Fields))
}

func TestSanitizers_OKReporting(t *testing.T) {
	out, ok := Sanitizers[FieldFirstName]("")
	assert.False(t, ok)
	assert.Equal(t, Unknown, out)

	out, ok = Sanitizers[FieldFullName]("mr. aaron patrick jennings spurlock jr.")
	assert.True(t, ok)
	assert.Equal(t, "Aaron PJ Spurlock", out)

	_, ok = Sanitizers[FieldCity]("  ")
	assert.False(t, ok)

	out, ok = Sanitizers[FieldStreet]("123 north main street")
	assert.True(t, ok)
	assert.Equal(t, "123 N Main St", out)
}

func TestParseField(t *testing.T) {
	for _, name := range []string{"firstName", "first_name", "First Name", "FIRST-NAME"} {
		f, ok := ParseField(name)
		require.True(t, ok, name)
		assert.Equal(t, FieldFirstName, f)
	}
	_, ok := ParseField("middle name")
	assert.False(t, ok)
}

func TestLookup(t *testing.T) {
	fn, ok := Lookup("zip")
	require.True(t, ok)
	out, ok := fn("90210")
	assert.True(t, ok)
	assert.Equal(t, "90210", out)

	_, ok = Lookup("fax")
	assert.False(t, ok)
}

func TestLookupFormatter(t *testing.T) {
	fn, ok := LookupFormatter("Phone")
	require.True(t, ok)
	out, ok := fn("5551234567")
	assert.True(t, ok)
	assert.Equal(t, "(555) 123-4567", out)

	_, ok = LookupFormatter("email")
	assert.False(t, ok)
	_, ok = LookupFormatter("fax")
	assert.False(t, ok)
}
