// Package sanitize normalizes free-form contact fields (names, phone numbers,
// email addresses, street lines, cities, states and ZIP codes) into canonical
// strings for storage, deduplication and display.
//
// Every function is pure and safe for concurrent use. Empty input is the
// absent value: names fall back to Unknown, the other fields report ok=false
// or return "".
package sanitize

import "strings"

// Field names a sanitizable contact field.
type Field string

// Contact fields.
const (
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldFullName  Field = "fullName"
	FieldPhone     Field = "phone"
	FieldEmail     Field = "email"
	FieldStreet    Field = "street"
	FieldCity      Field = "city"
	FieldState     Field = "state"
	FieldZip       Field = "zip"
)

// Fields lists every field in display order.
var Fields = []Field{
	FieldFirstName, FieldLastName, FieldFullName,
	FieldEmail, FieldPhone,
	FieldStreet, FieldCity, FieldState, FieldZip,
}

// Func is the uniform shape of every sanitizer and formatter. ok reports
// whether input produced a canonical value: false for rejected phones,
// emails, states and ZIPs, for names that fell back to Unknown, and for
// cities and streets that came out empty.
type Func func(string) (string, bool)

// Sanitizers maps each field to its sanitizer.
var Sanitizers = map[Field]Func{
	FieldFirstName: nameFunc(FirstName),
	FieldLastName:  nameFunc(LastName),
	FieldFullName:  nameFunc(FullName),
	FieldPhone:     Phone,
	FieldEmail:     Email,
	FieldStreet:    textFunc(Street),
	FieldCity:      textFunc(City),
	FieldState:     State,
	FieldZip:       Zip,
}

// Formatters maps fields to display formatters applied after sanitizing.
var Formatters = map[Field]Func{
	FieldPhone: FormatPhone,
}

func nameFunc(fn func(string) string) Func {
	return func(s string) (string, bool) {
		out := fn(s)
		return out, out != Unknown
	}
}

func textFunc(fn func(string) string) Func {
	return func(s string) (string, bool) {
		out := fn(s)
		return out, out != ""
	}
}

// ParseField resolves a field name ignoring case, spaces, dashes and
// underscores, so "first_name", "First Name" and "firstName" all match.
func ParseField(name string) (Field, bool) {
	key := fieldKey(name)
	for _, f := range Fields {
		if fieldKey(string(f)) == key {
			return f, true
		}
	}
	return "", false
}

// Lookup returns the sanitizer for a field name.
func Lookup(name string) (Func, bool) {
	f, ok := ParseField(name)
	if !ok {
		return nil, false
	}
	return Sanitizers[f], true
}

// LookupFormatter returns the formatter for a field name, if it has one.
func LookupFormatter(name string) (Func, bool) {
	f, ok := ParseField(name)
	if !ok {
		return nil, false
	}
	fn, ok := Formatters[f]
	return fn, ok
}

func fieldKey(name string) string {
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(strings.ToLower(strings.TrimSpace(name)))
}
