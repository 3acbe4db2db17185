// Package contact cleans whole contact records with the field sanitizers and
// tracks what was rejected, derived or duplicated along the way.
package contact

import (
	"strings"

	"github.com/sells-group/contact-sanitize/pkg/sanitize"
)

// Contact is a raw contact record as it arrives from a CRM export or API.
type Contact struct {
	FirstName string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty" yaml:"last_name,omitempty"`
	FullName  string `json:"full_name,omitempty" yaml:"full_name,omitempty"`
	Email     string `json:"email,omitempty" yaml:"email,omitempty"`
	Phone     string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Street    string `json:"street,omitempty" yaml:"street,omitempty"`
	City      string `json:"city,omitempty" yaml:"city,omitempty"`
	State     string `json:"state,omitempty" yaml:"state,omitempty"`
	Zip       string `json:"zip,omitempty" yaml:"zip,omitempty"`
}

// Get returns the raw value of a field.
func (c Contact) Get(f sanitize.Field) string {
	switch f {
	case sanitize.FieldFirstName:
		return c.FirstName
	case sanitize.FieldLastName:
		return c.LastName
	case sanitize.FieldFullName:
		return c.FullName
	case sanitize.FieldEmail:
		return c.Email
	case sanitize.FieldPhone:
		return c.Phone
	case sanitize.FieldStreet:
		return c.Street
	case sanitize.FieldCity:
		return c.City
	case sanitize.FieldState:
		return c.State
	case sanitize.FieldZip:
		return c.Zip
	}
	return ""
}

// Set assigns the raw value of a field. Unknown fields are ignored.
func (c *Contact) Set(f sanitize.Field, v string) {
	switch f {
	case sanitize.FieldFirstName:
		c.FirstName = v
	case sanitize.FieldLastName:
		c.LastName = v
	case sanitize.FieldFullName:
		c.FullName = v
	case sanitize.FieldEmail:
		c.Email = v
	case sanitize.FieldPhone:
		c.Phone = v
	case sanitize.FieldStreet:
		c.Street = v
	case sanitize.FieldCity:
		c.City = v
	case sanitize.FieldState:
		c.State = v
	case sanitize.FieldZip:
		c.Zip = v
	}
}

// Cleaned holds canonical values. Nil pointers mark fields that were missing
// or rejected; names fall back to sanitize.Unknown instead.
type Cleaned struct {
	FirstName    string  `json:"first_name" yaml:"first_name"`
	LastName     string  `json:"last_name" yaml:"last_name"`
	FullName     string  `json:"full_name" yaml:"full_name"`
	Email        *string `json:"email" yaml:"email"`
	Phone        *string `json:"phone" yaml:"phone"`
	PhoneDisplay *string `json:"phone_display" yaml:"phone_display"`
	Street       string  `json:"street" yaml:"street"`
	City         string  `json:"city" yaml:"city"`
	State        *string `json:"state" yaml:"state"`
	Zip          *string `json:"zip" yaml:"zip"`
}

// IssueKind classifies a per-field note on a cleaned record.
type IssueKind string

const (
	// IssueInvalid marks a supplied value the sanitizer rejected.
	IssueInvalid IssueKind = "invalid"
	// IssueDerived marks a value built from other fields.
	IssueDerived IssueKind = "derived"
)

// Issue records something notable about one field of a record.
type Issue struct {
	Field sanitize.Field `json:"field" yaml:"field"`
	Kind  IssueKind      `json:"kind" yaml:"kind"`
	Value string         `json:"value,omitempty" yaml:"value,omitempty"`
}

// Options tunes Clean.
type Options struct {
	// DeriveFullName builds the full name from first and last name when the
	// record has none.
	DeriveFullName bool
}

// Result is the outcome of cleaning one record.
type Result struct {
	Input    Contact `json:"input" yaml:"input"`
	Cleaned  Cleaned `json:"cleaned" yaml:"cleaned"`
	Issues   []Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
	DedupKey string  `json:"dedup_key,omitempty" yaml:"dedup_key,omitempty"`
}

// Clean runs every field of c through its sanitizer.
func Clean(c Contact, opts Options) Result {
	res := Result{Input: c}
	out := &res.Cleaned

	apply := func(f sanitize.Field) (string, bool) {
		raw := c.Get(f)
		v, ok := sanitize.Sanitizers[f](raw)
		if !ok && strings.TrimSpace(raw) != "" {
			res.Issues = append(res.Issues, Issue{Field: f, Kind: IssueInvalid, Value: raw})
		}
		return v, ok
	}
	ptr := func(v string, ok bool) *string {
		if !ok {
			return nil
		}
		return &v
	}

	out.FirstName, _ = apply(sanitize.FieldFirstName)
	out.LastName, _ = apply(sanitize.FieldLastName)

	if strings.TrimSpace(c.FullName) == "" && opts.DeriveFullName {
		joined := strings.TrimSpace(c.FirstName + " " + c.LastName)
		out.FullName = sanitize.FullName(joined)
		if out.FullName != sanitize.Unknown {
			res.Issues = append(res.Issues, Issue{Field: sanitize.FieldFullName, Kind: IssueDerived, Value: joined})
		}
	} else {
		out.FullName, _ = apply(sanitize.FieldFullName)
	}

	out.Email = ptr(apply(sanitize.FieldEmail))
	out.Phone = ptr(apply(sanitize.FieldPhone))
	if out.Phone != nil {
		out.PhoneDisplay = ptr(sanitize.FormatPhone(*out.Phone))
	}
	out.Street, _ = apply(sanitize.FieldStreet)
	out.City, _ = apply(sanitize.FieldCity)
	out.State = ptr(apply(sanitize.FieldState))
	out.Zip = ptr(apply(sanitize.FieldZip))

	res.DedupKey = DedupKey(res.Cleaned)
	return res
}

// DedupKey returns an identity key for a cleaned record: the email address,
// else the phone number, else the lower-cased full name plus ZIP. It is
// empty when nothing identifying survived cleaning.
func DedupKey(c Cleaned) string {
	switch {
	case c.Email != nil:
		return "email:" + *c.Email
	case c.Phone != nil:
		return "phone:" + *c.Phone
	case c.FullName != "" && c.FullName != sanitize.Unknown:
		zip := ""
		if c.Zip != nil {
			zip = *c.Zip
		}
		return "name:" + strings.ToLower(c.FullName) + "|" + zip
	}
	return ""
}

// Invalid reports whether any supplied field was rejected.
func (r Result) Invalid() bool {
	for _, is := range r.Issues {
		if is.Kind == IssueInvalid {
			return true
		}
	}
	return false
}
