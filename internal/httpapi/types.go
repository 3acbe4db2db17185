package httpapi

import (
	"github.com/oapi-codegen/nullable"

	"github.com/sells-group/contact-sanitize/internal/contact"
)

// ContactInput is one contact in a sanitize request. Each field may be a
// string, null or absent; null and absent are treated like an empty string.
type ContactInput struct {
	FirstName nullable.Nullable[string] `json:"first_name,omitempty"`
	LastName  nullable.Nullable[string] `json:"last_name,omitempty"`
	FullName  nullable.Nullable[string] `json:"full_name,omitempty"`
	Email     nullable.Nullable[string] `json:"email,omitempty"`
	Phone     nullable.Nullable[string] `json:"phone,omitempty"`
	Street    nullable.Nullable[string] `json:"street,omitempty"`
	City      nullable.Nullable[string] `json:"city,omitempty"`
	State     nullable.Nullable[string] `json:"state,omitempty"`
	Zip       nullable.Nullable[string] `json:"zip,omitempty"`
}

// Contact converts the input to a raw contact record.
func (in ContactInput) Contact() contact.Contact {
	return contact.Contact{
		FirstName: value(in.FirstName),
		LastName:  value(in.LastName),
		FullName:  value(in.FullName),
		Email:     value(in.Email),
		Phone:     value(in.Phone),
		Street:    value(in.Street),
		City:      value(in.City),
		State:     value(in.State),
		Zip:       value(in.Zip),
	}
}

// SanitizeRequest is the body of POST /v1/contacts/sanitize.
type SanitizeRequest struct {
	Contacts []ContactInput `json:"contacts"`
}

// ContactOutput is one cleaned contact. Rejected values are JSON null.
type ContactOutput struct {
	FirstName    string                    `json:"first_name"`
	LastName     string                    `json:"last_name"`
	FullName     string                    `json:"full_name"`
	Email        nullable.Nullable[string] `json:"email"`
	Phone        nullable.Nullable[string] `json:"phone"`
	PhoneDisplay nullable.Nullable[string] `json:"phone_display"`
	Street       string                    `json:"street"`
	City         string                    `json:"city"`
	State        nullable.Nullable[string] `json:"state"`
	Zip          nullable.Nullable[string] `json:"zip"`
	Issues       []contact.Issue           `json:"issues,omitempty"`
	DedupKey     string                    `json:"dedup_key,omitempty"`
}

// SanitizeResponse is the body returned by POST /v1/contacts/sanitize.
type SanitizeResponse struct {
	Results []ContactOutput `json:"results"`
	Summary contact.Summary `json:"summary"`
}

// FieldRequest is the body of POST /v1/fields/{field}.
type FieldRequest struct {
	Value nullable.Nullable[string] `json:"value,omitempty"`
}

// FieldResponse reports the sanitized value of one field.
type FieldResponse struct {
	Field     string                    `json:"field"`
	Value     nullable.Nullable[string] `json:"value"`
	Valid     bool                      `json:"valid"`
	Formatted nullable.Nullable[string] `json:"formatted,omitempty"`
}

func newOutput(r contact.Result) ContactOutput {
	c := r.Cleaned
	return ContactOutput{
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		FullName:     c.FullName,
		Email:        fromPtr(c.Email),
		Phone:        fromPtr(c.Phone),
		PhoneDisplay: fromPtr(c.PhoneDisplay),
		Street:       c.Street,
		City:         c.City,
		State:        fromPtr(c.State),
		Zip:          fromPtr(c.Zip),
		Issues:       r.Issues,
		DedupKey:     r.DedupKey,
	}
}

func value(n nullable.Nullable[string]) string {
	v, err := n.Get()
	if err != nil {
		return ""
	}
	return v
}

func fromPtr(s *string) nullable.Nullable[string] {
	if s == nil {
		return nullable.NewNullNullable[string]()
	}
	return nullable.NewNullableWithValue(*s)
}

func fromOK(v string, ok bool) nullable.Nullable[string] {
	if !ok {
		return nullable.NewNullNullable[string]()
	}
	return nullable.NewNullableWithValue(v)
}
