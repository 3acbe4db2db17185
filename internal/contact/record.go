package contact

import "strings"

// OutputColumns is the header written for tabular exports.
var OutputColumns = []string{
	"first_name",
	"last_name",
	"full_name",
	"email",
	"phone",
	"phone_display",
	"street",
	"city",
	"state",
	"zip",
	"issues",
	"dedup_key",
}

// Record flattens a result into a row matching OutputColumns. Rejected
// values are written as empty cells.
func (r Result) Record() []string {
	c := r.Cleaned
	return []string{
		c.FirstName,
		c.LastName,
		c.FullName,
		deref(c.Email),
		deref(c.Phone),
		deref(c.PhoneDisplay),
		c.Street,
		c.City,
		deref(c.State),
		deref(c.Zip),
		issueList(r.Issues),
		r.DedupKey,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// issueList renders issues as "field:kind" pairs separated by semicolons.
func issueList(issues []Issue) string {
	parts := make([]string, len(issues))
	for i, is := range issues {
		parts[i] = string(is.Field) + ":" + string(is.Kind)
	}
	return strings.Join(parts, ";")
}
