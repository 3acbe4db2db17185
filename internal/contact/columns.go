package contact

import (
	"strings"
	"unicode"

	"github.com/rotisserie/eris"

	"github.com/sells-group/contact-sanitize/pkg/sanitize"
)

// headerAliases maps squashed spreadsheet headers (lower-case, letters and
// digits only) to fields.
var headerAliases = map[string]sanitize.Field{
	"firstname": sanitize.FieldFirstName,
	"first":     sanitize.FieldFirstName,
	"fname":     sanitize.FieldFirstName,
	"givenname": sanitize.FieldFirstName,

	"lastname":   sanitize.FieldLastName,
	"last":       sanitize.FieldLastName,
	"lname":      sanitize.FieldLastName,
	"surname":    sanitize.FieldLastName,
	"familyname": sanitize.FieldLastName,

	"fullname":    sanitize.FieldFullName,
	"name":        sanitize.FieldFullName,
	"contactname": sanitize.FieldFullName,

	"email":        sanitize.FieldEmail,
	"emailaddress": sanitize.FieldEmail,
	"mail":         sanitize.FieldEmail,

	"phone":       sanitize.FieldPhone,
	"phonenumber": sanitize.FieldPhone,
	"mobile":      sanitize.FieldPhone,
	"cell":        sanitize.FieldPhone,
	"telephone":   sanitize.FieldPhone,
	"tel":         sanitize.FieldPhone,

	"street":         sanitize.FieldStreet,
	"address":        sanitize.FieldStreet,
	"address1":       sanitize.FieldStreet,
	"addressline1":   sanitize.FieldStreet,
	"streetaddress":  sanitize.FieldStreet,
	"mailingaddress": sanitize.FieldStreet,

	"city": sanitize.FieldCity,
	"town": sanitize.FieldCity,

	"state":         sanitize.FieldState,
	"statecode":     sanitize.FieldState,
	"stateprovince": sanitize.FieldState,

	"zip":        sanitize.FieldZip,
	"zipcode":    sanitize.FieldZip,
	"zip5":       sanitize.FieldZip,
	"postalcode": sanitize.FieldZip,
	"postcode":   sanitize.FieldZip,
}

// Columns maps each recognized field to its column index.
type Columns map[sanitize.Field]int

// MapHeader recognizes contact columns in a header row. When two columns map
// to the same field the first one wins.
func MapHeader(header []string) (Columns, error) {
	cols := make(Columns)
	for i, h := range header {
		f, ok := headerAliases[squash(h)]
		if !ok {
			continue
		}
		if _, dup := cols[f]; !dup {
			cols[f] = i
		}
	}
	if len(cols) == 0 {
		return nil, eris.Errorf("contact: no contact columns in header %q", header)
	}
	return cols, nil
}

// Contact builds a raw contact from one data row.
func (c Columns) Contact(row []string) Contact {
	var out Contact
	for f, idx := range c {
		if idx < len(row) {
			out.Set(f, row[idx])
		}
	}
	return out
}

// squash lower-cases h and keeps only letters and digits.
func squash(h string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, h)
}
