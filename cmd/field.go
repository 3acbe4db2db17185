package main

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/contact-sanitize/pkg/sanitize"
)

var fieldFormat bool

// errInvalidValue is returned when a value does not sanitize to a canonical
// form, so the process exits non-zero.
var errInvalidValue = eris.New("field: invalid value")

var fieldCmd = &cobra.Command{
	Use:   "field <name> <value>",
	Short: "Sanitize a single field value",
	Long: `Runs one sanitizer and prints the result. Field names ignore case, spaces,
dashes and underscores. Exits non-zero when the value is rejected.

Examples:
  contact-sanitize field first_name "mr. john"
  contact-sanitize field phone "+1 (555) 123-4567" --format`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := sanitizeField(args[0], args[1], fieldFormat)
		if out != "" {
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		return err
	},
}

func init() {
	fieldCmd.Flags().BoolVar(&fieldFormat, "format", false, "also apply the field's display formatter (phone)")
	rootCmd.AddCommand(fieldCmd)
}

// sanitizeField runs the named sanitizer on value. Names that fall back to
// Unknown are still printed.
func sanitizeField(name, value string, format bool) (string, error) {
	fn, ok := sanitize.Lookup(name)
	if !ok {
		names := make([]string, len(sanitize.Fields))
		for i, f := range sanitize.Fields {
			names[i] = string(f)
		}
		return "", eris.Errorf("field: unknown field %q (want one of %s)", name, strings.Join(names, ", "))
	}

	out, valid := fn(value)
	if !valid {
		return out, errInvalidValue
	}
	if format {
		if f, ok := sanitize.LookupFormatter(name); ok {
			out, _ = f(out)
		}
	}
	return out, nil
}
