package contact

import "github.com/sells-group/contact-sanitize/pkg/sanitize"

// Summary aggregates a batch of results.
type Summary struct {
	Total      int                    `json:"total" yaml:"total"`
	Clean      int                    `json:"clean" yaml:"clean"`
	Invalid    map[sanitize.Field]int `json:"invalid" yaml:"invalid"`
	Derived    int                    `json:"derived" yaml:"derived"`
	Duplicates int                    `json:"duplicates" yaml:"duplicates"`
}

// Summarize counts rejected fields, derived names and duplicate keys.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results), Invalid: make(map[sanitize.Field]int)}
	seen := make(map[string]bool, len(results))

	for _, r := range results {
		invalid := false
		for _, is := range r.Issues {
			switch is.Kind {
			case IssueInvalid:
				s.Invalid[is.Field]++
				invalid = true
			case IssueDerived:
				s.Derived++
			}
		}
		if !invalid {
			s.Clean++
		}
		if r.DedupKey == "" {
			continue
		}
		if seen[r.DedupKey] {
			s.Duplicates++
			continue
		}
		seen[r.DedupKey] = true
	}
	return s
}

// Dedupe keeps the first result for each dedup key. Results without a key
// are always kept.
func Dedupe(results []Result) []Result {
	seen := make(map[string]bool, len(results))
	out := make([]Result, 0, len(results))
	for _, r := range results {
		if r.DedupKey != "" {
			if seen[r.DedupKey] {
				continue
			}
			seen[r.DedupKey] = true
		}
		out = append(out, r)
	}
	return out
}
