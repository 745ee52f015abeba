package css

import (
	"fmt"
	"io"
	"strings"
)

// Declaration is a single "property: value" pair.
type Declaration struct {
	Property string `yaml:"property"`
	Value    string `yaml:"value"`
}

// Rule represents a single CSS rule (selector + declarations).
type Rule struct {
	Selector     string        // Selector text as found, surrounding whitespace removed
	Declarations []Declaration // In source order, repeated properties are kept
	SourceLine   int           // Line number in source, 0 when unknown
}

// Get returns the value for a property, last declaration wins.
func (r Rule) Get(name string) (string, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == name {
			return r.Declarations[i].Value, true
		}
	}
	return "", false
}

// Properties returns property names in declaration order.
func (r Rule) Properties() []string {
	names := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		names = append(names, d.Property)
	}
	return names
}

// WriteTo writes the rule to w, implementing io.WriterTo.
// Declarations keep their order.
func (r Rule) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := fmt.Fprintf(w, "%s {\n", r.Selector)
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, d := range r.Declarations {
		n, err = fmt.Fprintf(w, "  %s: %s;\n", d.Property, d.Value)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}\n")
	total += int64(n)
	return total, err
}

// String returns the CSS text of the rule.
func (r Rule) String() string {
	var sb strings.Builder
	r.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// WriteRules writes rules to w, every rule is followed by a blank line.
func WriteRules(w io.Writer, rules []Rule) (int64, error) {
	var total int64
	for _, rule := range rules {
		n, err := rule.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
		m, err := fmt.Fprint(w, "\n")
		total += int64(m)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
