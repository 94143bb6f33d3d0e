package css

import (
	"fmt"
	"io"
	"strings"
)

// Declaration is a single "property: value" pair.
type Declaration struct {
	Property string
	Value    string
}

// Rule is a selector with declarations kept in emission order.
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// Add appends declaration and returns rule for chaining.
func (r *Rule) Add(property, value string) *Rule {
	r.Declarations = append(r.Declarations, Declaration{Property: property, Value: value})
	return r
}

// Get returns value of the first declaration of the property.
func (r *Rule) Get(property string) (string, bool) {
	for _, d := range r.Declarations {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// Keyframes is an @keyframes block, frames are rules with "from", "to" or
// percentage selectors.
type Keyframes struct {
	Name   string
	Frames []Rule
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of Rule or Keyframes is non-nil.
type StylesheetItem struct {
	Rule      *Rule
	Keyframes *Keyframes
}

// Stylesheet is an ordered CSS document with optional leading comment.
type Stylesheet struct {
	Header string // comment text without delimiters
	Indent int    // spaces per nesting level
	Items  []StylesheetItem
}

// Rules returns all top-level rules in source order.
func (s *Stylesheet) Rules() []*Rule {
	var rules []*Rule
	for _, item := range s.Items {
		if item.Rule != nil {
			rules = append(rules, item.Rule)
		}
	}
	return rules
}

// RuleBySelector returns the first top-level rule with given selector.
func (s *Stylesheet) RuleBySelector(selector string) *Rule {
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector == selector {
			return item.Rule
		}
	}
	return nil
}

// KeyframesByName returns @keyframes block with given name.
func (s *Stylesheet) KeyframesByName(name string) *Keyframes {
	for _, item := range s.Items {
		if item.Keyframes != nil && item.Keyframes.Name == name {
			return item.Keyframes
		}
	}
	return nil
}

// Comment renders text as CSS comment, making sure text could not close it
// prematurely.
func Comment(text string) string {
	return "/* " + strings.ReplaceAll(text, "*/", "* /") + " */"
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
// Items are separated by blank lines.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	add := func(n int, err error) error {
		total += int64(n)
		return err
	}

	if s.Header != "" {
		if err := add(fmt.Fprintf(w, "%s\n", Comment(s.Header))); err != nil {
			return total, err
		}
		if len(s.Items) > 0 {
			if err := add(fmt.Fprint(w, "\n")); err != nil {
				return total, err
			}
		}
	}

	for i, item := range s.Items {
		var err error
		switch {
		case item.Keyframes != nil:
			err = add(s.writeKeyframes(w, item.Keyframes))
		case item.Rule != nil:
			err = add(s.writeRule(w, item.Rule, 0))
		}
		if err != nil {
			return total, err
		}

		// Add blank line between items (except after last)
		if i < len(s.Items)-1 {
			if err := add(fmt.Fprint(w, "\n")); err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

func (s *Stylesheet) pad(depth int) string {
	return strings.Repeat(" ", s.Indent*depth)
}

// writeRule writes a single CSS rule to w at given nesting depth.
func (s *Stylesheet) writeRule(w io.Writer, rule *Rule, depth int) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s%s {\n", s.pad(depth), rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range rule.Declarations {
		n, err = fmt.Fprintf(w, "%s%s: %s;\n", s.pad(depth+1), d.Property, d.Value)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprintf(w, "%s}\n", s.pad(depth))
	total += n
	return total, err
}

// writeKeyframes writes an @keyframes block to w.
func (s *Stylesheet) writeKeyframes(w io.Writer, kf *Keyframes) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "@keyframes %s {\n", kf.Name)
	total += n
	if err != nil {
		return total, err
	}
	for i := range kf.Frames {
		n, err = s.writeRule(w, &kf.Frames[i], 1)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
