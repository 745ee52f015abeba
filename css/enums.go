package css

import "strings"

//go:generate go tool go-enum --marshal

// Syntactic kind of a selector, used to group selectors with similar usage.
// ENUM(element, class, id, pseudo-class, pseudo-element)
type SelectorKind int

// Classify determines selector kind by looking at its text only. Prefix is
// checked first, so ".card > p::before" is a class selector. Compound
// selectors are not decomposed.
func Classify(selector string) SelectorKind {
	selector = strings.TrimSpace(selector)
	switch {
	case strings.HasPrefix(selector, "."):
		return SelectorKindClass
	case strings.HasPrefix(selector, "#"):
		return SelectorKindId
	case strings.Contains(selector, "::"):
		return SelectorKindPseudoElement
	case strings.Contains(selector, ":"):
		return SelectorKindPseudoClass
	default:
		return SelectorKindElement
	}
}
