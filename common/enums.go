// Package common keeps enums shared between configuration and processing
// packages so neither has to import the other.
package common

//go:generate go tool go-enum --marshal

// Specification of how stylesheets are taken apart.
// ENUM(scrape, tokenize)
type ParserMode int

// Structural parser modes understand nested at-rules.
func (p ParserMode) Structural() bool {
	return p == ParserModeTokenize
}
