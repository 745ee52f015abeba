package lint

//go:generate go tool go-enum --marshal

// Problem found on a single line of stylesheet text.
// ENUM(double-colon, missing-semicolon, unclosed-bracket, property-without-value)
type Issue int
