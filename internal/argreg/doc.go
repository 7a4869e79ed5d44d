// Package argreg parses a raw argument vector into a table of flag
// occurrences and answers typed queries against it.
//
// # Parsing
//
// Element 0 of the vector is the program name and is skipped. Every other
// token that starts with a dash is a flag: a leading "--" collapses to "-",
// and the token is split on its first "=" into a name and a value. A token
// without "=" records an empty value. Tokens that do not start with a dash
// are ignored. Each occurrence is appended, so a flag passed several times
// keeps every value in argument order.
//
// # Queries
//
// GetString, GetInt and GetBool read the last recorded value of a flag and
// fall back to the caller's default when the flag was never passed. Integer
// values that do not parse become 0. Boolean queries honour the "-noX"
// negation convention:
//
//	-X          true
//	-X=0        false
//	-noX        false
//	-noX=0      true
//	-X -noX     true (an explicit -X always wins, whatever the order)
//
// Nothing in this package returns an error. The registry records what was
// passed and leaves semantic validation to the caller.
package argreg
