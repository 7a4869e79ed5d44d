package argreg

import (
	"strconv"
	"strings"
)

// GetString returns the last value passed for name, or def if name was never
// passed. An explicit empty value ("-name=" or a bare "-name") is returned as "".
func (r *Registry) GetString(name, def string) string {
	value, ok := r.last(name)
	if !ok {
		return def
	}
	return value
}

// GetInt returns the last value passed for name as an integer, or def if
// name was never passed. Empty and malformed values resolve to 0.
func (r *Registry) GetInt(name string, def int64) int64 {
	value, ok := r.last(name)
	if !ok {
		return def
	}
	return atoi(value)
}

// GetBool is GetBoolDefault with a false default.
func (r *Registry) GetBool(name string) bool {
	return r.GetBoolDefault(name, false)
}

// GetBoolDefault resolves name as a boolean, honouring the "-no" negation form.
func (r *Registry) GetBoolDefault(name string, def bool) bool {
	// An explicit positive flag decides on its own, wherever the negation appears.
	if value, ok := r.last(name); ok {
		return isTrue(value)
	}

	negated, ok := r.last(negatedName(name))
	if !ok {
		return def
	}
	// -noX=0 cancels the negation, which asserts X.
	return !isTrue(negated)
}

// negatedName maps "-X" to "-noX".
func negatedName(name string) string {
	return "-no" + strings.TrimPrefix(name, "-")
}

func isTrue(value string) bool {
	return value != "0"
}

func atoi(value string) int64 {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
