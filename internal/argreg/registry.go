package argreg

import (
	"sort"
	"strings"
	"sync"
)

// Registry holds every flag occurrence from the most recent Parse.
type Registry struct {
	mu    sync.RWMutex
	flags map[string][]string // Key: flag name with its leading dash, Value: values in argument order
}

// New creates an empty registry. Every query against it resolves to its default.
func New() *Registry {
	return &Registry{
		flags: make(map[string][]string),
	}
}

// Parse builds a registry from argv. argv[0] is the program name and is skipped.
func Parse(argv []string) *Registry {
	r := New()
	r.Parse(argv)
	return r
}

// Parse discards the current contents and records the flags found in argv.
func (r *Registry) Parse(argv []string) {
	flags := make(map[string][]string)
	for i, token := range argv {
		if i == 0 {
			continue
		}
		name, value, ok := splitToken(token)
		if !ok {
			continue
		}
		flags[name] = append(flags[name], value)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.flags = flags
}

// splitToken turns a raw token into a flag name and value. ok is false for
// tokens that are not flags.
func splitToken(token string) (name, value string, ok bool) {
	if !strings.HasPrefix(token, "-") {
		return "", "", false
	}
	if strings.HasPrefix(token, "--") {
		token = token[1:]
	}
	name, value, _ = strings.Cut(token, "=")
	return name, value, true
}

// last returns the final value recorded for name.
func (r *Registry) last(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values := r.flags[name]
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

// Has reports whether name was passed at least once.
func (r *Registry) Has(name string) bool {
	_, ok := r.last(name)
	return ok
}

// Values returns a copy of every value recorded for name, in argument order.
// It returns nil if the flag was never passed.
func (r *Registry) Values(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values, ok := r.flags[name]
	if !ok {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// Names returns the sorted names of every recorded flag.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.flags))
	for name := range r.flags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of distinct flag names.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.flags)
}

// Snapshot returns a deep copy of the occurrence table.
func (r *Registry) Snapshot() map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]string, len(r.flags))
	for name, values := range r.flags {
		cp := make([]string, len(values))
		copy(cp, values)
		out[name] = cp
	}
	return out
}

// SoftSet records value for name unless name was already passed. It reports
// whether the value was recorded.
func (r *Registry) SoftSet(name, value string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.flags[name]) > 0 {
		return false
	}
	r.flags[name] = []string{value}
	return true
}

// SoftSetBool is SoftSet with "1" for true and "0" for false.
func (r *Registry) SoftSetBool(name string, value bool) bool {
	if value {
		return r.SoftSet(name, "1")
	}
	return r.SoftSet(name, "0")
}
