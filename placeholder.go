// File: propread/placeholder.go
package propread

import (
	"os"
	"strings"
	"sync"
)

const (
	placeholderStart = "${"
	placeholderEnd   = "}"
)

// Lookup resolves a placeholder name to a value. The second return value
// reports whether the name was found; an empty value counts as found.
type Lookup func(key string) (string, bool)

// Process-level property store, the first lookup source of the default
// resolver. It mirrors the role of JVM system properties: a per-process
// key-value table that takes precedence over the environment.
var (
	propMu sync.RWMutex
	props  = make(map[string]string)
)

// SetProperty sets a process-level property consulted by the default
// resolver before the environment.
func SetProperty(key, value string) {
	propMu.Lock()
	defer propMu.Unlock()
	props[key] = value
}

// Property returns a process-level property. It satisfies Lookup.
func Property(key string) (string, bool) {
	propMu.RLock()
	defer propMu.RUnlock()
	value, ok := props[key]
	return value, ok
}

// ClearProperties removes all process-level properties.
func ClearProperties() {
	propMu.Lock()
	defer propMu.Unlock()
	props = make(map[string]string)
}

// Resolver substitutes ${NAME} tokens in text against an ordered list of
// lookup sources. Resolution is not recursive: resolved values are never
// rescanned for further tokens.
type Resolver struct {
	lookups []Lookup
}

// NewResolver creates a Resolver over the given lookup sources, consulted
// in order. With no arguments it consults the process property store first
// and the environment second.
func NewResolver(lookups ...Lookup) *Resolver {
	if len(lookups) == 0 {
		lookups = []Lookup{Property, os.LookupEnv}
	}
	return &Resolver{lookups: lookups}
}

// Resolve replaces every ${NAME} token in text with its looked-up value.
// An empty input resolves to an empty output. A token whose name has no
// value in any lookup source fails with a *PlaceholderError. A token with
// no closing brace is not an error: the remainder of the text is emitted
// verbatim from the opening delimiter onward.
func (r *Resolver) Resolve(text string) (string, error) {
	if text == "" {
		return "", nil
	}

	var sb strings.Builder
	i := 0
	for i < len(text) {
		start := strings.Index(text[i:], placeholderStart)
		if start == -1 {
			sb.WriteString(text[i:])
			break
		}
		start += i
		sb.WriteString(text[i:start])

		end := strings.Index(text[start:], placeholderEnd)
		if end == -1 {
			// Unterminated token, emit the rest literally.
			sb.WriteString(text[start:])
			break
		}
		end += start

		key := text[start+len(placeholderStart) : end]
		value, ok := r.lookup(key)
		if !ok {
			return "", &PlaceholderError{Key: key, Text: text}
		}
		sb.WriteString(value)
		i = end + 1
	}

	return sb.String(), nil
}

func (r *Resolver) lookup(key string) (string, bool) {
	for _, fn := range r.lookups {
		if value, ok := fn(key); ok {
			return value, true
		}
	}
	return "", false
}
