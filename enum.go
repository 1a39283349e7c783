// File: propread/enum.go
package propread

import "strings"

// Enum resolves raw property text against a fixed set of named constants,
// ignoring case. It implements Parser and can be registered on a Reader or
// referenced from a parser tag.
type Enum[T any] struct {
	values map[string]T // lower-cased name -> constant
	def    *T           // returned on blank input when set
}

// NewEnum builds an Enum from a name-to-constant table. Names are matched
// case-insensitively.
func NewEnum[T any](values map[string]T) *Enum[T] {
	e := &Enum[T]{values: make(map[string]T, len(values))}
	for name, v := range values {
		e.values[strings.ToLower(name)] = v
	}
	return e
}

// WithDefault returns a copy of the enum that yields def on blank input
// instead of failing. The default belongs to the returned parser, not to
// the binding engine.
func (e *Enum[T]) WithDefault(def T) *Enum[T] {
	return &Enum[T]{values: e.values, def: &def}
}

// ParseValue resolves raw against the declared constants. Input that
// matches no constant fails with a *UnknownValueError.
func (e *Enum[T]) ParseValue(raw string) (T, error) {
	var zero T
	if isBlank(raw) {
		if e.def != nil {
			return *e.def, nil
		}
		return zero, &UnknownValueError{Value: raw}
	}
	if v, ok := e.values[strings.ToLower(raw)]; ok {
		return v, nil
	}
	return zero, &UnknownValueError{Value: raw}
}

// Parse implements Parser.
func (e *Enum[T]) Parse(raw string) (any, error) {
	v, err := e.ParseValue(raw)
	if err != nil {
		return nil, err
	}
	return v, nil
}
