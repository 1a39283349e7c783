// File: propread/parser.go
package propread

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Parser converts the raw text of one property into a typed value.
// Implementations must be deterministic for a given input and are reused
// across bind calls, so they should be stateless.
type Parser interface {
	Parse(raw string) (any, error)
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(raw string) (any, error)

// Parse implements Parser.
func (f ParserFunc) Parse(raw string) (any, error) { return f(raw) }

// Formatter is the optional inverse of a Parser. All built-in parsers
// implement it; formatting a parsed value reproduces its canonical text.
type Formatter interface {
	Format(v any) (string, error)
}

// builtin pairs a conversion with its inverse.
type builtin struct {
	parse  func(string) (any, error)
	format func(any) (string, error)
}

func (b builtin) Parse(raw string) (any, error) { return b.parse(raw) }
func (b builtin) Format(v any) (string, error)  { return b.format(v) }

// pointerTo wraps a builtin so that the parsed value is returned behind a
// pointer. Plain and pointer variants share the same conversion.
type pointerTo struct {
	elem reflect.Type
	b    builtin
}

func (p pointerTo) Parse(raw string) (any, error) {
	v, err := p.b.parse(raw)
	if err != nil {
		return nil, err
	}
	ptr := reflect.New(p.elem)
	ptr.Elem().Set(reflect.ValueOf(v))
	return ptr.Interface(), nil
}

func (p pointerTo) Format(v any) (string, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", fmt.Errorf("cannot format nil %s", rv.Type())
		}
		rv = rv.Elem()
	}
	return p.b.format(rv.Interface())
}

// builtins maps exact target types to their conversion strategy. The table
// is populated once at package init and read-only afterward; lookups from
// concurrent Bind calls need no locking. There is no coercion between
// related types: an int32 field never matches the int entry.
var builtins = make(map[reflect.Type]Parser)

func init() {
	registerBuiltin[int](builtin{
		parse:  parseAs(strconv.Atoi),
		format: formatAs(strconv.Itoa),
	})
	registerBuiltin[int32](builtin{
		parse: parseAs(func(raw string) (int32, error) {
			v, err := strconv.ParseInt(raw, 10, 32)
			return int32(v), err
		}),
		format: formatAs(func(v int32) string { return strconv.FormatInt(int64(v), 10) }),
	})
	registerBuiltin[int64](builtin{
		parse: parseAs(func(raw string) (int64, error) {
			return strconv.ParseInt(raw, 10, 64)
		}),
		format: formatAs(func(v int64) string { return strconv.FormatInt(v, 10) }),
	})
	registerBuiltin[float32](builtin{
		parse: parseAs(func(raw string) (float32, error) {
			v, err := strconv.ParseFloat(raw, 32)
			return float32(v), err
		}),
		format: formatAs(func(v float32) string {
			return strconv.FormatFloat(float64(v), 'g', -1, 32)
		}),
	})
	registerBuiltin[float64](builtin{
		parse: parseAs(func(raw string) (float64, error) {
			return strconv.ParseFloat(raw, 64)
		}),
		format: formatAs(func(v float64) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		}),
	})
	registerBuiltin[bool](builtin{
		parse:  parseAs(strconv.ParseBool),
		format: formatAs(strconv.FormatBool),
	})
	registerBuiltin[time.Duration](builtin{
		parse:  parseAs(time.ParseDuration),
		format: formatAs(time.Duration.String),
	})
}

// registerBuiltin installs a conversion for T and its pointer variant.
func registerBuiltin[T any](b builtin) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	builtins[t] = b
	builtins[reflect.PointerTo(t)] = pointerTo{elem: t, b: b}
}

// parseAs erases the result type of a typed conversion function.
func parseAs[T any](fn func(string) (T, error)) func(string) (any, error) {
	return func(raw string) (any, error) {
		v, err := fn(raw)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// formatAs guards a typed formatting function behind a type assertion.
func formatAs[T any](fn func(T) string) func(any) (string, error) {
	return func(v any) (string, error) {
		t, ok := v.(T)
		if !ok {
			return "", fmt.Errorf("expected %T, got %T", t, v)
		}
		return fn(t), nil
	}
}

// builtinFor returns the built-in parser for an exact target type.
func builtinFor(t reflect.Type) (Parser, bool) {
	p, ok := builtins[t]
	return p, ok
}
