// File: propread/errors.go
package propread

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNoResource is returned by Bind when no resource path was given at
	// construction time and the target type declares none.
	ErrNoResource = errors.New("no configuration resource specified")

	// ErrResourceNotFound is returned when the configured loader cannot
	// locate the resolved resource. It is wrapped with the path that failed.
	ErrResourceNotFound = errors.New("configuration resource not found")
)

// PlaceholderError reports a ${NAME} token with no value in any of the
// resolver's lookup sources. The whole bind fails before any load or write.
type PlaceholderError struct {
	Key  string // the unresolved placeholder name
	Text string // the original input text
}

func (e *PlaceholderError) Error() string {
	return fmt.Sprintf("no property or environment value for placeholder %q in %q", e.Key, e.Text)
}

// ParserRefError reports a directive whose parser tag names a parser that
// was never registered on the Reader.
type ParserRefError struct {
	Name string
}

func (e *ParserRefError) Error() string {
	return fmt.Sprintf("no parser registered under name %q", e.Name)
}

// UnknownValueError reports input that matches none of an enum's declared
// constants.
type UnknownValueError struct {
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("unknown value %q", e.Value)
}

// ParseError wraps a parser failure for a single directive.
type ParseError struct {
	Key  string       // the property key being parsed
	Type reflect.Type // the declared field type
	Err  error        // the underlying parser error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse property %q as %s: %v", e.Key, e.Type, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError wraps a failure writing a parsed value into its field, such as
// a runtime type that does not match the field's declared type.
type WriteError struct {
	Field string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write field %q: %v", e.Field, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
