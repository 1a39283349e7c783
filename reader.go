// File: propread/reader.go
package propread

import (
	"encoding"
	"fmt"
	"log/slog"
	"reflect"
	"unsafe"
)

// Reader binds properties resources onto tagged structs. Build one with
// NewBuilder, or use New for the common explicit-path case. A Reader is
// cheap and holds no state across Bind calls; the resource is resolved and
// loaded fresh on every call.
type Reader struct {
	path     string
	loader   Loader
	resolver *Resolver
	parsers  map[string]Parser
	logger   *slog.Logger
}

// New returns a Reader bound to an explicit resource path. The path takes
// precedence over any path the target type declares via Resourcer.
func New(path string) *Reader {
	return NewBuilder().WithFile(path).Build()
}

// Bind populates target's tagged fields from the configured resource.
// target must be a non-nil pointer to a struct.
//
// For each directive the raw value is the source value for its key, or the
// directive's default when the key is absent. A blank raw value (empty or
// whitespace-only) skips the field, leaving its pre-call value in place.
// Any failure stops the bind; fields written before the failing directive
// keep their new values.
func (r *Reader) Bind(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("bind target must be a non-nil struct pointer, got %T", target)
	}
	elem := rv.Elem()
	if elem.Kind() != reflect.Struct {
		return fmt.Errorf("bind target must point to a struct, got %T", target)
	}

	source, err := r.load(target)
	if err != nil {
		return err
	}

	directives, err := directivesFor(elem.Type())
	if err != nil {
		return err
	}

	for _, d := range directives {
		if err := r.bindField(elem, d, source); err != nil {
			return err
		}
	}

	r.logger.Debug("bound configuration", "type", elem.Type().String(), "directives", len(directives))
	return nil
}

// Load resolves, locates and parses the resource for target without
// binding anything. Useful together with Source.Decode.
func (r *Reader) Load(target any) (*Source, error) {
	return r.load(target)
}

func (r *Reader) load(target any) (*Source, error) {
	path := r.path
	if path == "" {
		if res, ok := target.(Resourcer); ok {
			path = res.Resource()
		}
	}
	if path == "" {
		return nil, ErrNoResource
	}

	resolved, err := r.resolver.Resolve(path)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("loading configuration resource", "path", resolved)
	data, err := r.loader.Load(resolved)
	if err != nil {
		return nil, err
	}

	return newSource(data, detectFormat(resolved))
}

func (r *Reader) bindField(structVal reflect.Value, d directive, source *Source) error {
	raw := source.GetDefault(d.key, d.defaultVal)
	if isBlank(raw) {
		return nil
	}

	field, err := settableField(structVal, d.index)
	if err != nil {
		return &WriteError{Field: d.name, Err: err}
	}

	// Deterministic selection: named parser, built-in by exact type,
	// self-decoding type, raw string passthrough.
	if d.parserName != "" {
		parser, ok := r.parsers[d.parserName]
		if !ok {
			return &ParserRefError{Name: d.parserName}
		}
		value, err := parser.Parse(raw)
		if err != nil {
			return &ParseError{Key: d.key, Type: d.typ, Err: err}
		}
		return writeField(field, d, value)
	}

	if parser, ok := builtinFor(d.typ); ok {
		value, err := parser.Parse(raw)
		if err != nil {
			return &ParseError{Key: d.key, Type: d.typ, Err: err}
		}
		return writeField(field, d, value)
	}

	if handled, err := unmarshalText(field, raw); handled {
		if err != nil {
			return &ParseError{Key: d.key, Type: d.typ, Err: err}
		}
		return nil
	}

	// No parser matched: pass the raw string through unchanged. For
	// non-string fields this surfaces as a WriteError.
	return writeField(field, d, raw)
}

// settableField returns a writable view of the field at index, crossing
// visibility restrictions for unexported fields.
func settableField(structVal reflect.Value, index int) (reflect.Value, error) {
	field := structVal.Field(index)
	if field.CanSet() {
		return field, nil
	}
	if !field.CanAddr() {
		return reflect.Value{}, fmt.Errorf("field of %s is not addressable", structVal.Type())
	}
	return reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem(), nil
}

var textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()

// unmarshalText decodes raw through the field type's TextUnmarshaler
// implementation when it has one. This is how enum-like types decode
// themselves without a registered parser.
func unmarshalText(field reflect.Value, raw string) (bool, error) {
	t := field.Type()

	if t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(textUnmarshalerType) {
		um := field.Addr().Interface().(encoding.TextUnmarshaler)
		return true, um.UnmarshalText([]byte(raw))
	}

	if t.Kind() == reflect.Pointer && t.Implements(textUnmarshalerType) {
		ptr := reflect.New(t.Elem())
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(raw)); err != nil {
			return true, err
		}
		field.Set(ptr)
		return true, nil
	}

	return false, nil
}

// writeField assigns a parsed value into its field. The value's runtime
// type must match the field's declared type; the only conversion applied
// is string text onto named string types.
func writeField(field reflect.Value, d directive, value any) error {
	rv := reflect.ValueOf(value)
	switch {
	case !rv.IsValid():
		return &WriteError{Field: d.name, Err: fmt.Errorf("parser produced no value")}
	case rv.Type().AssignableTo(field.Type()):
		field.Set(rv)
	case rv.Kind() == reflect.String && field.Kind() == reflect.String:
		field.Set(rv.Convert(field.Type()))
	default:
		return &WriteError{Field: d.name, Err: fmt.Errorf("cannot assign %s to field of type %s", rv.Type(), field.Type())}
	}
	return nil
}
