// File: propread/directive.go
package propread

import (
	"fmt"
	"reflect"
)

const (
	tagProperty = "property"
	tagDefault  = "default"
	tagParser   = "parser"
)

// Resourcer declares the configuration resource a struct type binds to.
// The returned path may contain ${NAME} placeholder tokens. An explicit
// path given at Reader construction takes precedence over it.
type Resourcer interface {
	Resource() string
}

// directive is the per-field binding declaration read from struct tags.
type directive struct {
	index      int          // field index within the struct
	name       string       // field name, for error context
	typ        reflect.Type // declared field type, drives parser selection
	key        string       // source lookup key
	defaultVal string       // empty means no default
	parserName string       // optional named parser reference
}

// directivesFor lists the binding directives declared on t's directly
// declared fields, in declaration order. Fields without a property tag and
// fields tagged `property:"-"` are skipped. Tagged unexported fields are
// included; writing them is a deliberate encapsulation crossing.
func directivesFor(t reflect.Type) ([]directive, error) {
	var directives []directive

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		key, ok := field.Tag.Lookup(tagProperty)
		if !ok || key == "-" {
			continue
		}
		if key == "" {
			return nil, fmt.Errorf("field %s.%s declares an empty property key", t.Name(), field.Name)
		}

		directives = append(directives, directive{
			index:      i,
			name:       field.Name,
			typ:        field.Type,
			key:        key,
			defaultVal: field.Tag.Get(tagDefault),
			parserName: field.Tag.Get(tagParser),
		})
	}

	return directives, nil
}
