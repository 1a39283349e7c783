// File: propread/decode.go
package propread

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Decode unmarshals the whole source into target using weakly-typed
// conversion. Dotted keys are rebuilt into a nested document, so target is
// usually a nested struct with per-level `property` tags, or a map. This
// is the convenience surface for structs that carry no binding directives;
// it applies none of the directive semantics (defaults, named parsers,
// blank-skip).
func (s *Source) Decode(target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer, got %T", target)
	}

	nested := make(map[string]any)
	for _, key := range s.keys {
		setNestedValue(nested, key, s.values[key])
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          tagProperty,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(nested); err != nil {
		return fmt.Errorf("failed to decode source: %w", err)
	}

	return nil
}
