// File: propread/doc.go

// Package propread binds Java-style .properties resources onto Go structs
// using declarative field tags: each tagged field names the property key it
// reads, an optional default, and an optional named parser.
//
// Features:
//   - Properties-file grammar (key=value, key:value, # and ! comments)
//     plus TOML, JSON and YAML resources flattened to dotted keys
//   - Built-in conversions for int, int32, int64, float32, float64, bool
//     and time.Duration, with pointer variants
//   - Case-insensitive enum tables and custom parser plug-ins
//   - ${NAME} placeholder substitution in resource paths against the
//     process property store and environment variables
//   - Resource lookup across search paths or any fs.FS (embed.FS included)
//   - Weakly-typed whole-source decoding via mapstructure
//
// Quick Start:
//
//	type Config struct {
//	    Host    string        `property:"server.host" default:"localhost"`
//	    Port    int           `property:"server.port" default:"8080"`
//	    Timeout time.Duration `property:"server.timeout"`
//	}
//
//	func (Config) Resource() string { return "app-${ENV}.properties" }
//
//	var cfg Config
//	if err := propread.Bind(&cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// Binding stops at the first failing directive, and fields written
// before the failure keep their new values. Fields whose resolved value
// is blank are skipped and keep their pre-call values.
//
// Thread Safety:
// A Reader performs no internal locking. The built-in parser table is
// populated once at package init and is read-only afterward, so
// concurrent Bind calls on different targets are safe. Concurrent Bind
// calls mutating the same target are not coordinated.
package propread
