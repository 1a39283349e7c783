// File: propread/builder.go
package propread

import (
	"io/fs"
	"log/slog"
)

// Builder provides a fluent interface for assembling a Reader.
type Builder struct {
	reader      *Reader
	searchPaths []string
}

// NewBuilder creates a new Reader builder with the default loader (plain
// filesystem access) and the default placeholder resolver (process
// property store, then environment).
func NewBuilder() *Builder {
	return &Builder{
		reader: &Reader{
			resolver: NewResolver(),
			parsers:  make(map[string]Parser),
			logger:   slog.Default(),
		},
	}
}

// WithFile sets an explicit resource path, taking precedence over any path
// the bind target declares via Resourcer. The path may contain ${NAME}
// placeholder tokens.
func (b *Builder) WithFile(path string) *Builder {
	b.reader.path = path
	return b
}

// WithSearchPaths appends directories the default loader tries, in order,
// before treating the resource name as a path of its own. Ignored when a
// custom loader is set.
func (b *Builder) WithSearchPaths(dirs ...string) *Builder {
	b.searchPaths = append(b.searchPaths, dirs...)
	return b
}

// WithFS loads resources from fsys instead of the filesystem, typically an
// embed.FS bundling configuration into the binary.
func (b *Builder) WithFS(fsys fs.FS) *Builder {
	b.reader.loader = FSLoader{FS: fsys}
	return b
}

// WithLoader sets a custom resource loader.
func (b *Builder) WithLoader(l Loader) *Builder {
	b.reader.loader = l
	return b
}

// WithResolver sets a custom placeholder resolver.
func (b *Builder) WithResolver(r *Resolver) *Builder {
	b.reader.resolver = r
	return b
}

// WithLookups replaces the placeholder lookup sources, consulted in order.
func (b *Builder) WithLookups(lookups ...Lookup) *Builder {
	b.reader.resolver = NewResolver(lookups...)
	return b
}

// WithParser registers a named parser that parser tags can reference.
// Registered parsers belong to this Reader only; nothing is installed
// process-wide.
func (b *Builder) WithParser(name string, p Parser) *Builder {
	b.reader.parsers[name] = p
	return b
}

// WithLogger sets the logger used for debug-level tracing.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	if logger != nil {
		b.reader.logger = logger
	}
	return b
}

// Build creates the Reader with all specified options.
func (b *Builder) Build() *Reader {
	r := b.reader
	if r.loader == nil {
		r.loader = FileLoader{Paths: b.searchPaths}
	}
	return r
}
