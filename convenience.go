// File: propread/convenience.go
package propread

import "fmt"

// Bind populates target from the resource its type declares via Resourcer,
// using a default Reader. This is the one-call path for most callers.
func Bind(target any) error {
	return NewBuilder().Build().Bind(target)
}

// BindFile populates target from an explicit resource path, overriding any
// type-level declaration.
func BindFile(path string, target any) error {
	return New(path).Bind(target)
}

// MustBind is like Bind but panics on error. Intended for program startup
// where a broken configuration should stop the process.
func MustBind(target any) {
	if err := Bind(target); err != nil {
		panic(fmt.Sprintf("property binding failed: %v", err))
	}
}
