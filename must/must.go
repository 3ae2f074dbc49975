// Package must helps you initialise values that cannot fail at runtime,
// such as fixtures parsed from literals.
//
// Example:
//
//	var fixture = must.Get(uuid.Parse("550e8400-e29b-41d4-a716-446655440000"))
//	var logger = must.Get(config.Build())
package must

// Get returns v, and panics if err is non-nil.
func Get[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
