package proptree

import "github.com/goliatone/go-proptree/internal/hydrate"

// Hydrate decodes the project's backing dictionary into T via a JSON
// round-trip. Typed items remain the write path; hydration is a read-side
// convenience for handing settings to code that wants a struct.
func Hydrate[T any](p *Project) (T, error) {
	decoder := hydrate.NewDecoder[T]()
	return decoder.Decode(hydrate.Context{Filename: p.Filename()}, p.Dict())
}

// HydrateStrict is Hydrate with unknown dictionary keys rejected.
func HydrateStrict[T any](p *Project) (T, error) {
	decoder := hydrate.NewDecoder[T](hydrate.WithDisallowUnknownFields[T]())
	return decoder.Decode(hydrate.Context{Filename: p.Filename()}, p.Dict())
}
