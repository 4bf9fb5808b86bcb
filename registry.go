package pagingview

import (
	"errors"
	"fmt"
)

// DefaultPageIdentifier is the reserved reuse identifier used when pages or
// factories are registered without one.
const DefaultPageIdentifier = "pagingview.default"

// ErrUnregisteredIdentifier reports a page request through an identifier no
// factory was registered for.
var ErrUnregisteredIdentifier = errors.New("no page factory registered for identifier")

// pageRegistry maps reuse identifiers to page factories.
type pageRegistry struct {
	factories map[string]PageFactory
}

func newPageRegistry() *pageRegistry {
	return &pageRegistry{factories: make(map[string]PageFactory)}
}

// register files factory under id, replacing any earlier registration for
// the same identifier.
func (r *pageRegistry) register(id string, factory PageFactory) {
	if id == "" {
		id = DefaultPageIdentifier
	}
	r.factories[id] = factory
}

// instantiate builds a fresh page for id.
func (r *pageRegistry) instantiate(id string) (Page, error) {
	factory, ok := r.factories[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnregisteredIdentifier, id)
	}
	return factory(), nil
}
