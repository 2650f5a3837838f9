package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of a symbol grid.
type Size struct {
	W int
	H int
}

// Generator is the contract every terrain preset implements. Cells exposes
// the finest level of detail as row-major symbol codes.
type Generator interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
	Depth() int
}

// Factory constructs a Generator using an optional configuration map.
type Factory func(cfg map[string]string) Generator

var generators = map[string]Factory{}

// Register adds a generator factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	generators[name] = f
}

// Generators exposes the registry of available generator factories.
func Generators() map[string]Factory {
	return generators
}

// Names lists the registered generators in sorted order.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (have %v)", name, Names())
	}
	return f, nil
}
