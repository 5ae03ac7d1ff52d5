package component

import (
	"errors"
	"reflect"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

// ComponentID indexes one component store in a world. Zero is never issued.
type ComponentID uint32

var nextComponentID atomic.Uint32

// ComponentKind is the typed key of a component store.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{
		id:   ComponentID(nextComponentID.Add(1)),
		name: reflect.TypeFor[T]().String(),
	}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

// Name is the Go type name, used in errors and debug output.
func (k ComponentKind[T]) Name() string {
	if k.name == "" {
		return "invalid"
	}
	return k.name
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// ComponentHandle is what packages declare as a package-level var, one per
// component type.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
