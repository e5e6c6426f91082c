package scope

import (
	"errors"
	"fmt"
)

var (
	SYMBOL_ALREADY_DEFINED_ON_SCOPE error = errors.New("symbol already defined on scope")
	SYMBOL_NOT_FOUND_ON_SCOPE       error = errors.New("symbol not found on scope")
)

// Scope is one level of a lexical scope chain. A parent is never modified
// through its children, so a chain may be shared once built.
type Scope[V any] struct {
	Parent *Scope[V]
	Nodes  map[string]V

	order []string
}

func New[V any](parent *Scope[V]) *Scope[V] {
	return &Scope[V]{Parent: parent, Nodes: map[string]V{}}
}

// Insert declares name on this level only. Shadowing a name of an outer
// level is allowed.
func (scope *Scope[V]) Insert(name string, element V) error {
	if _, ok := scope.Nodes[name]; ok {
		return fmt.Errorf("%w: %s", SYMBOL_ALREADY_DEFINED_ON_SCOPE, name)
	}
	scope.Nodes[name] = element
	scope.order = append(scope.order, name)
	return nil
}

func (scope *Scope[V]) Lookup(name string) (V, error) {
	if node, ok := scope.Nodes[name]; ok {
		return node, nil
	}
	if scope.Parent == nil {
		var empty V
		return empty, fmt.Errorf("%w: %s", SYMBOL_NOT_FOUND_ON_SCOPE, name)
	}
	return scope.Parent.Lookup(name)
}

// Declared lists the elements of this level in declaration order.
func (scope *Scope[V]) Declared() []V {
	elements := make([]V, 0, len(scope.order))
	for _, name := range scope.order {
		elements = append(elements, scope.Nodes[name])
	}
	return elements
}

func (scope Scope[V]) String() string {
	return fmt.Sprintf("Scope:\nParent: %v\nCurrent: %v\n", scope.Parent, scope.Nodes)
}
