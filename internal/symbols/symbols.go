// Package symbols defines the named entities produced by the binder.
package symbols

import "fmt"

type TypeSymbol struct {
	Name string
}

var (
	Bool   = &TypeSymbol{Name: "bool"}
	Int    = &TypeSymbol{Name: "int"}
	String = &TypeSymbol{Name: "string"}

	// Error is given to expressions that failed to bind. Operators never
	// report on operands of this type.
	Error = &TypeSymbol{Name: "?"}
)

func (typ *TypeSymbol) String() string { return typ.Name }

// VariableSymbol is compared by pointer: two declarations of the same name in
// different scopes are different variables.
type VariableSymbol struct {
	Name     string
	ReadOnly bool
	Type     *TypeSymbol
}

func NewVariable(name string, readOnly bool, typ *TypeSymbol) *VariableSymbol {
	return &VariableSymbol{Name: name, ReadOnly: readOnly, Type: typ}
}

func (variable *VariableSymbol) String() string {
	if variable.ReadOnly {
		return fmt.Sprintf("def %s %s", variable.Name, variable.Type)
	}
	return fmt.Sprintf("var %s %s", variable.Name, variable.Type)
}
