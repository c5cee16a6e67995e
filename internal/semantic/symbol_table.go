package semantic

import "github.com/minilang/minilangc/internal/types"

// Symbol represents a declared variable or parameter and the
// compile-time facts the analyzer accumulates about it. Borrow flags are
// monotonic: once set, a function-scoped borrow check never clears them,
// matching the local, flow-insensitive analysis this package performs.
type Symbol struct {
	Type            types.Type
	Name            string
	Mut             bool
	Initialized     bool
	BorrowedMut     bool
	BorrowedImmut   bool
}

// FuncSignature is the declared shape of a function: its parameter types
// (Mut per-parameter, matching how a `mut` parameter may be reassigned) and
// its return type (types.Unit when the function declares none).
type FuncSignature struct {
	Params     []types.Type
	ParamMut   []bool
	ParamNames []string
	ReturnType types.Type
}

// SymbolTable is a scope-stack symbol table: each scope holds its own
// symbols and chains to an outer scope for lookups, so inner declarations
// shadow outer ones without mutating them.
type SymbolTable struct {
	symbols map[string]*Symbol
	outer   *SymbolTable
}

// NewSymbolTable creates a table with no outer scope (the global scope).
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*Symbol)}
}

// NewEnclosedSymbolTable creates a scope nested inside outer.
func NewEnclosedSymbolTable(outer *SymbolTable) *SymbolTable {
	st := NewSymbolTable()
	st.outer = outer
	return st
}

// Define adds or replaces a symbol in the current scope.
func (st *SymbolTable) Define(sym *Symbol) {
	st.symbols[sym.Name] = sym
}

// Resolve looks up name in the current scope and, failing that, each outer
// scope in turn.
func (st *SymbolTable) Resolve(name string) (*Symbol, bool) {
	if sym, ok := st.symbols[name]; ok {
		return sym, true
	}
	if st.outer != nil {
		return st.outer.Resolve(name)
	}
	return nil, false
}
