package codegen

import "tinygo.org/x/go-llvm"

// varEntry is what a scope binds a name to: its storage slot and the IR
// type of the value held there.
type varEntry struct {
	slot llvm.Value
	typ  llvm.Type
}

// scope is one link in the lexical scope chain. Lookup walks from the
// innermost scope outward, the same linked-chain shape as a symbol-table
// design with an enclosing-scope pointer.
type scope struct {
	vars   map[string]varEntry
	parent *scope
}

func newScope(parent *scope) *scope {
	return &scope{vars: make(map[string]varEntry), parent: parent}
}

func (s *scope) define(name string, slot llvm.Value, typ llvm.Type) {
	s.vars[name] = varEntry{slot: slot, typ: typ}
}

func (s *scope) lookup(name string) (varEntry, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if e, ok := cur.vars[name]; ok {
			return e, true
		}
	}
	return varEntry{}, false
}
