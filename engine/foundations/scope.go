package foundations

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// Scope maps names to values. Names are kept in sorted order.
//
// Scopes are filled during set-up and read-only afterwards; they are not
// synchronized.
type Scope struct {
	bindings *treemap.Map
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{bindings: treemap.NewWithStringComparator()}
}

// Define binds a value to a name, replacing any previous binding.
func (s *Scope) Define(name string, v Value) {
	s.bindings.Put(name, v)
}

// DefineFunc binds a function to its name.
func (s *Scope) DefineFunc(f Func) {
	s.Define(f.Name(), FuncValue{Func: f})
}

// Get looks up a name.
func (s *Scope) Get(name string) (Value, bool) {
	v, ok := s.bindings.Get(name)
	if !ok {
		return nil, false
	}
	return v.(Value), true
}

// Names returns all bound names in sorted order.
func (s *Scope) Names() []string {
	keys := s.bindings.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Len returns the number of bindings.
func (s *Scope) Len() int {
	return s.bindings.Size()
}
