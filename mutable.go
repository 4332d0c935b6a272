package classes

import (
	"github.com/npillmayer/classes/tokens"
)

// MutableClasses is a list of classes which is modified in place. Modifying
// operations return the receiver, allowing for chaining:
//
//     m := FromMutable("a b").With("c").Without("a")   // m is now "b c"
//
// The zero value is an empty list, ready to use. MutableClasses is not safe
// for concurrent use.
type MutableClasses struct {
	tokens *tokens.Set // owned exclusively, never shared with another list
}

var _ tokens.Source = (*MutableClasses)(nil)

// FromMutable creates a mutable class list from inputs. Inputs are normalized,
// see tokens.Normalize. A single *MutableClasses argument is copied, thus
// later changes to either list are not visible in the other one.
func FromMutable(inputs ...interface{}) *MutableClasses {
	if len(inputs) == 1 {
		if m, ok := inputs[0].(*MutableClasses); ok && m != nil {
			tracer().Debugf("copying mutable class list [%s]", m)
			return &MutableClasses{tokens: m.set().Copy()}
		}
	}
	return &MutableClasses{tokens: tokens.Normalize(inputs...)}
}

// set returns the token set, creating it if necessary. For a nil receiver it
// returns a fresh empty set, which is never stored.
func (m *MutableClasses) set() *tokens.Set {
	if m == nil {
		return tokens.NewSet()
	}
	if m.tokens == nil {
		m.tokens = tokens.NewSet()
	}
	return m.tokens
}

// With appends the classes of inputs not already contained in m.
//
// Modifying operations on a nil *MutableClasses do nothing and return nil.
func (m *MutableClasses) With(inputs ...interface{}) *MutableClasses {
	if m == nil {
		return m
	}
	m.set().Union(tokens.Normalize(inputs...))
	return m
}

// Without removes the classes of the normalized inputs from m.
func (m *MutableClasses) Without(inputs ...interface{}) *MutableClasses {
	if m == nil {
		return m
	}
	m.set().Difference(tokens.Normalize(inputs...))
	return m
}

// Filter keeps the classes of m for which pred returns true. pred is called
// for a snapshot of m, before m is changed. Panics of pred are not recovered
// and leave m unchanged.
func (m *MutableClasses) Filter(pred func(string) bool) *MutableClasses {
	if m == nil {
		return m
	}
	m.tokens = m.set().Select(pred)
	return m
}

// Clear removes all classes from m.
func (m *MutableClasses) Clear() *MutableClasses {
	if m == nil {
		return m
	}
	m.set().Clear()
	return m
}

// Has checks if class is contained in m. The check is case-sensitive.
func (m *MutableClasses) Has(class string) bool {
	return m.set().Contains(class)
}

// Count returns the number of classes in m.
func (m *MutableClasses) Count() int {
	return m.set().Size()
}

// Values returns the classes of m in order. The slice is owned by the caller.
func (m *MutableClasses) Values() []string {
	return m.set().Values()
}

// Iterator returns an iterator over a snapshot of the classes of m.
func (m *MutableClasses) Iterator() *tokens.Iterator {
	return m.set().Iterator()
}

// Each calls f for every class of m, in order. f may modify m; it will
// still see every class of m as it was when Each has been called.
func (m *MutableClasses) Each(f func(index int, class string)) {
	for i, class := range m.Values() {
		f(i, class)
	}
}

// Immutable returns an immutable copy of m.
func (m *MutableClasses) Immutable() *Classes {
	return &Classes{tokens: m.set().Copy()}
}

// String renders the classes of m, separated by a single space.
func (m *MutableClasses) String() string {
	return m.set().String()
}

// ClassName returns the same as String. It lets class lists act as
// CSS classes for templ components.
func (m *MutableClasses) ClassName() string {
	return m.String()
}
