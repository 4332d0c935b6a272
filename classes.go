package classes

import (
	"github.com/npillmayer/classes/tokens"
)

// Classes is an immutable list of classes. Operations which look like they
// modify the list return a new list instead.
//
// The zero value is an empty list. A nil *Classes behaves like an empty list
// for all read operations.
type Classes struct {
	tokens *tokens.Set // never modified after construction
}

var _ tokens.Source = (*Classes)(nil)

// From creates a class list from inputs. Inputs are normalized, see
// tokens.Normalize. A single *Classes argument is re-used without copying.
func From(inputs ...interface{}) *Classes {
	if len(inputs) == 1 {
		if c, ok := inputs[0].(*Classes); ok && c != nil {
			return &Classes{tokens: c.tokens}
		}
	}
	return &Classes{tokens: tokens.Normalize(inputs...)}
}

func (c *Classes) set() *tokens.Set {
	if c == nil || c.tokens == nil {
		return tokens.NewSet()
	}
	return c.tokens
}

// With returns a new class list containing the classes of c, followed by
// the classes of inputs not already contained in c.
func (c *Classes) With(inputs ...interface{}) *Classes {
	S := c.set().Copy().Union(tokens.Normalize(inputs...))
	return &Classes{tokens: S}
}

// Without returns a new class list containing the classes of c which are
// not contained in the normalized inputs.
func (c *Classes) Without(inputs ...interface{}) *Classes {
	S := c.set().Copy().Difference(tokens.Normalize(inputs...))
	return &Classes{tokens: S}
}

// Filter returns a new class list with the classes of c for which pred
// returns true. Panics of pred are not recovered.
func (c *Classes) Filter(pred func(string) bool) *Classes {
	return &Classes{tokens: c.set().Select(pred)}
}

// Clear returns a new, empty class list.
func (c *Classes) Clear() *Classes {
	return &Classes{tokens: tokens.NewSet()}
}

// Has checks if class is contained in c. The check is case-sensitive.
func (c *Classes) Has(class string) bool {
	return c.set().Contains(class)
}

// Count returns the number of classes in c.
func (c *Classes) Count() int {
	return c.set().Size()
}

// Values returns the classes of c in order. The slice is owned by the caller.
func (c *Classes) Values() []string {
	return c.set().Values()
}

// Iterator returns an iterator over the classes of c.
func (c *Classes) Iterator() *tokens.Iterator {
	return c.set().Iterator()
}

// Each calls f for every class of c, in order.
func (c *Classes) Each(f func(index int, class string)) {
	for i, class := range c.Values() {
		f(i, class)
	}
}

// Mutable returns a mutable copy of c.
func (c *Classes) Mutable() *MutableClasses {
	return &MutableClasses{tokens: c.set().Copy()}
}

// String renders the classes of c, separated by a single space.
func (c *Classes) String() string {
	return c.set().String()
}

// ClassName returns the same as String. It lets class lists act as
// CSS classes for templ components.
func (c *Classes) ClassName() string {
	return c.String()
}

// --- Free functions --------------------------------------------------------

// Join renders inputs as a string of classes. It is a shortcut for
//
//     From(inputs...).String()
//
func Join(inputs ...interface{}) string {
	return tokens.Normalize(inputs...).String()
}

// Equal returns true if a and b contain the same classes in the same order.
// Nil sources are treated as empty.
func Equal(a, b tokens.Source) bool {
	va, vb := values(a), values(b)
	if len(va) != len(vb) {
		return false
	}
	for i := range va {
		if va[i] != vb[i] {
			return false
		}
	}
	return true
}

// Fingerprint returns a hash of the ordered content of src. Equal sources have
// equal fingerprints, see tokens.Set.Fingerprint.
func Fingerprint(src tokens.Source) string {
	return tokens.NewSet(values(src)...).Fingerprint()
}

func values(src tokens.Source) []string {
	if src == nil {
		return nil
	}
	return tokens.Normalize(src).Values()
}
