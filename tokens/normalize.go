package tokens

import (
	"iter"
	"reflect"
)

// container is the value-interface of gods containers (lists, sets, …).
type container interface {
	Values() []interface{}
}

// Normalizer converts raw input into a token set. Create one with
// NewNormalizer, or use the package-level function Normalize, which uses
// a normalizer with default options. The zero value splits with
// WhitespaceSplitter.
type Normalizer struct {
	splitter Splitter
}

// Option configures a normalizer.
type Option func(n *Normalizer)

// WithSplitter sets the splitter to break strings into token fragments.
// A nil splitter selects WhitespaceSplitter.
func WithSplitter(s Splitter) Option {
	return func(n *Normalizer) {
		if s == nil {
			s = WhitespaceSplitter
		}
		n.splitter = s
	}
}

// NewNormalizer creates a normalizer. Without options, strings are split
// with WhitespaceSplitter.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{splitter: WhitespaceSplitter}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var defaultNormalizer = NewNormalizer()

// Normalize flattens inputs into an ordered set of tokens, using the default
// normalizer. See Normalizer.Normalize.
func Normalize(inputs ...interface{}) *Set {
	return defaultNormalizer.Normalize(inputs...)
}

// Normalize flattens inputs into an ordered set of tokens.
//
// Inputs may be strings, slices or arrays (of any element type, nested to any
// depth), token sources, gods containers and iter.Seq[string] sequences. Strings
// are split into fragments, fragments are trimmed and dropped if empty.
// Any other input (nil, booleans, numbers, maps, structs, functions, …) is
// ignored.
//
// Each distinct token appears exactly once in the result, at the position of
// its first occurrence. Normalize never fails and never modifies its input.
// Cyclic input, e.g. a slice containing itself, is flattened once; the inner
// occurrence is ignored.
func (n *Normalizer) Normalize(inputs ...interface{}) *Set {
	S := NewSet()
	n.collect(S, inputs, visits{})
	tracer().Debugf("normalized %d input(s) to [%s]", len(inputs), S)
	return S
}

func (n *Normalizer) collect(S *Set, inputs []interface{}, active visits) {
	for _, input := range inputs {
		n.add(S, input, active)
	}
}

func (n *Normalizer) add(S *Set, input interface{}, active visits) {
	if isNil(input) {
		return
	}
	switch in := input.(type) {
	case string:
		n.addString(S, in)
	case []string:
		for _, s := range in {
			n.addString(S, s)
		}
	case []interface{}:
		active.descend(reflect.ValueOf(in), func() {
			n.collect(S, in, active)
		})
	case Source:
		for _, s := range in.Values() {
			n.addString(S, s)
		}
	case container:
		active.descend(reflect.ValueOf(in), func() {
			n.collect(S, in.Values(), active)
		})
	case iter.Seq[string]:
		for s := range in {
			n.addString(S, s)
		}
	case func(func(string) bool):
		for s := range in {
			n.addString(S, s)
		}
	default:
		n.addReflected(S, reflect.ValueOf(input), active)
	}
}

func (n *Normalizer) addString(S *Set, s string) {
	splitter := n.splitter
	if splitter == nil {
		splitter = WhitespaceSplitter
	}
	for _, fragment := range splitter.Split(s) {
		S.Add(Trim(fragment))
	}
}

// addReflected handles strings of named string types and slices/arrays
// of arbitrary element types. Everything else is dropped.
func (n *Normalizer) addReflected(S *Set, v reflect.Value, active visits) {
	switch v.Kind() {
	case reflect.String:
		n.addString(S, v.String())
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			tracer().Debugf("ignoring byte sequence of type %s", v.Type())
			return
		}
		active.descend(v, func() {
			for i := 0; i < v.Len(); i++ {
				n.add(S, v.Index(i).Interface(), active)
			}
		})
	default:
		tracer().Debugf("ignoring input of type %s", v.Type())
	}
}

// isNil is true for untyped nil and for nil values of pointer-like types.
func isNil(input interface{}) bool {
	if input == nil {
		return true
	}
	v := reflect.ValueOf(input)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// visit identifies a slice (by data pointer and length) or a pointer-shaped
// container (length -1) while its elements are being flattened.
type visit struct {
	ptr uintptr
	len int
}

// visits holds the slices and containers on the current flattening path.
type visits map[visit]bool

// descend calls f, unless v is already on the flattening path.
// Arrays and other values without identity are always descended into.
func (active visits) descend(v reflect.Value, f func()) {
	var key visit
	switch v.Kind() {
	case reflect.Slice:
		key = visit{ptr: v.Pointer(), len: v.Len()}
	case reflect.Ptr, reflect.Map:
		key = visit{ptr: v.Pointer(), len: -1}
	default:
		f()
		return
	}
	if active[key] {
		tracer().Debugf("ignoring cyclic input of type %s", v.Type())
		return
	}
	active[key] = true
	defer delete(active, key)
	f()
}
