package tokens

import (
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// Source is implemented by every type which is able to hand out an ordered
// list of tokens. Sources are flattened by the normalizer.
type Source interface {
	Values() []string
}

// Set is an ordered set of tokens. Iteration order is the order of first
// insertion. The zero value is an empty set, ready to use.
//
// Set is not safe for concurrent use.
type Set struct {
	hs *linkedhashset.Set
}

var _ Source = (*Set)(nil)

// NewSet creates a set from a list of tokens. The tokens are taken as they are,
// i.e. they are not normalized. Use Normalize for raw input.
func NewSet(toks ...string) *Set {
	S := &Set{hs: linkedhashset.New()}
	for _, t := range toks {
		S.hs.Add(t)
	}
	return S
}

func (S *Set) items() *linkedhashset.Set {
	if S.hs == nil {
		S.hs = linkedhashset.New()
	}
	return S.hs
}

// Add appends a token to the set, if not already contained. Empty tokens
// are ignored.
// Returns the set (for chaining).
func (S *Set) Add(t string) *Set {
	if t != "" {
		S.items().Add(t)
	}
	return S
}

// Contains checks membership of a token. Comparison is exact.
func (S *Set) Contains(t string) bool {
	if S == nil || S.hs == nil {
		return false
	}
	return S.hs.Contains(t)
}

// Size returns the number of tokens in S.
func (S *Set) Size() int {
	if S == nil || S.hs == nil {
		return 0
	}
	return S.hs.Size()
}

// Empty is a predicate for Size() == 0.
func (S *Set) Empty() bool {
	return S.Size() == 0
}

// Values returns the tokens of S in order. The returned slice is a fresh copy
// and may be modified by the caller.
func (S *Set) Values() []string {
	if S == nil || S.hs == nil {
		return []string{}
	}
	values := make([]string, 0, S.hs.Size())
	it := S.hs.Iterator()
	for it.Next() {
		values = append(values, it.Value().(string))
	}
	return values
}

// Copy returns a new set with the same tokens in the same order.
func (S *Set) Copy() *Set {
	return NewSet(S.Values()...)
}

// Union appends all tokens of other which are not yet contained in S,
// preserving their order. Destructive for S!
func (S *Set) Union(other *Set) *Set {
	for _, t := range other.Values() {
		S.Add(t)
	}
	return S
}

// Difference removes all tokens of other from S. Destructive for S!
func (S *Set) Difference(other *Set) *Set {
	if S.Empty() || other.Empty() {
		return S
	}
	for _, t := range other.Values() {
		S.hs.Remove(t)
	}
	return S
}

// Select returns a new set containing the tokens of S for which pred is true.
// pred is called for every token of a snapshot of S, in order, before the
// new set is returned.
func (S *Set) Select(pred func(string) bool) *Set {
	R := NewSet()
	for _, t := range S.Values() {
		if pred(t) {
			R.hs.Add(t)
		}
	}
	return R
}

// Clear removes all tokens from S.
func (S *Set) Clear() {
	if S != nil && S.hs != nil {
		S.hs.Clear()
	}
}

// Iterator returns an iterator over a snapshot of the tokens of S.
func (S *Set) Iterator() *Iterator {
	return &Iterator{values: S.Values()}
}

// String renders the tokens, separated by a single space.
func (S *Set) String() string {
	return strings.Join(S.Values(), " ")
}

// fingerprint is the structure hashed for Set.Fingerprint.
type fingerprint struct {
	Tokens []string
}

// Fingerprint returns a hash of the (ordered) content of S. Sets with equal
// tokens in equal order have equal fingerprints.
func (S *Set) Fingerprint() string {
	h, err := structhash.Hash(fingerprint{Tokens: S.Values()}, 1)
	if err != nil {
		tracer().Errorf("cannot hash token set: %v", err)
		return ""
	}
	return h
}

// --- Iterator --------------------------------------------------------------

// Iterator moves over a snapshot of the tokens of a set. Changes of the set
// after creation of the iterator are not visible to the iterator.
//
//     it := S.Iterator()
//     for it.Next() {
//         t := it.Token()
//         …
//     }
type Iterator struct {
	values []string
	pos    int
}

// Next moves the iterator to the next token. It returns false if there
// are no more tokens.
func (it *Iterator) Next() bool {
	if it.pos >= len(it.values) {
		return false
	}
	it.pos++
	return true
}

// Token returns the current token. Call Next before the first call to Token.
func (it *Iterator) Token() string {
	return it.values[it.pos-1]
}

// Index returns the position of the current token, starting at 0.
func (it *Iterator) Index() int {
	return it.pos - 1
}

// Reset moves the iterator to its initial state, i.e. before the first token.
func (it *Iterator) Reset() {
	it.pos = 0
}
