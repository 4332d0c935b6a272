/*
Package tokens implements normalization of class-token input and the ordered
token set which backs the collections of package classes.

Normalization accepts arbitrarily nested, mixed-type input and produces a flat,
deduplicated sequence of tokens. Strings are split at runs of whitespace,
slices, arrays and token sources are flattened recursively, and everything else
is silently dropped:

    S := tokens.Normalize("a b", []interface{}{"c", []string{"a", "d"}}, nil, 42)
    S.Values()   // => [a b c d]

Normalization never fails. The first occurrence of a token determines its
position, comparison is case-sensitive.

Set is an insertion-ordered set of strings. Unusually, the combining set
operations (Union, Difference) are destructive! Clients wanting to keep the
receiver untouched have to Copy() first.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tokens

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'classes.tokens'.
func tracer() tracing.Trace {
	return tracing.Select("classes.tokens")
}
