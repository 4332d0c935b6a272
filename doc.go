/*
Package classes helps to construct lists of CSS classes (or any other kind of
whitespace-separated identifiers).

A class list is an ordered set of tokens. Input may be given as strings,
slices of strings, nested slices or other class lists; everything else is
silently dropped. Duplicates are removed, the first occurrence of a token
determines its position:

    cls := classes.From("btn", []string{"btn-primary", "btn"}, nil, 42)
    fmt.Println(cls)  // btn btn-primary

Package structure is as follows:

■ classes: Types Classes (immutable) and MutableClasses, together with the free
function Join, which renders input directly to a string.

■ tokens: Package tokens implements normalization of input and the ordered token
set both class list types are built on.

■ tmplfunc, templclass: Adapters for Go templates and for a-h/templ.

Immutable and Mutable Class Lists

Classes and MutableClasses have the same set of operations. Operations of Classes
never change the receiver, but return a new class list:

    base := classes.From("card")
    active := base.With("card-active")   // base is still "card"

Operations of MutableClasses change the receiver and return it, for chaining:

    m := classes.FromMutable("a b c").With("d").Without("a")  // m is "b c d"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package classes

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'classes'.
func tracer() tracing.Trace {
	return tracing.Select("classes")
}
