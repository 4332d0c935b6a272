/*
Package templclass adapts class lists to github.com/a-h/templ.

Class lists implement templ.CSSClass, so they may be used wherever templ
expects CSS classes. This package offers shortcuts for the common cases:

    <button class={ templclass.Class("btn", variant, extra) }>…</button>
    <div { templclass.Attributes("card", props.Classes)... }>…</div>

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package templclass

import (
	"github.com/a-h/templ"
	"github.com/npillmayer/classes"
)

var (
	_ templ.CSSClass = (*classes.Classes)(nil)
	_ templ.CSSClass = (*classes.MutableClasses)(nil)
)

// Class creates an immutable class list from inputs, see classes.From.
func Class(inputs ...interface{}) templ.CSSClass {
	return classes.From(inputs...)
}

// Attributes returns templ attributes with the rendered class list of inputs
// set as attribute "class". An empty class list results in empty attributes.
func Attributes(inputs ...interface{}) templ.Attributes {
	attrs := templ.Attributes{}
	if cls := classes.Join(inputs...); cls != "" {
		attrs["class"] = cls
	}
	return attrs
}
