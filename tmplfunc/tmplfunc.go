/*
Package tmplfunc makes class lists available in Go templates.

It provides a function map with a single function "classes", which is bound to
classes.From. Templates may call methods of the resulting class list before
it gets rendered:

    {{ classes "btn" .Extra }}
    {{ ((classes "x y z").With "a").Without "y" }}     → x z a
    {{ if (classes .Cls).Has "active" }}…{{ end }}

Both text/template and html/template are supported.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tmplfunc

import (
	htmltemplate "html/template"
	"text/template"

	"github.com/npillmayer/classes"
)

// FuncName is the name of the template function.
const FuncName = "classes"

// Funcs returns a function map containing the template function "classes".
// The result is assignable to template.FuncMap of both text/template and
// html/template.
func Funcs() map[string]interface{} {
	return map[string]interface{}{
		FuncName: classes.From,
	}
}

// Install adds the template function "classes" to t.
// Returns t (for chaining).
func Install(t *template.Template) *template.Template {
	return t.Funcs(Funcs())
}

// InstallHTML adds the template function "classes" to an HTML template.
// Returns t (for chaining).
func InstallHTML(t *htmltemplate.Template) *htmltemplate.Template {
	return t.Funcs(Funcs())
}
