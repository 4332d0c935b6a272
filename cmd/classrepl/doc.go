/*
Command classrepl provides an interactive command line tool for experiments
with class lists. It keeps a current class list, which is either immutable
or mutable, and applies commands to it:

    classes> new btn btn-primary
    classes> with active btn
    classes> without btn-primary
    classes> has active

Enter "help" for a list of commands. Each command prints the resulting list
and whether the operation created a new list or modified the current one.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'classes.repl'
func tracer() tracing.Trace {
	return tracing.Select("classes.repl")
}
