/*
Command pcrepl is a playground for the parser combinators of pcomb.

It offers two commands:

    pcrepl calc [expression]     evaluate arithmetic expressions
    pcrepl json <file>           parse a JSON file and display it as a tree

Without an expression, calc starts an interactive session, where users may
enter expressions line by line. Parse errors are reported with the error
messages of package parsec, pointing at the offending column.

Tracing is switched on with flag --trace (Debug, Info or Error).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.repl'
func tracer() tracing.Trace {
	return tracing.Select("pcomb.repl")
}
