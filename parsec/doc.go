/*
Package parsec implements parser combinators.

A Parser is a function from an input stream to a parse result. Results are
either a success, carrying an output value and the remaining stream, or a
failure, carrying a label of what was expected and the stream at the point of
failure. Failures are values: no combinator panics on malformed input.

Parsers are composed from primitives (Char, String, Satisfy, TakeWhile, …) by
combinators (Map, Bind, Or, Many, SepBy, Between, …):

    digits := parsec.TakeWhile1(parsec.IsDigit).Label("digits")
    list   := parsec.Between(parsec.Char('['), parsec.Char(']'),
                  parsec.SepBy(parsec.Char(','), digits))
    out, err := list.ThenEOF().TryParse("[1,22,333]")   // []string{"1", "22", "333"}

Streams are immutable (see package stream), so alternatives backtrack
simply by re-running on the original stream value.

Recursive Grammars

Grammars often refer to themselves. As Go evaluates eagerly, a self-referential
parser has to be created in two phases: Recursive creates a placeholder, which
may be used in other combinators right away, and Recurse installs the actual
parser later. A placeholder panics if it is run before Recurse has been called.

    value := parsec.Recursive[any]()
    array := parsec.Between(open, close, parsec.SepBy(comma, value))
    value.Recurse(parsec.Choice(number, parsec.Map(array, toAny)))

Loops

Many, Some and the SepBy family stop iterating if their inner parser succeeds
without consuming input, as such a loop would never terminate. The incident is
traced as an error. Setting configuration flag panic-on-empty-loop makes these
combinators panic instead, which helps to find the offending grammar rule.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parsec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.parsec'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.parsec")
}
