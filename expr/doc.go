/*
Package expr builds parsers for expressions with operators of different
precedence and associativity.

An expression grammar is described by a term parser, which parses the operands
(numbers, variables, parenthesized expressions, …), and a table of precedence
levels, ordered from the tightest binding level to the loosest. Each level
groups operators of the same fixity:

    calc := expr.Expression(number,
        expr.Prefix(expr.Unary(sym("-"), neg, "negation")),
        expr.LeftAssoc(expr.Binary(sym("*"), mul, "multiplication"),
                       expr.Binary(sym("/"), div, "division")),
        expr.LeftAssoc(expr.Binary(sym("+"), add, "addition"),
                       expr.Binary(sym("-"), sub, "subtraction")),
    )

Operators of a level are tried in the order given. If lexemes overlap, e.g.
"+" and "++", the longer one has to be listed first (or guarded with
parsec.NotFollowedBy).

Prefix and postfix operators apply once per level. Binary operators are either
left associative, right associative or non-associative; chaining operators of a
non-associative level, as in "1 < 2 < 3", is a parse failure.

Expressions with nested parentheses refer to themselves; create them with
parsec.Recursive:

    e := parsec.Recursive[int]()
    term := parsec.Between(open, close, e).Or(number)
    e.Recurse(expr.Expression(term, levels...))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.expr'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.expr")
}
