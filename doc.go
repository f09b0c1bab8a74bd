/*
Package pcomb is a parser combinator toolbox.

PComb lets clients assemble parsers for arbitrary text formats from small,
composable building blocks, without writing a hand-rolled recursive-descent
parser. Combinators parse directly from characters; there is no separate
lexing phase. Package structure is as follows:

■ stream: Package stream implements immutable input streams (string- and
file-backed) and a transactional cursor.

■ parsec: Package parsec implements parse results, the parser type and the
combinator algebra, together with primitive and structural combinators.

■ expr: Package expr builds expression parsers from a term parser and a table
of operator precedence levels.

■ lang/json: Package json is a JSON parser, built from the combinators.

■ cmd/pcrepl: Command pcrepl is a playground with a calculator and a JSON viewer.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pcomb
