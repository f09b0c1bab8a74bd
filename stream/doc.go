/*
Package stream implements input streams for parser combinators.

Streams handed to parsers are immutable values: consuming input returns a new
stream and leaves the original untouched. Backtracking therefore is as easy as
holding on to an earlier stream value. Two variants are provided: StringStream
for in-memory input and FileStream for input read from a file.

For clients which prefer a single mutable read position, type Cursor offers
nested transactions (Begin, Commit, Rollback). A cursor never is a Stream
itself; it hands out immutable snapshots and may be moved forward to a stream
derived from one of them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package stream

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.stream'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.stream")
}
