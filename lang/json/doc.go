/*
Package json is a JSON parser built from parser combinators.

It serves as an example of a complete grammar: a recursive structure of
objects and arrays, string escapes and numbers. Values are represented like
encoding/json does for interface values, with the exception of objects, which
keep the order of their members (see Object):

    v, err := json.Parse(`{"b": [1, 2.5e3], "a": null}`)
    obj := v.(*json.Object)
    obj.Keys()        // [b a]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package json

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcomb.json'.
func tracer() tracing.Trace {
	return tracing.Select("pcomb.json")
}
