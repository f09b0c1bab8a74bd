package json

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Object is a JSON object. Members are kept in the order they appear in the input.
// For duplicate keys the last value wins, while the key keeps the position of its
// first occurence.
type Object struct {
	members *linkedhashmap.Map
}

func newObject() *Object {
	return &Object{members: linkedhashmap.New()}
}

func (o *Object) put(key string, value any) {
	o.members.Put(key, value)
}

// Get returns the value of member key.
func (o *Object) Get(key string) (any, bool) {
	return o.members.Get(key)
}

// Len returns the number of members of o.
func (o *Object) Len() int {
	return o.members.Size()
}

// Keys returns the member names of o in input order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.members.Size())
	o.Each(func(key string, _ any) {
		keys = append(keys, key)
	})
	return keys
}

// Each calls f for every member of o in input order.
func (o *Object) Each(f func(key string, value any)) {
	it := o.members.Iterator()
	for it.Next() {
		f(it.Key().(string), it.Value())
	}
}

func (o *Object) String() string {
	var b strings.Builder
	b.WriteString("{")
	o.Each(func(key string, value any) {
		if b.Len() > 1 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%q: %v", key, value)
	})
	b.WriteString("}")
	return b.String()
}

// Plain converts a value produced by Parse into the representation of
// encoding/json: objects become map[string]any.
func Plain(v any) any {
	switch x := v.(type) {
	case *Object:
		m := make(map[string]any, x.Len())
		x.Each(func(key string, value any) {
			m[key] = Plain(value)
		})
		return m
	case []any:
		a := make([]any, len(x))
		for i, e := range x {
			a[i] = Plain(e)
		}
		return a
	}
	return v
}
