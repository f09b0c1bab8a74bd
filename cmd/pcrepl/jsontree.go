package main

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/pcomb/lang/json"
	"github.com/npillmayer/pcomb/stream"
	"github.com/pterm/pterm"
)

// showJSON parses a JSON file and prints it as a tree.
func showJSON(path string) error {
	s, err := stream.Open(path)
	if err != nil {
		return err
	}
	defer s.Close()
	v, err := json.ParseStream(s)
	if err != nil {
		pterm.Error.Println("\n" + err.Error())
		return fmt.Errorf("cannot parse %s", path)
	}
	pterm.Println(path)
	root := pterm.NewTreeFromLeveledList(leveledValue(v, "", pterm.LeveledList{}, 0))
	pterm.DefaultTree.WithRoot(root).Render()
	return nil
}

// leveledValue appends a JSON value and its children to a leveled list.
// Children of objects and arrays go one level deeper than their parent.
func leveledValue(v any, label string, ll pterm.LeveledList, level int) pterm.LeveledList {
	item := func(text string) pterm.LeveledList {
		if label != "" {
			text = label + ": " + text
		}
		return append(ll, pterm.LeveledListItem{Level: level, Text: text})
	}
	switch x := v.(type) {
	case *json.Object:
		ll = item(fmt.Sprintf("{%d}", x.Len()))
		x.Each(func(key string, value any) {
			ll = leveledValue(value, strconv.Quote(key), ll, level+1)
		})
		return ll
	case []any:
		ll = item(fmt.Sprintf("[%d]", len(x)))
		for i, e := range x {
			ll = leveledValue(e, fmt.Sprintf("[%d]", i), ll, level+1)
		}
		return ll
	case string:
		return item(strconv.Quote(x))
	case nil:
		return item("null")
	case float64:
		return item(format(x))
	}
	return item(fmt.Sprintf("%v", v))
}
