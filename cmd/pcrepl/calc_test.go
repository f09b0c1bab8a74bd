package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/pcomb/lang/json"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pterm/pterm"
)

func TestCalc(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.repl")
	defer teardown()
	//
	calc := newCalc()
	inputs := []struct {
		input string
		value float64
	}{
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{" 2 ^ 3 ^ 2", 512},
		{"-2 ^ 2", 4},
		{"10 - 4 - 3", 3},
		{"7 % 4 + 1.5e1", 18},
		{"3! + 1", 7},
		{"1 + 1 = 2", 1},
		{"2 * 3 < 5", 0},
	}
	for _, c := range inputs {
		v, err := calc.Eval(c.input)
		if err != nil {
			t.Errorf("%q: unexpected error\n%v", c.input, err)
			continue
		}
		if v != c.value {
			t.Errorf("%q: expected %v, have %v", c.input, c.value, v)
		}
	}
	for _, input := range []string{"1 < 2 < 3", "1 +", "(1", "2 ** 3", ""} {
		if _, err := calc.Eval(input); err == nil {
			t.Errorf("%q: expected an error", input)
		}
	}
}

func TestCLI(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.repl")
	defer teardown()
	//
	cli := newCLI()
	cli.SetArgs([]string{"calc", "6", "*", "7"})
	if err := cli.Execute(); err != nil {
		t.Errorf("calc: unexpected error %v", err)
	}
	cli = newCLI()
	cli.SetArgs([]string{"calc", "6 *"})
	if err := cli.Execute(); err == nil {
		t.Errorf("calc: expected error for incomplete expression")
	}
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`{"a": [1, {"b": null}]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cli = newCLI()
	cli.SetArgs([]string{"json", path})
	if err := cli.Execute(); err != nil {
		t.Errorf("json: unexpected error %v", err)
	}
}

func TestLeveledValue(t *testing.T) {
	v, err := json.Parse(`{"name": "pcomb", "tags": ["a", 2, true], "none": null}`)
	if err != nil {
		t.Fatal(err)
	}
	ll := leveledValue(v, "", pterm.LeveledList{}, 0)
	expected := []pterm.LeveledListItem{
		{Level: 0, Text: "{3}"},
		{Level: 1, Text: `"name": "pcomb"`},
		{Level: 1, Text: `"tags": [3]`},
		{Level: 2, Text: `[0]: "a"`},
		{Level: 2, Text: `[1]: 2`},
		{Level: 2, Text: `[2]: true`},
		{Level: 1, Text: `"none": null`},
	}
	if len(ll) != len(expected) {
		t.Fatalf("expected %d items, have %d: %v", len(expected), len(ll), ll)
	}
	for i, item := range expected {
		if ll[i] != item {
			t.Errorf("item %d: expected %v, have %v", i, item, ll[i])
		}
	}
}
