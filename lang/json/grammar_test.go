package json

import (
	stdjson "encoding/json"
	"os"
	"reflect"
	"testing"

	"github.com/npillmayer/pcomb/stream"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func compareWithStdlib(t *testing.T, doc string) {
	t.Helper()
	var expected any
	if err := stdjson.Unmarshal([]byte(doc), &expected); err != nil {
		t.Fatalf("test document is not valid JSON: %v", err)
	}
	v, err := Parse(doc)
	if err != nil {
		t.Errorf("cannot parse %q:\n%v", doc, err)
		return
	}
	if !reflect.DeepEqual(Plain(v), expected) {
		t.Errorf("%q: expected %#v, have %#v", doc, expected, Plain(v))
	}
}

func TestParseLikeStdlib(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.json")
	defer teardown()
	//
	docs := []string{
		`true`, `false`, `null`, `0`, `-0`, `42`, `-12.5`, `1e3`, `-2.5E-3`, `6.02214076e+23`,
		`0.1`, `123456789012345678901234567890`,
		`""`, `"hello"`, `"tab\there"`, `"quote \" backslash \\ slash \/"`,
		`"\b\f\n\r\t"`, `"\u00e9\u4e2d\u0041"`, `"\ud83d\ude00"`, `"\ud800x"`, `"\udc00"`,
		`"\ud800\u0041"`, `"äöü 💡"`, "\"a\xffb\"", "\"\xc3\"", "[\"\xed\xa0\x80 \\n\"]",
		`[]`, `[ ]`, `[1, "two", null, true, [3, [4]]]`,
		`{}`, `{ }`, `{"a": 1}`, `{"a": {"b": {"c": [1, 2, {"d": null}]}}}`,
		" \n\t{\r\n \"spaced\" : [ 1 , 2 ] , \"x\":\"y\" }\n ",
		`{"dup": 1, "dup": 2}`,
		`[{"k": -0.0}]`,
	}
	for _, doc := range docs {
		compareWithStdlib(t, doc)
	}
}

func TestParseManifest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.json")
	defer teardown()
	//
	data, err := os.ReadFile("testdata/manifest.json")
	if err != nil {
		t.Fatal(err)
	}
	compareWithStdlib(t, string(data))
	s, err := stream.Open("testdata/manifest.json")
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	v, err := ParseStream(s)
	if err != nil {
		t.Fatalf("cannot parse manifest from file stream:\n%v", err)
	}
	var expected any
	_ = stdjson.Unmarshal(data, &expected)
	if !reflect.DeepEqual(Plain(v), expected) {
		t.Errorf("file stream result differs from encoding/json")
	}
}

func TestObjectOrder(t *testing.T) {
	v, err := Parse(`{"z": 1, "a": [], "m": {"y": 2, "x": 3}, "z": "again"}`)
	if err != nil {
		t.Fatal(err)
	}
	obj := v.(*Object)
	if !reflect.DeepEqual(obj.Keys(), []string{"z", "a", "m"}) {
		t.Errorf("expected keys in input order, have %v", obj.Keys())
	}
	if z, _ := obj.Get("z"); z != "again" {
		t.Errorf("expected last duplicate to win, have %v", z)
	}
	m, ok := obj.Get("m")
	if !ok || !reflect.DeepEqual(m.(*Object).Keys(), []string{"y", "x"}) {
		t.Errorf("expected nested keys in input order, have %v", m)
	}
	if obj.Len() != 3 {
		t.Errorf("expected 3 members, have %d", obj.Len())
	}
	if _, ok := obj.Get("nope"); ok {
		t.Errorf("expected missing member")
	}
}

func TestParseFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.json")
	defer teardown()
	//
	docs := []string{
		``, ` `, `tru`, `nul`, `01`, `-`, `1.`, `.5`, `1e`, `+1`, `[1,]`, `[1 2]`, `{"a" 1}`,
		`{"a":1,}`, `{a: 1}`, `"unterminated`, "\"new\nline\"", `"\x"`, `"\u12"`, `[1] x`,
		`{"a": [}`, `1e400`,
	}
	for _, doc := range docs {
		if v, err := Parse(doc); err == nil {
			t.Errorf("%q: expected failure, have %v", doc, v)
		}
		var x any
		if stdjson.Unmarshal([]byte(doc), &x) == nil {
			t.Errorf("%q: test document is valid JSON", doc)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.json")
	defer teardown()
	//
	r := Grammar().RunString("[\n  1,\n  2 3\n]")
	if r.IsSuccess() {
		t.Fatalf("expected failure")
	}
	if pos := r.Position(); pos.Line != 3 || pos.Column != 5 {
		t.Errorf("expected failure at 3:5, have %s\n%s", pos, r.ErrorMessage())
	}
}
