package parsec

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestManySome(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.parsec")
	defer teardown()
	//
	r := Many(Char('a')).RunString("bbb")
	if r.IsFail() || len(r.Output()) != 0 || rest(r.Remainder()) != "bbb" {
		t.Errorf("expected empty success without consumption, have %v", r)
	}
	if r.Output() == nil {
		t.Errorf("expected empty slice, not nil")
	}
	if r = Some(Char('a')).RunString("bbb"); r.IsSuccess() {
		t.Errorf("expected some to fail, have %v", r)
	}
	r = Some(Char('a')).RunString("aaab")
	if string(r.Output()) != "aaa" || rest(r.Remainder()) != "b" {
		t.Errorf("expected 'aaa' with rest 'b', have %v", r)
	}
	// a failing iteration which consumed input is undone
	ab := Concat(AsString(Char('a')), AsString(Char('b')))
	rs := Many(ab).RunString("ababac")
	if len(rs.Output()) != 2 || rest(rs.Remainder()) != "ac" {
		t.Errorf("expected 2 repetitions with rest 'ac', have %v", rs)
	}
}

func TestManyStopsOnEmptyLoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.parsec")
	defer teardown()
	//
	r := Many(TakeWhile(IsDigit)).RunString("12ab")
	if r.IsFail() || !reflect.DeepEqual(r.Output(), []string{"12"}) || rest(r.Remainder()) != "ab" {
		t.Errorf("expected loop to stop after '12', have %v", r)
	}
	sep := SepBy(Char(','), Optional(Digit())).RunString(",,,x")
	if sep.IsFail() || len(sep.Output()) != 4 || rest(sep.Remainder()) != "x" {
		t.Errorf("expected 4 empty items with rest 'x', have %v", sep)
	}
}

func TestSepBy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.parsec")
	defer teardown()
	//
	inputs := []struct {
		input string
		sepBy []string // nil: failure
		sep1  []string
		sep2  []string
		rest  string // rest after SepBy
	}{
		{"", []string{}, nil, nil, ""},
		{",1", []string{}, nil, nil, ",1"},
		{"1", []string{"1"}, []string{"1"}, nil, ""},
		{"1,2,3", []string{"1", "2", "3"}, []string{"1", "2", "3"}, []string{"1", "2", "3"}, ""},
		{"1,2,", []string{"1", "2"}, []string{"1", "2"}, []string{"1", "2"}, ","},
	}
	digit := AsString(Digit())
	comma := Char(',')
	for _, c := range inputs {
		r := SepBy(comma, digit).RunString(c.input)
		if r.IsFail() || !reflect.DeepEqual(r.Output(), c.sepBy) || rest(r.Remainder()) != c.rest {
			t.Errorf("SepBy(%q): expected %v with rest %q, have %v", c.input, c.sepBy, c.rest, r)
		}
		check := func(name string, r Result[[]string], expected []string) {
			if expected == nil {
				if r.IsSuccess() {
					t.Errorf("%s(%q): expected failure, have %v", name, c.input, r)
				}
			} else if r.IsFail() || !reflect.DeepEqual(r.Output(), expected) {
				t.Errorf("%s(%q): expected %v, have %v", name, c.input, expected, r)
			}
		}
		check("SepBy1", SepBy1(comma, digit).RunString(c.input), c.sep1)
		check("SepBy2", SepBy2(comma, digit).RunString(c.input), c.sep2)
	}
}

func TestStructural(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.parsec")
	defer teardown()
	//
	if v, err := Between(Char('['), Char(']'), TakeWhile(IsAlpha)).TryParse("[abc]"); err != nil || v != "abc" {
		t.Errorf("expected 'abc' between brackets, have %q, %v", v, err)
	}
	if r := Between(Char('['), Char(']'), TakeWhile(IsAlpha)).RunString("[abc"); r.IsSuccess() {
		t.Errorf("expected missing bracket to fail")
	}
	if r := Repeat(3, Digit()).RunString("12"); r.IsSuccess() {
		t.Errorf("expected Repeat to fail on short input")
	}
	if r := Repeat(3, Digit()).RunString("1234"); string(r.Output()) != "123" || rest(r.Remainder()) != "4" {
		t.Errorf("expected '123' with rest '4', have %v", r)
	}
	if r := Optional(String("-")).RunString("5"); r.Output() != "" || rest(r.Remainder()) != "5" {
		t.Errorf("expected empty optional, have %v", r)
	}
	keyword := KeepFirst(String("print"), NotFollowedBy(AlphaNum()))
	if r := keyword.RunString("print x"); r.IsFail() || rest(r.Remainder()) != " x" {
		t.Errorf("expected keyword 'print', have %v", r)
	}
	if r := keyword.RunString("printXYZ"); r.IsSuccess() {
		t.Errorf("expected identifier 'printXYZ' not to match keyword, have %v", r)
	}
	if r := LookAhead(String("ab")).RunString("abc"); r.Output() != "ab" || rest(r.Remainder()) != "abc" {
		t.Errorf("expected lookahead without consumption, have %v", r)
	}
	if r := Choice(String("a"), String("b"), String("c")).RunString("c"); r.IsFail() {
		t.Errorf("expected choice of 'c', have %v", r)
	}
	r := Choice(String("a"), String("b")).RunString("x")
	if r.Expected() != "'a' or 'b'" {
		t.Errorf("expected combined label, have %q", r.Expected())
	}
}

func TestChoiceWithoutParsersPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected Choice() to panic")
		}
	}()
	Choice[string]()
}
