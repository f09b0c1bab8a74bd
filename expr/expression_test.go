package expr

import (
	"testing"

	"github.com/npillmayer/pcomb/parsec"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func sym(s string) *parsec.Parser[string] {
	return parsec.Token(parsec.String(s))
}

func prefixed(op string) func(string) string {
	return func(x string) string { return "(" + op + x + ")" }
}

func infixed(op string) func(string, string) string {
	return func(a, b string) string { return "(" + a + " " + op + " " + b + ")" }
}

// grammar creates an expression parser which renders the expression tree with
// explicit parentheses.
func grammar() *parsec.Parser[string] {
	e := parsec.Recursive[string]()
	number := parsec.Token(parsec.TakeWhile1(parsec.IsDigit).Label("number"))
	term := parsec.Between(sym("("), sym(")"), e).Or(number)
	return e.Recurse(Expression(term,
		Prefix(
			Unary(sym("-"), prefixed("-"), "negation"),
			Unary(sym("+"), prefixed("+"), "identity"),
		),
		Postfix(Unary(sym("!"), func(x string) string { return "(" + x + "!)" }, "factorial")),
		RightAssoc(Binary(sym("R"), infixed("R"), "R")),
		LeftAssoc(
			Binary(sym("*"), infixed("*"), "multiplication"),
			Binary(sym("/"), infixed("/"), "division"),
		),
		LeftAssoc(
			Binary(sym("+"), infixed("+"), "addition"),
			Binary(sym("-"), infixed("-"), "subtraction"),
		),
		NonAssoc(Binary(sym("§"), infixed("§"), "section")),
	))
}

func TestExpressionPrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.expr")
	defer teardown()
	//
	calc := grammar().ThenEOF()
	inputs := []struct {
		input  string
		output string
	}{
		{"1", "1"},
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"-1 * +1", "((-1) * (+1))"},
		{"1 - 2 - 3", "((1 - 2) - 3)"},
		{"8 / 4 / 2", "((8 / 4) / 2)"},
		{"1 R 2 R 3", "(1 R (2 R 3))"},
		{"1 R 2 * 3 R 4", "((1 R 2) * (3 R 4))"},
		{"3!", "(3!)"},
		{"-3!", "((-3)!)"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"1 § 2", "(1 § 2)"},
		{"1 + 2 § 3 * 4", "((1 + 2) § (3 * 4))"},
		{"( ( 7 ) )", "7"},
	}
	for _, c := range inputs {
		out, err := calc.TryParse(c.input)
		if err != nil {
			t.Errorf("%q: unexpected error\n%v", c.input, err)
			continue
		}
		if out != c.output {
			t.Errorf("%q: expected %s, have %s", c.input, c.output, out)
		}
	}
}

func TestExpressionFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.expr")
	defer teardown()
	//
	calc := grammar().ThenEOF()
	r := calc.RunString("1 § 2 § 3")
	if r.IsSuccess() {
		t.Fatalf("expected chained non-associative operator to fail, have %v", r)
	}
	if r.Position().Column != 7 || r.Expected() != "no chained section" {
		t.Errorf("expected failure at second §, have %q at %s", r.Expected(), r.Position())
	}
	for _, input := range []string{"", "1 +", "(1", "1 2", "--1", "*"} {
		if _, err := calc.TryParse(input); err == nil {
			t.Errorf("%q: expected parse failure", input)
		}
	}
}

func TestExpressionEvaluates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pcomb.expr")
	defer teardown()
	//
	number := parsec.Token(parsec.Signed[int]())
	ints := Expression(number,
		RightAssoc(Binary(sym("^"), func(a, b int) int {
			n := 1
			for ; b > 0; b-- {
				n *= a
			}
			return n
		}, "power")),
		LeftAssoc(Binary(sym("-"), func(a, b int) int { return a - b }, "subtraction")),
	)
	if n, err := ints.ThenEOF().TryParse("2 ^ 3 ^ 2 - 500 - 10"); err != nil || n != 2 {
		t.Errorf("expected 512-500-10 = 2, have %d, %v", n, err)
	}
}

func TestEmptyLevelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected level without operators to panic")
		}
	}()
	LeftAssoc[int]()
}
