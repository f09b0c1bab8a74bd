package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/pcomb/expr"
	"github.com/npillmayer/pcomb/parsec"
	"github.com/pterm/pterm"
)

// calculator creates the expression grammar for calc:
//
//	Expr    ➞ Sum [ (<|>|=) Sum ]
//	Sum     ➞ Sum (+|-) Prod  |  Prod
//	Prod    ➞ Prod (*|/|%) Power  |  Power
//	Power   ➞ Fact ^ Power  |  Fact
//	Fact    ➞ Unary [ ! ]
//	Unary   ➞ (-|+) Term  |  Term
//	Term    ➞ number  |  ( Expr )
func calculator() *parsec.Parser[float64] {
	e := parsec.Recursive[float64]()
	number := parsec.Token(parsec.FloatValue[float64]()).Label("number")
	term := parsec.Between(sym("("), sym(")"), e).Or(number)
	boolean := func(b bool) float64 {
		if b {
			return 1
		}
		return 0
	}
	e.Recurse(expr.Expression(term,
		expr.Prefix(
			expr.Unary(sym("-"), func(x float64) float64 { return -x }, "negation"),
			expr.Unary(sym("+"), func(x float64) float64 { return x }, "unary plus"),
		),
		expr.Postfix(expr.Unary(sym("!"), factorial, "factorial")),
		expr.RightAssoc(expr.Binary(sym("^"), math.Pow, "power")),
		expr.LeftAssoc(
			expr.Binary(sym("*"), func(a, b float64) float64 { return a * b }, "multiplication"),
			expr.Binary(sym("/"), func(a, b float64) float64 { return a / b }, "division"),
			expr.Binary(sym("%"), math.Mod, "remainder"),
		),
		expr.LeftAssoc(
			expr.Binary(sym("+"), func(a, b float64) float64 { return a + b }, "addition"),
			expr.Binary(sym("-"), func(a, b float64) float64 { return a - b }, "subtraction"),
		),
		expr.NonAssoc(
			expr.Binary(sym("<"), func(a, b float64) float64 { return boolean(a < b) }, "less than"),
			expr.Binary(sym(">"), func(a, b float64) float64 { return boolean(a > b) }, "greater than"),
			expr.Binary(sym("="), func(a, b float64) float64 { return boolean(a == b) }, "equality"),
		),
	))
	return parsec.Sequence(parsec.SkipSpace(), e).ThenEOF()
}

func sym(s string) *parsec.Parser[string] {
	return parsec.Token(parsec.String(s))
}

// factorial is Γ(x+1), which is x! for natural numbers.
func factorial(x float64) float64 {
	return math.Gamma(x + 1)
}

// Calc holds the calculator of a session.
type Calc struct {
	parser *parsec.Parser[float64]
}

func newCalc() *Calc {
	return &Calc{parser: calculator()}
}

// Eval evaluates an expression, given on a line by itself.
func (c *Calc) Eval(line string) (float64, error) {
	v, err := c.parser.TryParse(line)
	if err != nil {
		return 0, err
	}
	tracer().Debugf("%s = %v", line, v)
	return v, nil
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// calcOnce evaluates the command line arguments as an expression.
func calcOnce(args []string) error {
	input := strings.TrimSpace(strings.Join(args, " "))
	tracer().Infof("Input argument is \"%s\"", input)
	v, err := newCalc().Eval(input)
	if err != nil {
		pterm.Error.Println("\n" + err.Error())
		return fmt.Errorf("cannot evaluate %q", input)
	}
	pterm.Info.Println(format(v))
	return nil
}

// calcREPL starts interactive mode.
func calcREPL() error {
	repl, err := readline.New("calc> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Println("Welcome to pcrepl calc")
	tracer().Infof("Quit with <ctrl>D")
	calc := newCalc()
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		v, err := calc.Eval(line)
		if err != nil {
			pterm.Error.Println("\n" + err.Error())
			continue
		}
		pterm.Info.Println(format(v))
	}
	println("Good bye!")
	return nil
}
