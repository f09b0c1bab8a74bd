package expr

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pcomb/parsec"
	"github.com/npillmayer/pcomb/stream"
)

// UnaryOp is a prefix or postfix operator.
type UnaryOp[T any] struct {
	Symbol    *parsec.Parser[string] // parser for the operator lexeme
	Transform func(T) T              // applied to the operand
	Label     string                 // name of the operator in error messages
}

// Unary creates a unary operator. Its symbol parser is labeled with label.
func Unary[T any](symbol *parsec.Parser[string], transform func(T) T, label string) UnaryOp[T] {
	if symbol == nil || transform == nil {
		panic("unary operator requires a symbol and a transform")
	}
	return UnaryOp[T]{Symbol: symbol.Label(label), Transform: transform, Label: label}
}

// BinaryOp is an infix operator.
type BinaryOp[T any] struct {
	Symbol    *parsec.Parser[string] // parser for the operator lexeme
	Transform func(T, T) T           // applied to left and right operand
	Label     string                 // name of the operator in error messages
}

// Binary creates a binary operator. Its symbol parser is labeled with label.
func Binary[T any](symbol *parsec.Parser[string], transform func(T, T) T, label string) BinaryOp[T] {
	if symbol == nil || transform == nil {
		panic("binary operator requires a symbol and a transform")
	}
	return BinaryOp[T]{Symbol: symbol.Label(label), Transform: transform, Label: label}
}

// Fixity is the position and associativity of the operators of a precedence level.
type Fixity int8

// Fixities of precedence levels.
const (
	PrefixOp Fixity = iota
	PostfixOp
	LeftAssocOp
	RightAssocOp
	NonAssocOp
)

func (f Fixity) String() string {
	switch f {
	case PrefixOp:
		return "prefix"
	case PostfixOp:
		return "postfix"
	case LeftAssocOp:
		return "left-associative"
	case RightAssocOp:
		return "right-associative"
	case NonAssocOp:
		return "non-associative"
	}
	return fmt.Sprintf("Fixity(%d)", int(f))
}

// Level is a precedence level of an expression table: a group of operators of
// the same fixity. Create levels with Prefix, Postfix, LeftAssoc, RightAssoc or
// NonAssoc.
type Level[T any] struct {
	fixity Fixity
	unary  []UnaryOp[T]
	binary []BinaryOp[T]
}

// Fixity returns the fixity of the operators of l.
func (l Level[T]) Fixity() Fixity {
	return l.fixity
}

// Prefix creates a level of prefix operators.
func Prefix[T any](ops ...UnaryOp[T]) Level[T] {
	return unaryLevel(PrefixOp, ops)
}

// Postfix creates a level of postfix operators.
func Postfix[T any](ops ...UnaryOp[T]) Level[T] {
	return unaryLevel(PostfixOp, ops)
}

// LeftAssoc creates a level of left-associative binary operators:
// a+b+c = (a+b)+c.
func LeftAssoc[T any](ops ...BinaryOp[T]) Level[T] {
	return binaryLevel(LeftAssocOp, ops)
}

// RightAssoc creates a level of right-associative binary operators:
// a^b^c = a^(b^c).
func RightAssoc[T any](ops ...BinaryOp[T]) Level[T] {
	return binaryLevel(RightAssocOp, ops)
}

// NonAssoc creates a level of non-associative binary operators. An expression at
// this level may contain at most one of the operators.
func NonAssoc[T any](ops ...BinaryOp[T]) Level[T] {
	return binaryLevel(NonAssocOp, ops)
}

func unaryLevel[T any](fixity Fixity, ops []UnaryOp[T]) Level[T] {
	if len(ops) == 0 {
		panic(fmt.Sprintf("%s precedence level without operators", fixity))
	}
	return Level[T]{fixity: fixity, unary: ops}
}

func binaryLevel[T any](fixity Fixity, ops []BinaryOp[T]) Level[T] {
	if len(ops) == 0 {
		panic(fmt.Sprintf("%s precedence level without operators", fixity))
	}
	return Level[T]{fixity: fixity, binary: ops}
}

// label lists the operator labels of l.
func (l Level[T]) label() string {
	var labels []string
	for _, op := range l.unary {
		labels = append(labels, op.Label)
	}
	for _, op := range l.binary {
		labels = append(labels, op.Label)
	}
	return strings.Join(labels, " or ")
}

// --- Expression table ------------------------------------------------------

// Expression creates a parser for expressions over term. levels is the expression
// table, ordered from the tightest binding level to the loosest. Without levels,
// the result parses terms only.
func Expression[T any](term *parsec.Parser[T], levels ...Level[T]) *parsec.Parser[T] {
	if term == nil {
		panic("expression requires a term parser")
	}
	p := term
	for i, level := range levels {
		tracer().Debugf("expression level %d: %s %s", i+1, level.fixity, level.label())
		switch level.fixity {
		case PrefixOp:
			p = prefix(p, level.unary)
		case PostfixOp:
			p = postfix(p, level.unary)
		case LeftAssocOp:
			p = leftAssoc(p, level)
		case RightAssocOp:
			p = rightAssoc(p, level)
		case NonAssocOp:
			p = nonAssoc(p, level)
		default:
			panic(fmt.Sprintf("unknown fixity %s of precedence level %d", level.fixity, i+1))
		}
	}
	return p
}

// prefix tries the operators in order, each followed by an operand. If no
// operator matches, the operand stands alone.
func prefix[T any](operand *parsec.Parser[T], ops []UnaryOp[T]) *parsec.Parser[T] {
	alts := make([]*parsec.Parser[T], 0, len(ops)+1)
	for _, op := range ops {
		transform := op.Transform
		fn := parsec.Map(op.Symbol, func(string) func(T) T { return transform })
		alts = append(alts, parsec.Apply(fn, operand))
	}
	alts = append(alts, operand)
	return parsec.Choice(alts...)
}

// postfix parses an operand, optionally followed by one of the operators.
func postfix[T any](operand *parsec.Parser[T], ops []UnaryOp[T]) *parsec.Parser[T] {
	return parsec.Bind(operand, func(v T) *parsec.Parser[T] {
		alts := make([]*parsec.Parser[T], 0, len(ops)+1)
		for _, op := range ops {
			transform := op.Transform
			alts = append(alts, parsec.Map(op.Symbol, func(string) T { return transform(v) }))
		}
		alts = append(alts, parsec.Pure(v))
		return parsec.Choice(alts...)
	})
}

// operator returns a parser for the operators of a binary level, producing the
// transform of the matching operator.
func operator[T any](level Level[T]) *parsec.Parser[func(T, T) T] {
	alts := make([]*parsec.Parser[func(T, T) T], len(level.binary))
	for i, op := range level.binary {
		transform := op.Transform
		alts[i] = parsec.As(op.Symbol, transform)
	}
	return parsec.Choice(alts...)
}

// chained is an operand chain, operand (operator operand)*.
type chained[T any] struct {
	operands []T
	ops      []func(T, T) T
	at       []stream.Stream // input at each operator
	rest     stream.Stream
}

// chain parses operand (operator operand)*. A trailing operator without an operand
// is not consumed.
func chain[T any](operand *parsec.Parser[T], op *parsec.Parser[func(T, T) T], s stream.Stream) (
	chained[T], parsec.Result[T]) {
	//
	first := operand.Run(s)
	if first.IsFail() {
		return chained[T]{}, first
	}
	c := chained[T]{operands: []T{first.Output()}}
	s = first.Remainder()
	for {
		ro := op.Run(s)
		if ro.IsFail() {
			break
		}
		rr := operand.Run(ro.Remainder())
		if rr.IsFail() || !s.Position().Before(rr.Remainder().Position()) {
			break
		}
		c.ops = append(c.ops, ro.Output())
		c.operands = append(c.operands, rr.Output())
		c.at = append(c.at, s)
		s = rr.Remainder()
	}
	c.rest = s
	return c, first
}

// leftAssoc folds a chain from the left: ((a op b) op c) op d.
func leftAssoc[T any](operand *parsec.Parser[T], level Level[T]) *parsec.Parser[T] {
	op := operator(level)
	return parsec.NewParser(operand.String(), func(s stream.Stream) parsec.Result[T] {
		c, first := chain(operand, op, s)
		if first.IsFail() {
			return first
		}
		acc := c.operands[0]
		for i, f := range c.ops {
			acc = f(acc, c.operands[i+1])
		}
		return parsec.Succeed(acc, c.rest)
	})
}

// rightAssoc folds a chain from the right: a op (b op (c op d)).
func rightAssoc[T any](operand *parsec.Parser[T], level Level[T]) *parsec.Parser[T] {
	op := operator(level)
	return parsec.NewParser(operand.String(), func(s stream.Stream) parsec.Result[T] {
		c, first := chain(operand, op, s)
		if first.IsFail() {
			return first
		}
		acc := c.operands[len(c.operands)-1]
		for i := len(c.ops) - 1; i >= 0; i-- {
			acc = c.ops[i](c.operands[i], acc)
		}
		return parsec.Succeed(acc, c.rest)
	})
}

// nonAssoc parses an operand, optionally followed by a single operator and a
// second operand. Another operator of the same level after the second operand
// is a failure.
func nonAssoc[T any](operand *parsec.Parser[T], level Level[T]) *parsec.Parser[T] {
	op := operator(level)
	label := "no chained " + level.label()
	return parsec.NewParser(operand.String(), func(s stream.Stream) parsec.Result[T] {
		c, first := chain(operand, op, s)
		if first.IsFail() {
			return first
		}
		switch len(c.ops) {
		case 0:
			return parsec.Succeed(c.operands[0], c.rest)
		case 1:
			return parsec.Succeed(c.ops[0](c.operands[0], c.operands[1]), c.rest)
		}
		tracer().Debugf("chained non-associative operators at %s", c.at[1].Position())
		return parsec.Fail[T](label, c.at[1])
	})
}
