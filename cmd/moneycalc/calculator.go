package main

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	money "github.com/govalues/scaledmoney"
)

var (
	errUnknownOp = errors.New("unknown operation")
	errArgCount  = errors.New("wrong number of arguments")
)

// Calculator evaluates a single operation on textual operands.
// Money operands are written as "<amount> <currency>", for example "1.05 USD".
type Calculator interface {
	Eval(op string, args []string) (string, error)
}

type calculator struct {
	reg  *money.Registry
	trim bool
}

// NewCalculator returns a Calculator over the currencies of reg.
// If trim is set, monetary results are printed without trailing zeros.
func NewCalculator(reg *money.Registry, trim bool) Calculator {
	return &calculator{reg: reg, trim: trim}
}

type operation struct {
	args int
	eval func(c *calculator, args []string) (string, error)
}

var operations = map[string]operation{
	"add": {2, binaryMoney(money.Money.Add)},
	"sub": {2, binaryMoney(money.Money.Sub)},
	"mul": {2, scaleMoney(money.Money.Mul)},
	"div": {2, scaleMoney(money.Money.Div)},
	"cmp": {2, func(c *calculator, args []string) (string, error) {
		a, b, err := c.parsePair(args)
		if err != nil {
			return "", err
		}
		n, err := a.Cmp(b)
		if err != nil {
			return "", err
		}
		return strconv.Itoa(n), nil
	}},
	"gt":  {2, predicate(money.Money.Gt)},
	"ge":  {2, predicate(money.Money.Ge)},
	"eq":  {2, predicate(money.Money.Eq)},
	"ne":  {2, predicate(money.Money.Ne)},
	"lt":  {2, predicate(money.Money.Lt)},
	"le":  {2, predicate(money.Money.Le)},
	"neg": {1, unaryMoney(money.Money.Neg)},
	"abs": {1, unaryMoney(money.Money.Abs)},
	"value": {1, func(c *calculator, args []string) (string, error) {
		m, err := c.reg.Parse(args[0])
		if err != nil {
			return "", err
		}
		return m.Value(), nil
	}},
	"fromvalue": {2, func(c *calculator, args []string) (string, error) {
		m, err := c.reg.FromValue(args[0], args[1])
		if err != nil {
			return "", err
		}
		return c.format(m), nil
	}},
	"rate": {3, func(c *calculator, args []string) (string, error) {
		source, target, err := c.parsePair(args[:2])
		if err != nil {
			return "", err
		}
		rate, err := c.reg.Rate(source, target, args[2])
		if err != nil {
			return "", err
		}
		return c.format(rate), nil
	}},
	"cnv": {2, func(c *calculator, args []string) (string, error) {
		m, rate, err := c.parsePair(args)
		if err != nil {
			return "", err
		}
		got, err := m.Cnv(rate)
		if err != nil {
			return "", err
		}
		return c.format(got), nil
	}},
	"currencies": {0, func(c *calculator, _ []string) (string, error) {
		currs := c.reg.Currencies()
		lines := make([]string, len(currs))
		for i, curr := range currs {
			frac, err := c.reg.Fraction(curr)
			if err != nil {
				return "", err
			}
			lines[i] = fmt.Sprintf("%v %v", curr, frac)
		}
		return strings.Join(lines, "\n"), nil
	}},
}

// Ops returns the names of the supported operations.
func Ops() []string {
	ops := make([]string, 0, len(operations))
	for op := range operations {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

func (c *calculator) Eval(op string, args []string) (string, error) {
	o, ok := operations[op]
	if !ok {
		return "", fmt.Errorf("%w %q", errUnknownOp, op)
	}
	if len(args) != o.args {
		return "", fmt.Errorf("%v: %w: got %v, want %v", op, errArgCount, len(args), o.args)
	}
	return o.eval(c, args)
}

func (c *calculator) format(m money.Money) string {
	if c.trim {
		return m.TrimmedAmount() + " " + m.Curr()
	}
	return m.String()
}

func (c *calculator) parsePair(args []string) (money.Money, money.Money, error) {
	a, err := c.reg.Parse(args[0])
	if err != nil {
		return money.Money{}, money.Money{}, err
	}
	b, err := c.reg.Parse(args[1])
	if err != nil {
		return money.Money{}, money.Money{}, err
	}
	return a, b, nil
}

// parseFactor reads a money operand if the argument carries a currency,
// otherwise a plain amount.
func (c *calculator) parseFactor(s string) (money.Factor, error) {
	if strings.Contains(strings.TrimSpace(s), " ") {
		return c.reg.Parse(s)
	}
	return money.RawAmount(strings.TrimSpace(s)), nil
}

func unaryMoney(f func(money.Money) money.Money) func(*calculator, []string) (string, error) {
	return func(c *calculator, args []string) (string, error) {
		m, err := c.reg.Parse(args[0])
		if err != nil {
			return "", err
		}
		return c.format(f(m)), nil
	}
}

func binaryMoney(f func(money.Money, money.Money) (money.Money, error)) func(*calculator, []string) (string, error) {
	return func(c *calculator, args []string) (string, error) {
		a, b, err := c.parsePair(args)
		if err != nil {
			return "", err
		}
		got, err := f(a, b)
		if err != nil {
			return "", err
		}
		return c.format(got), nil
	}
}

func scaleMoney(f func(money.Money, money.Factor) (money.Money, error)) func(*calculator, []string) (string, error) {
	return func(c *calculator, args []string) (string, error) {
		m, err := c.reg.Parse(args[0])
		if err != nil {
			return "", err
		}
		factor, err := c.parseFactor(args[1])
		if err != nil {
			return "", err
		}
		got, err := f(m, factor)
		if err != nil {
			return "", err
		}
		return c.format(got), nil
	}
}

func predicate(f func(money.Money, money.Money) (bool, error)) func(*calculator, []string) (string, error) {
	return func(c *calculator, args []string) (string, error) {
		a, b, err := c.parsePair(args)
		if err != nil {
			return "", err
		}
		ok, err := f(a, b)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(ok), nil
	}
}
