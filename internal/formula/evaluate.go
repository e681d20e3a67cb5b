// Package formula evaluates small arithmetic expressions typed into
// amount fields, such as "=50*1000". The numeric literals tolerate both
// regional conventions (dot-thousands/comma-decimal and the reverse).
// Failures come back as errors, never panics, so a live input field
// degrades to "no value yet".
package formula

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrDivisionByZero    = errors.New("division by zero")
	ErrInvalidExpression = errors.New("invalid expression")
)

// divisorFloor is the magnitude below which a divisor counts as zero.
var divisorFloor = decimal.New(1, -9)

// Evaluate interprets a string. With a leading "=" it is parsed as an
// arithmetic formula over + - * /, parentheses and unary minus; the
// result is rounded to 2 decimals. Without one it is parsed directly as
// a comma-decimal number (convenience path, no expression grammar).
func Evaluate(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "=") {
		return ParseCommaDecimal(trimmed)
	}

	tokens, err := tokenize(trimmed[1:])
	if err != nil {
		return decimal.Zero, err
	}
	postfix, err := toPostfix(tokens)
	if err != nil {
		return decimal.Zero, err
	}
	result, err := evalPostfix(postfix)
	if err != nil {
		return decimal.Zero, err
	}
	return result.Round(2), nil
}

// ParseNumber parses a literal that may use either separator
// convention. Policy: when both "." and "," appear, whichever occurs
// last is the decimal point and the other is stripped as a thousands
// separator; with only commas, a single comma is decimal and several
// are thousands; with only dots, several dots are thousands and a
// single dot passes through as a decimal point.
func ParseNumber(lit string) (decimal.Decimal, error) {
	lastDot := strings.LastIndex(lit, ".")
	lastComma := strings.LastIndex(lit, ",")

	s := lit
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastDot > lastComma {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		}
	case lastComma >= 0:
		if strings.Count(s, ",") == 1 {
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number %q: %w", lit, ErrInvalidExpression)
	}
	return d, nil
}

// ParseCommaDecimal parses a bare amount strictly in the
// dot-thousands/comma-decimal convention: "1.234,56" -> 1234.56.
func ParseCommaDecimal(s string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, ErrInvalidExpression)
	}
	return d, nil
}

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenOperator
	tokenLParen
	tokenRParen
)

type token struct {
	kind  tokenKind
	op    byte
	unary bool // "-" acting on a single operand
	num   decimal.Decimal
}

func tokenize(expr string) ([]token, error) {
	var tokens []token
	runes := []rune(expr)

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == ' ' || r == '\t':
		case r == '+' || r == '-' || r == '*' || r == '/':
			tokens = append(tokens, token{kind: tokenOperator, op: byte(r)})
		case r == '(':
			tokens = append(tokens, token{kind: tokenLParen})
		case r == ')':
			tokens = append(tokens, token{kind: tokenRParen})
		case r >= '0' && r <= '9' || r == '.' || r == ',':
			start := i
			for i+1 < len(runes) && (runes[i+1] >= '0' && runes[i+1] <= '9' || runes[i+1] == '.' || runes[i+1] == ',') {
				i++
			}
			num, err := ParseNumber(string(runes[start : i+1]))
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{kind: tokenNumber, num: num})
		default:
			return nil, fmt.Errorf("invalid character %q: %w", r, ErrInvalidExpression)
		}
	}
	return tokens, nil
}

func precedence(t token) int {
	if t.unary {
		return 3
	}
	if t.op == '*' || t.op == '/' {
		return 2
	}
	return 1
}

// toPostfix runs the shunting-yard conversion. A "-" that starts the
// expression or follows another operator or "(" is unary: a zero
// operand is injected and the minus binds tighter than "*" and "/",
// so "2*-3" subtracts before multiplying.
func toPostfix(tokens []token) ([]token, error) {
	var out, ops []token

	for i, tok := range tokens {
		switch tok.kind {
		case tokenNumber:
			out = append(out, tok)
		case tokenLParen:
			ops = append(ops, tok)
		case tokenRParen:
			for {
				if len(ops) == 0 {
					return nil, fmt.Errorf("unmatched parenthesis: %w", ErrInvalidExpression)
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == tokenLParen {
					break
				}
				out = append(out, top)
			}
		case tokenOperator:
			if tok.op == '-' && (i == 0 || tokens[i-1].kind == tokenOperator || tokens[i-1].kind == tokenLParen) {
				tok.unary = true
				out = append(out, token{kind: tokenNumber, num: decimal.Zero})
			}
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind != tokenOperator {
					break
				}
				// unary minus is right-associative, binary operators
				// pop on equal precedence
				if precedence(top) < precedence(tok) || (precedence(top) == precedence(tok) && tok.unary) {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.kind == tokenLParen {
			return nil, fmt.Errorf("unmatched parenthesis: %w", ErrInvalidExpression)
		}
		out = append(out, top)
	}
	return out, nil
}

// evalPostfix folds a postfix token stream. The operand stack must
// collapse to exactly one value; anything else (starved operators,
// leftover operands) is an invalid expression.
func evalPostfix(postfix []token) (decimal.Decimal, error) {
	var stack []decimal.Decimal

	for _, tok := range postfix {
		if tok.kind == tokenNumber {
			stack = append(stack, tok.num)
			continue
		}
		if len(stack) < 2 {
			return decimal.Zero, ErrInvalidExpression
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		var v decimal.Decimal
		switch tok.op {
		case '+':
			v = a.Add(b)
		case '-':
			v = a.Sub(b)
		case '*':
			v = a.Mul(b)
		case '/':
			if b.Abs().LessThan(divisorFloor) {
				return decimal.Zero, ErrDivisionByZero
			}
			v = a.Div(b)
		}
		stack = append(stack, v)
	}

	if len(stack) != 1 {
		return decimal.Zero, ErrInvalidExpression
	}
	return stack[0], nil
}
