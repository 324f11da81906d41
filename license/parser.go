package license

import (
	"bufio"
	"strings"
)

// Parse parses a full SPDX license expression into an expression tree.
//
// The grammar, with OR binding loosest and WITH tightest:
//
//	expr      := and_expr ("OR" and_expr)*
//	and_expr  := with_expr ("AND" with_expr)*
//	with_expr := atom ["WITH" exception_id]
//	atom      := "(" expr ")" | license_id ["+"]
//
// Keywords are case-sensitive. A trailing "+" or an "-or-later" suffix
// on a license id both set the or-later marker on the atom.
func Parse(text string) (*Expression, error) {
	p := &parser{expr: text, tokens: scan(text)}

	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		if tok.kind == tokenClose {
			return nil, &ParseError{Expression: text, Token: tok.text, Kind: ErrUnbalancedParens}
		}
		return nil, &ParseError{Expression: text, Token: tok.text, Kind: ErrInvalidToken}
	}
	return &Expression{text: text, root: root}, nil
}

// MustParse is like Parse but panics on error. Intended for expressions
// known at compile time.
func MustParse(text string) *Expression {
	expr, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return expr
}

// ParseSimple parses a simple license expression: a single license with
// an optional exception. It runs the full parser and then rejects a
// compound result with ErrNotSimpleExpression rather than flattening it.
func ParseSimple(text string) (*SimpleExpression, error) {
	expr, err := Parse(text)
	if err != nil {
		return nil, err
	}
	simple, ok := expr.root.(SimpleNode)
	if !ok {
		return nil, &ParseError{Expression: text, Kind: ErrNotSimpleExpression}
	}
	return &SimpleExpression{text: expr.text, root: simple}, nil
}

// MustParseSimple is like ParseSimple but panics on error.
func MustParseSimple(text string) *SimpleExpression {
	expr, err := ParseSimple(text)
	if err != nil {
		panic(err)
	}
	return expr
}

type tokenKind int

const (
	tokenLicense tokenKind = iota
	tokenAnd
	tokenOr
	tokenWith
	tokenOpen
	tokenClose
)

type token struct {
	kind tokenKind
	text string
}

// scan splits an expression into tokens. Parentheses are standalone
// tokens, everything else splits on whitespace. Keyword matching is
// case-sensitive, so "and" comes back as an ordinary license token and
// fails later with an invalid-token error.
func scan(text string) []token {
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Split(splitExpression)

	var tokens []token
	for sc.Scan() {
		word := sc.Text()
		switch word {
		case "(":
			tokens = append(tokens, token{kind: tokenOpen, text: word})
		case ")":
			tokens = append(tokens, token{kind: tokenClose, text: word})
		case "AND":
			tokens = append(tokens, token{kind: tokenAnd, text: word})
		case "OR":
			tokens = append(tokens, token{kind: tokenOr, text: word})
		case "WITH":
			tokens = append(tokens, token{kind: tokenWith, text: word})
		default:
			tokens = append(tokens, token{kind: tokenLicense, text: word})
		}
	}
	return tokens
}

// splitExpression is the bufio.SplitFunc for license expressions:
// parentheses terminate the current token and come back as their own
// single-byte tokens.
func splitExpression(data []byte, atEOF bool) (int, []byte, error) {
	start := 0
	for ; start < len(data); start++ {
		if !isSpace(data[start]) {
			break
		}
	}
	if start == len(data) {
		return start, nil, nil
	}

	switch data[start] {
	case '(', ')':
		return start + 1, data[start : start+1], nil
	}

	for i := start; i < len(data); i++ {
		switch {
		case isSpace(data[i]):
			return i + 1, data[start:i], nil
		case data[i] == '(' || data[i] == ')':
			return i, data[start:i], nil
		}
	}
	if atEOF {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

type parser struct {
	expr   string
	tokens []token
	pos    int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *parser) next() (token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *parser) parseOr() (Node, error) {
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	operands := []Node{first}
	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokenOr {
			break
		}
		p.pos++
		operand, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}
	if len(operands) == 1 {
		return first, nil
	}
	return &Or{Operands: operands}, nil
}

func (p *parser) parseAnd() (Node, error) {
	first, err := p.parseWith()
	if err != nil {
		return nil, err
	}

	operands := []Node{first}
	for {
		tok, ok := p.peek()
		if !ok || tok.kind != tokenAnd {
			break
		}
		p.pos++
		operand, err := p.parseWith()
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}
	if len(operands) == 1 {
		return first, nil
	}
	return &And{Operands: operands}, nil
}

func (p *parser) parseWith() (Node, error) {
	node, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	tok, ok := p.peek()
	if !ok || tok.kind != tokenWith {
		return node, nil
	}

	// WITH applies to a single license, never to a group.
	atom, isAtom := node.(*Atom)
	if !isAtom {
		return nil, &ParseError{Expression: p.expr, Token: tok.text, Kind: ErrInvalidToken}
	}
	p.pos++

	exception, ok := p.next()
	if !ok {
		return nil, &ParseError{Expression: p.expr, Kind: ErrInvalidToken}
	}
	if exception.kind != tokenLicense || !validIDString(exception.text) {
		return nil, &ParseError{Expression: p.expr, Token: exception.text, Kind: ErrInvalidToken}
	}
	return &With{License: *atom, Exception: exception.text}, nil
}

func (p *parser) parseAtom() (Node, error) {
	tok, ok := p.next()
	if !ok {
		return nil, &ParseError{Expression: p.expr, Kind: ErrInvalidToken}
	}

	switch tok.kind {
	case tokenOpen:
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		closing, ok := p.next()
		if !ok || closing.kind != tokenClose {
			return nil, &ParseError{Expression: p.expr, Token: tok.text, Kind: ErrUnbalancedParens}
		}
		return inner, nil
	case tokenLicense:
		return p.atom(tok.text)
	default:
		return nil, &ParseError{Expression: p.expr, Token: tok.text, Kind: ErrInvalidToken}
	}
}

// atom builds an Atom from a license token, folding the "+" and
// "-or-later" spellings into the or-later marker.
func (p *parser) atom(text string) (*Atom, error) {
	id := text
	orLater := false

	switch {
	case strings.HasSuffix(id, "+"):
		id = strings.TrimSuffix(id, "+")
		orLater = true
	case strings.HasSuffix(id, "-or-later"):
		id = strings.TrimSuffix(id, "-or-later")
		orLater = true
	}

	if !validIDString(id) {
		return nil, &ParseError{Expression: p.expr, Token: text, Kind: ErrInvalidToken}
	}
	return &Atom{License: id, OrLater: orLater}, nil
}

// validIDString reports whether s is a non-empty SPDX idstring: ASCII
// letters, digits, ".", "-", and ":" (the separator in
// "DocumentRef-x:LicenseRef-y" references).
func validIDString(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '-' || r == ':':
		default:
			return false
		}
	}
	return true
}
