//
// Copyright (c) 2023, Přemysl Eric Janouch <p@janouch.name>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
// WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
// MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY
// SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
// WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION
// OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN
// CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
//

// Package lam implements the untyped lambda calculus: parsing terms from
// their textual notation, printing them back, and reducing them to
// beta-normal form.
//
// The grammar is deliberately restrictive in that every application needs
// to be parenthesized, e.g. ((λx. x) (λy. y)) rather than (λx. x) (λy. y),
// which keeps it LL(1) with a single character of lookahead.
package lam

import (
	"fmt"
	"unicode"
)

// --- Terms -------------------------------------------------------------------

// Term is a node of a lambda calculus expression tree. A Term is never
// modified once constructed, reduction builds new trees.
type Term interface {
	fmt.Stringer
}

// Var is a reference to a bound or free variable.
type Var struct {
	Name string
}

// Abs is an abstraction binding Param within Body.
type Abs struct {
	Param string
	Body  Term
}

// App is an application of Fn to Arg.
type App struct {
	Fn  Term
	Arg Term
}

func (v Var) String() string { return v.Name }

func (a Abs) String() string { return "λ" + a.Param + ". " + a.Body.String() }

func (a App) String() string { return "(" + wrap(a.Fn) + " " + wrap(a.Arg) + ")" }

// A bare lambda in the function position of an application would be parsed
// as a lambda group and swallow the rest of the pair, so lambdas on either
// side of an application get their own pair of parentheses.
func wrap(t Term) string {
	if _, ok := t.(Abs); ok {
		return "(" + t.String() + ")"
	}
	return t.String()
}

// --- Errors ------------------------------------------------------------------

// ParseErrorKind distinguishes the ways in which parsing can fail.
type ParseErrorKind int

const (
	// ErrUnexpectedCharacter denotes a character that cannot begin
	// any construct valid in its context.
	ErrUnexpectedCharacter ParseErrorKind = iota
	// ErrUnmatchedParenthesis denotes a group missing its closing
	// parenthesis.
	ErrUnmatchedParenthesis
	// ErrInvalidLambda denotes a binder missing its identifier or the
	// separating dot.
	ErrInvalidLambda
	// ErrInvalidApplication denotes an application without any sub-terms,
	// or trailing input after a complete term.
	ErrInvalidApplication
	// ErrInvalidVariable denotes a missing identifier.
	ErrInvalidVariable
)

func (k ParseErrorKind) String() string {
	switch k {
	case ErrUnexpectedCharacter:
		return "unexpected character"
	case ErrUnmatchedParenthesis:
		return "unmatched parenthesis"
	case ErrInvalidLambda:
		return "invalid lambda expression"
	case ErrInvalidApplication:
		return "invalid application expression"
	case ErrInvalidVariable:
		return "invalid variable expression"
	}
	panic("unknown error kind")
}

// ParseError describes a failure to turn input text into a Term.
type ParseError struct {
	Kind ParseErrorKind
	Char rune // the character involved, when the Kind reports one
}

func (e *ParseError) Error() string {
	if e.Char != 0 {
		return fmt.Sprintf("%s: %q", e.Kind, e.Char)
	}
	return e.Kind.String()
}

// --- Parser ------------------------------------------------------------------

const lambdaSigil = 'λ'

// Parser is a context for parsing, consuming its input left to right
// with one rune of lookahead.
type Parser struct {
	input []rune
	pos   int
}

// NewParser returns a new parser for the given input.
func NewParser(input string) *Parser {
	return &Parser{input: []rune(input)}
}

func (p *Parser) peek() (rune, bool) {
	if p.pos >= len(p.input) {
		return 0, false
	}
	return p.input[p.pos], true
}

func (p *Parser) next() (rune, bool) {
	ch, ok := p.peek()
	if ok {
		p.pos++
	}
	return ch, ok
}

func (p *Parser) skipWhitespace() {
	for ch, ok := p.peek(); ok && unicode.IsSpace(ch); ch, ok = p.peek() {
		p.pos++
	}
}

// The binder sigil is a letter to Unicode, but never an identifier here.
func isIdentRune(ch rune) bool {
	return ch == '_' || unicode.IsDigit(ch) ||
		(unicode.IsLetter(ch) && ch != lambdaSigil)
}

func isSigil(ch rune) bool {
	return ch == lambdaSigil || ch == '\\'
}

// parseVar reads an identifier, one or more alphanumeric or underscore
// characters.
func (p *Parser) parseVar() (string, error) {
	start := p.pos
	for ch, ok := p.peek(); ok && isIdentRune(ch); ch, ok = p.peek() {
		p.pos++
	}
	if p.pos == start {
		return "", &ParseError{Kind: ErrInvalidVariable}
	}
	return string(p.input[start:p.pos]), nil
}

// parseLambda reads an abstraction, the binder sigil still unconsumed.
// A backslash is accepted as a keyboard-friendly alias of the sigil.
func (p *Parser) parseLambda() (Term, error) {
	if ch, ok := p.next(); !ok || !isSigil(ch) {
		return nil, &ParseError{Kind: ErrUnexpectedCharacter, Char: lambdaSigil}
	}
	param, err := p.parseVar()
	if err != nil {
		return nil, &ParseError{Kind: ErrInvalidLambda}
	}
	p.skipWhitespace()
	if ch, ok := p.next(); !ok || ch != '.' {
		return nil, &ParseError{Kind: ErrInvalidLambda}
	}
	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return Abs{Param: param, Body: body}, nil
}

// parseApplication reads a sequence of one or more terms and associates
// them to the left, so that (a b c) comes out as ((a b) c). The sequence
// is extended greedily for as long as another term parses.
func (p *Parser) parseApplication() (Term, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		save := p.pos
		arg, err := p.parseTerm()
		if err != nil {
			p.pos = save
			return term, nil
		}
		term = App{Fn: term, Arg: arg}
	}
}

// parseTerm reads a single term: a parenthesized group, a lambda,
// or a variable. A group commits to a lambda when the character right
// after the parenthesis is the binder sigil, and to an application
// sequence otherwise.
func (p *Parser) parseTerm() (Term, error) {
	p.skipWhitespace()
	if ch, ok := p.peek(); !ok || ch != '(' {
		return p.parseNonApplication()
	}
	p.pos++

	var term Term
	var err error
	switch ch, ok := p.peek(); {
	case !ok:
		return nil, &ParseError{Kind: ErrUnmatchedParenthesis}
	case isSigil(ch):
		term, err = p.parseLambda()
	default:
		term, err = p.parseApplication()
	}
	if err != nil {
		return nil, err
	}

	p.skipWhitespace()
	if ch, ok := p.next(); !ok || ch != ')' {
		return nil, &ParseError{Kind: ErrUnmatchedParenthesis}
	}
	return term, nil
}

// parseNonApplication reads a term other than an application,
// that is a lambda or a variable.
func (p *Parser) parseNonApplication() (Term, error) {
	p.skipWhitespace()
	switch ch, ok := p.peek(); {
	case !ok:
		return nil, &ParseError{Kind: ErrInvalidApplication}
	case isSigil(ch):
		return p.parseLambda()
	case isIdentRune(ch):
		name, err := p.parseVar()
		if err != nil {
			return nil, err
		}
		return Var{Name: name}, nil
	default:
		return nil, &ParseError{Kind: ErrInvalidApplication}
	}
}

// Parse converts the complete input into a Term. Anything left over
// after the first term, other than whitespace, makes it fail.
func Parse(input string) (Term, error) {
	p := NewParser(input)
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if _, ok := p.peek(); ok {
		return nil, &ParseError{Kind: ErrInvalidApplication}
	}
	return term, nil
}
