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

package lam

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// --- Evaluation --------------------------------------------------------------

// FreeVars returns the free variables of a term,
// in the order of their first occurrence.
func FreeVars(t Term) []string {
	return appendFreeVars(nil, t, nil)
}

func appendFreeVars(free []string, t Term, bound []string) []string {
	switch t := t.(type) {
	case Var:
		if !slices.Contains(bound, t.Name) && !slices.Contains(free, t.Name) {
			free = append(free, t.Name)
		}
	case Abs:
		free = appendFreeVars(free, t.Body, append(bound, t.Param))
	case App:
		free = appendFreeVars(free, t.Fn, bound)
		free = appendFreeVars(free, t.Arg, bound)
	}
	return free
}

// freshName derives an identifier from base that doesn't occur in avoid.
// It stays within the identifier alphabet, so that a renamed term can
// still make the round trip through the parser.
func freshName(base string, avoid []string) string {
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s_%d", base, i)
		if !slices.Contains(avoid, name) {
			return name
		}
	}
}

// Subst replaces free occurrences of name within t by repl.
// A binder that would capture a free variable of repl is renamed first,
// to a name free in neither its body nor the replacement.
func Subst(t Term, name string, repl Term) Term {
	switch t := t.(type) {
	case Var:
		if t.Name == name {
			return repl
		}
		return t
	case App:
		return App{
			Fn:  Subst(t.Fn, name, repl),
			Arg: Subst(t.Arg, name, repl),
		}
	case Abs:
		if t.Param == name {
			// The name is shadowed within the body.
			return t
		}
		if slices.Contains(FreeVars(repl), t.Param) {
			avoid := append(FreeVars(t.Body), FreeVars(repl)...)
			param := freshName(t.Param, avoid)
			body := Subst(t.Body, t.Param, Var{Name: param})
			return Abs{Param: param, Body: Subst(body, name, repl)}
		}
		return Abs{Param: t.Param, Body: Subst(t.Body, name, repl)}
	}
	panic("unknown term variant")
}

// Step performs a single reduction step on the leftmost outermost redex,
// and reports whether it found any. A term it reports false for is in
// beta-normal form.
func Step(t Term) (Term, bool) {
	switch t := t.(type) {
	case App:
		if abs, ok := t.Fn.(Abs); ok {
			return Subst(abs.Body, abs.Param, t.Arg), true
		}
		if fn, ok := Step(t.Fn); ok {
			return App{Fn: fn, Arg: t.Arg}, true
		}
		if arg, ok := Step(t.Arg); ok {
			return App{Fn: t.Fn, Arg: arg}, true
		}
	case Abs:
		if body, ok := Step(t.Body); ok {
			return Abs{Param: t.Param, Body: body}, true
		}
	}
	return t, false
}

// Eval reduces a term to its beta-normal form in normal order,
// which finds the normal form whenever one exists. It does not return
// when the term has none.
func Eval(t Term) Term {
	for {
		next, ok := Step(t)
		if !ok {
			return t
		}
		t = next
	}
}

// EvalLimit reduces a term for at most limit steps, and reports whether
// it reached the beta-normal form within that budget. The term as reduced
// so far is returned either way.
func EvalLimit(t Term, limit int) (Term, bool) {
	for ; limit > 0; limit-- {
		next, ok := Step(t)
		if !ok {
			return t, true
		}
		t = next
	}
	_, more := Step(t)
	return t, !more
}
