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
	"testing"
	"time"

	"golang.org/x/exp/slices"
)

func TestFreeVars(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"x", []string{"x"}},
		{"λx. x", nil},
		{"λx. (x y)", []string{"y"}},
		{"λx. λx. x", nil},
		{"((x y) λz. (z x))", []string{"x", "y"}},
		{"(x λx. x)", []string{"x"}},
	}
	for _, test := range tests {
		free := FreeVars(mustParse(t, test.input))
		if !slices.Equal(free, test.want) {
			t.Errorf("FreeVars(%s) = %v, want %v", test.input, free, test.want)
		}
	}
}

func TestFreshName(t *testing.T) {
	if name := freshName("z", []string{"z", "y"}); name != "z_1" {
		t.Errorf("got %q, want z_1", name)
	}
	if name := freshName("z", []string{"z", "z_1", "z_2"}); name != "z_3" {
		t.Errorf("got %q, want z_3", name)
	}
}

func TestSubst(t *testing.T) {
	identity := Abs{"z", Var{"z"}}
	tests := []struct {
		term Term
		name string
		repl Term
		want Term
	}{
		{Var{"x"}, "x", identity, identity},
		{Var{"y"}, "x", identity, Var{"y"}},
		{App{Var{"x"}, Var{"x"}}, "x", Var{"y"},
			App{Var{"y"}, Var{"y"}}},
		// The binder shadows the substituted name.
		{Abs{"x", Var{"x"}}, "x", Var{"y"}, Abs{"x", Var{"x"}}},
		{Abs{"z", Var{"x"}}, "x", Var{"y"}, Abs{"z", Var{"y"}}},
	}
	for _, test := range tests {
		got := Subst(test.term, test.name, test.repl)
		if got != test.want {
			t.Errorf("Subst(%s, %s, %s) = %s, want %s",
				test.term, test.name, test.repl, got, test.want)
		}
	}
}

// Substituting a term with a free z under a binder of z must rename the
// binder, so that the originally free z stays free.
func TestSubstCapture(t *testing.T) {
	got := Subst(Abs{"z", Var{"y"}}, "y", Var{"z"})
	want := Abs{"z_1", Var{"z"}}
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

// A replacement whose z is bound internally captures nothing,
// and the binder keeps its name.
func TestSubstBoundReplacement(t *testing.T) {
	got := Subst(Abs{"z", Var{"y"}}, "y", Abs{"z", Var{"z"}})
	want := Abs{"z", Abs{"z", Var{"z"}}}
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if free := FreeVars(got); len(free) != 0 {
		t.Errorf("unexpected free variables %v", free)
	}
}

// The freshly picked name must avoid the binder's body as well.
func TestSubstFreshAvoidsBody(t *testing.T) {
	got := Subst(Abs{"z", App{Var{"y"}, Var{"z_1"}}}, "y", Var{"z"})
	want := Abs{"z_2", App{Var{"z"}, Var{"z_1"}}}
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestStep(t *testing.T) {
	term := mustParse(t, "((λx. x) y)")
	reduced, ok := Step(term)
	if !ok || reduced != (Var{"y"}) {
		t.Errorf("got %s, %v", reduced, ok)
	}
	if _, ok := Step(Var{"y"}); ok {
		t.Error("variable is not reducible")
	}
}

func TestEvalIdentity(t *testing.T) {
	term := mustParse(t, "((λx. x) (λy. y))")
	if want := (App{Abs{"x", Var{"x"}}, Abs{"y", Var{"y"}}}); term != want {
		t.Fatalf("parsed as %s", term)
	}
	if rendered := term.String(); rendered != "((λx. x) (λy. y))" {
		t.Errorf("rendered as %q", rendered)
	}

	result := Eval(term)
	if want := (Abs{"y", Var{"y"}}); result != want {
		t.Errorf("evaluated to %s, want %s", result, want)
	}
	if rendered := result.String(); rendered != "λy. y" {
		t.Errorf("result rendered as %q", rendered)
	}
}

// Renaming during reduction: ((λx. λy. x) y) must not capture the free y.
func TestEvalCapture(t *testing.T) {
	result := Eval(mustParse(t, "((λx. λy. x) y)"))
	if want := (Abs{"y_1", Var{"y"}}); result != want {
		t.Errorf("got %s, want %s", result, want)
	}
}

func TestEvalDeterminism(t *testing.T) {
	term := mustParse(t,
		"((((λx. λy. λz. ((x z) (y z))) (λa. λb. a)) (λc. λd. c)) e)")
	first := Eval(term)
	if first != (Var{"e"}) {
		t.Errorf("S K K e = %s, want e", first)
	}
	if second := Eval(term); second != first {
		t.Errorf("repeated evaluation gave %s, then %s", first, second)
	}
}

// Terms without a redex evaluate to themselves.
func TestEvalNormalForm(t *testing.T) {
	for _, input := range []string{
		"x",
		"λx. x",
		"(x y)",
		"λf. λx. (f (f x))",
		"(f (λy. y))",
		"((x λy. y) z)",
	} {
		term := mustParse(t, input)
		if result := Eval(term); result != term {
			t.Errorf("Eval(%s) = %s, want the term unchanged", term, result)
		}
	}
}

// Church numeral successor: succ 1 = 2.
func TestEvalChurchSuccessor(t *testing.T) {
	succ := mustParse(t, "λn. λf. λx. (f ((n f) x))")
	one := mustParse(t, "λf. λx. (f x)")
	two := mustParse(t, "λf. λx. (f (f x))")
	if result := Eval(App{Fn: succ, Arg: one}); result != two {
		t.Errorf("succ 1 = %s, want %s", result, two)
	}
}

// Normal order reduces the outermost redex first, so an unused diverging
// argument is simply discarded. Call-by-value would loop here.
func TestEvalDiscardsDivergingArgument(t *testing.T) {
	term := mustParse(t, "((λx. λy. y) ((λx. (x x)) (λx. (x x))))")
	if result := Eval(term); result != (Abs{"y", Var{"y"}}) {
		t.Errorf("got %s, want λy. y", result)
	}
}

// Ω has no normal form: Eval must still be running when the timeout fires.
func TestEvalOmegaDiverges(t *testing.T) {
	omega := mustParse(t, "((λx. (x x)) (λx. (x x)))")

	done := make(chan Term, 1)
	go func() { done <- Eval(omega) }()

	select {
	case result := <-done:
		t.Fatalf("Ω reduced to %s, expected divergence", result)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestEvalLimit(t *testing.T) {
	term := mustParse(t, "((λx. x) y)")
	if result, ok := EvalLimit(term, 1); !ok || result != (Var{"y"}) {
		t.Errorf("got %s, %v", result, ok)
	}
	if result, ok := EvalLimit(Var{"y"}, 0); !ok || result != (Var{"y"}) {
		t.Errorf("got %s, %v", result, ok)
	}

	// Ω reduces to itself, step after step, and never runs out of redexes.
	omega := mustParse(t, "((λx. (x x)) (λx. (x x)))")
	if result, ok := EvalLimit(omega, 100); ok {
		t.Errorf("Ω claimed to have a normal form: %s", result)
	} else if result != omega {
		t.Errorf("Ω stepped to %s, want itself", result)
	}
}
