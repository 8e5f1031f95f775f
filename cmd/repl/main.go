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

// Program repl is an interactive evaluator for the untyped lambda calculus.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	// This library is rather simplistic but it's going to serve us fine.
	"github.com/peterh/liner"

	"janouch.name/lam/lam"
)

var limit = flag.Int("limit", 0,
	"maximum reduction steps per term, 0 for no limit")

func run(term lam.Term) {
	fmt.Println(term)
	if *limit <= 0 {
		// Faithful to the calculus: a term without a normal form,
		// such as ((λx. (x x)) (λx. (x x))), keeps us spinning.
		fmt.Printf("=> %s\n", lam.Eval(term))
		return
	}
	if result, ok := lam.EvalLimit(term, *limit); ok {
		fmt.Printf("=> %s\n", result)
	} else {
		fmt.Printf("\x1b[31mno normal form within %d steps: %s\x1b[0m\n",
			*limit, result)
	}
}

func main() {
	flag.Parse()

	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(true)

	for {
		input, err := line.Prompt("λ> ")
		if err == nil {
			if strings.TrimSpace(input) == "" {
				continue
			}
			line.AppendHistory(input)

			if term, err := lam.Parse(input); err != nil {
				fmt.Printf("\x1b[31m%s: %s\x1b[0m\n", "parse error", err)
			} else {
				run(term)
			}
		} else if err == liner.ErrPromptAborted || err == io.EOF {
			break
		} else {
			fmt.Printf("\x1b[31m%s: %s\x1b[0m\n", "error", err)
		}
	}
	os.Stdout.WriteString("\n")
}
