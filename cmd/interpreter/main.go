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

// Program interpreter evaluates lambda terms from a file or from standard
// input, one term per line. Blank lines and lines starting with a hash
// are skipped.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"janouch.name/lam/lam"
)

var limit = flag.Int("limit", 0,
	"maximum reduction steps per term, 0 for no limit")

func evalLine(input string) error {
	term, err := lam.Parse(input)
	if err != nil {
		return err
	}
	if *limit > 0 {
		result, ok := lam.EvalLimit(term, *limit)
		if !ok {
			return fmt.Errorf("no normal form within %d steps: %s",
				*limit, result)
		}
		fmt.Printf("%s => %s\n", term, result)
		return nil
	}
	fmt.Printf("%s => %s\n", term, lam.Eval(term))
	return nil
}

func main() {
	flag.Parse()

	var script []byte
	var err error
	if flag.NArg() < 1 {
		script, err = io.ReadAll(os.Stdin)
	} else {
		script, err = os.ReadFile(flag.Arg(0))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ok := true
	for i, line := range strings.Split(string(script), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := evalLine(line); err != nil {
			fmt.Fprintf(os.Stderr, "%d: %s\n", i+1, err)
			ok = false
		}
	}
	if !ok {
		os.Exit(1)
	}
}
