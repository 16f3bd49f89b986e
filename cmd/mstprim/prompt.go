// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// errNoAnswer is returned when stdin ends before a prompt is answered.
var errNoAnswer = errors.New("no answer on standard input")

// prompter asks for whitespace-delimited tokens on an interactive terminal.
// One scanner is shared across prompts so typed-ahead answers are kept.
type prompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	return &prompter{sc: sc, out: out}
}

// ask writes question and returns the next token from the input.
func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", errNoAnswer
	}

	return p.sc.Text(), nil
}
