package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/boristopalov/curbside/pkg/config"
	"github.com/boristopalov/curbside/pkg/core"
)

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (p *prompter) ask() (string, bool) {
	fmt.Fprint(p.out, "> ")
	if !p.in.Scan() {
		return "", false
	}
	return p.in.Text(), true
}

// day asks until the answer names a collection day
func (p *prompter) day() (core.CollectionDay, error) {
	fmt.Fprintln(p.out, "Which waste collector? Garbage or Recycle")
	for {
		answer, ok := p.ask()
		if !ok {
			return 0, fmt.Errorf("no collection day given: %w", io.ErrUnexpectedEOF)
		}
		if day, ok := parseDayAnswer(answer); ok {
			return day, nil
		}
		fmt.Fprintln(p.out, "Please type 'Garbage' or 'Recycle'.")
	}
}

// locations asks once and falls back to the default street length
func (p *prompter) locations() int {
	fmt.Fprintln(p.out, "How long location?")
	answer, _ := p.ask()
	n, ok := parseLocationsAnswer(answer)
	if !ok {
		fmt.Fprintf(p.out, "Invalid number. Defaulting to %d.\n", config.DefaultLocations)
	}
	return n
}

func parseDayAnswer(s string) (core.CollectionDay, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "g"):
		return core.GarbageDay, true
	case strings.HasPrefix(s, "r"):
		return core.RecycleDay, true
	}
	return 0, false
}

func parseLocationsAnswer(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return config.DefaultLocations, false
	}
	return n, true
}
