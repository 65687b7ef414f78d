package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const menu = `* Select one of the functions below to run
- 1. Finding shortest paths between 2 bus stops
- 2. Fuzzy or accurate search for a bus stop
- 3. Searching for all trips with a given arrival time
`

// interactive runs the numbered menu until "exit" or end of input
func (a *app) interactive(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	ask := func(prompt string) (string, bool) {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			return "", false
		}
		return strings.TrimSpace(sc.Text()), true
	}

	fmt.Fprint(out, menu)
	for {
		choice, ok := ask("Type 1, 2, 3 or exit: ")
		if !ok || strings.EqualFold(choice, "exit") {
			break
		}
		var o options
		call := ""
		switch choice {
		case "1":
			call = "route"
			if o.from, ok = ask("Enter start bus stop: "); !ok {
				break
			}
			o.to, ok = ask("Enter end bus stop: ")
		case "2":
			call = "search"
			o.query, ok = ask("Enter the bus stop name: ")
		case "3":
			call = "arrivals"
			o.at, ok = ask("Enter the arrival time in such format as HH:MM:SS : ")
		default:
			fmt.Fprintln(out, "Input must be a digit of 1, 2, 3 or exit")
			continue
		}
		if !ok {
			break
		}
		res, err := a.dispatch(call, &o)
		if err != nil {
			fmt.Fprintf(out, "%v\nPlease try again\n", err)
			continue
		}
		if _, err := out.Write(res); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, "Exit")
	return sc.Err()
}
