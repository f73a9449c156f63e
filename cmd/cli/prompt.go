package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rhyrak/section-planner/internal/scheduler"
)

// prompt asks for the request one field at a time.
func prompt(in io.Reader, out io.Writer) (scheduler.Request, error) {
	var req scheduler.Request
	sc := bufio.NewScanner(in)

	ask := func(label string) (string, error) {
		fmt.Fprintf(out, "| %-18s | ", label)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return strings.TrimSpace(sc.Text()), nil
	}
	askInt := func(label string) (int, error) {
		raw, err := ask(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("%s: %q is not a number", label, raw)
		}
		return n, nil
	}

	count, err := askInt("No. courses")
	if err != nil {
		return req, err
	}
	for i := 0; i < count; i++ {
		name, err := ask(fmt.Sprintf("Course %d", i+1))
		if err != nil {
			return req, err
		}
		req.Courses = append(req.Courses, name)
	}

	avoid, err := ask("Avoid instructors")
	if err != nil {
		return req, err
	}
	req.Blacklist = splitList(avoid)

	prefer, err := ask("Prefer instructors")
	if err != nil {
		return req, err
	}
	req.Preferred = splitList(prefer)

	if req.StartHour, err = askInt("From"); err != nil {
		return req, err
	}
	if req.EndHour, err = askInt("To"); err != nil {
		return req, err
	}
	return req, nil
}

func splitList(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
