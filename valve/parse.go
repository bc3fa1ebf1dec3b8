package valve

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// lineRe matches one scan line. Both the plural and singular phrasing of
// the tunnel list are accepted.
var lineRe = regexp.MustCompile(`^Valve (\S+) has flow rate=(-?\d+); tunnels? leads? to valves? (.+)$`)

// Parse reads a valve scan from r, one valve per line, and returns the
// resulting Graph. Blank lines are skipped. Parse does not call Validate:
// closure depends on the whole input and is checked by the caller together
// with the start valve.
//
// Errors: ErrMalformedLine (wrapped with the 1-based line number), any
// AddValve error, or the reader's error.
func Parse(r io.Reader) (*Graph, error) {
	g := NewGraph()
	sc := bufio.NewScanner(r)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		m := lineRe.FindStringSubmatch(text)
		if m == nil {
			return nil, fmt.Errorf("%w %d: %q", ErrMalformedLine, line, text)
		}
		rate, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("%w %d: flow rate %q: %v", ErrMalformedLine, line, m[2], err)
		}

		var tunnels []string
		for _, t := range strings.Split(m[3], ",") {
			if t = strings.TrimSpace(t); t != "" {
				tunnels = append(tunnels, t)
			}
		}
		if err = g.AddValve(m[1], rate, tunnels...); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*Graph, error) {
	return Parse(strings.NewReader(s))
}
