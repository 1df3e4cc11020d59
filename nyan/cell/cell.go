// Package cell pulls the per-cell background colors out of the HTML table
// that GIMP writes when an image is exported as HTML. Every pixel becomes one
// line of the form
//
//	<TD BGCOLOR=#ff99ff>
//
// and only those lines matter; the rest of the markup is ignored.
package cell

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Marker is the substring that identifies a colored table cell.
const Marker = "BGCOLOR"

// CodeLength is the number of hex digits in a cell color code.
const CodeLength = 6

// the leading .* is greedy, so the last cell of a joined line wins
var cellPattern = regexp.MustCompile(`.*<TD +BGCOLOR=#([0-9a-f]*)>`)

// MalformedCellError is returned when a line flagged as a colored cell does not
// have the expected structure.
type MalformedCellError struct {
	Line string
}

func (e *MalformedCellError) Error() string {
	return fmt.Sprintf("did not parse: %q", e.Line)
}

// ReadLines reads all lines from r, without their line terminators. Lines
// have no length limit, so minified single-line exports are read whole.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read lines: %w", err)
		}
	}
}

// Filter returns the lines containing Marker, in their original order.
func Filter(lines []string) []string {
	cells := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(line, Marker) {
			cells = append(cells, line)
		}
	}
	return cells
}

// Extract returns the hex color code of a single cell line.
func Extract(line string) (string, error) {
	m := cellPattern.FindStringSubmatch(line)
	if m == nil || len(m[1]) != CodeLength {
		return "", &MalformedCellError{Line: line}
	}
	return m[1], nil
}

// ExtractAll extracts the color codes of all lines, stopping at the first
// malformed one.
func ExtractAll(lines []string) ([]string, error) {
	codes := make([]string, len(lines))
	for i, line := range lines {
		code, err := Extract(line)
		if err != nil {
			return nil, err
		}
		codes[i] = code
	}
	return codes, nil
}
