package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

var titleStyle = color.New(color.Bold)

// Render formats a 1-based numbered menu for the given items.
// It is a pure function of its inputs so rendering can be tested
// independently of prompting.
func Render(title string, items []string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Sprint(title))
	b.WriteString("\n")
	for i, item := range items {
		fmt.Fprintf(&b, "%d) %s\n", i+1, item)
	}
	return b.String()
}

// ParseSelection validates a raw selection line against a menu of n items
// and returns the zero-based index it refers to. Empty, non-numeric, and
// out-of-range input all fail.
func ParseSelection(input string, n int) (int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, fmt.Errorf("invalid selection: empty input")
	}
	k, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid selection %q: not a number", s)
	}
	if k < 1 || k > n {
		return 0, fmt.Errorf("invalid selection %d: must be between 1 and %d", k, n)
	}
	return k - 1, nil
}

// Select renders a menu, reads one line from in, and returns the
// zero-based index of the chosen item.
func Select(in io.Reader, out io.Writer, title string, items []string) (int, error) {
	fmt.Fprint(out, Render(title, items))
	fmt.Fprintf(out, "Select [1-%d]: ", len(items))
	line, err := readLine(in)
	if err != nil {
		return 0, err
	}
	return ParseSelection(line, len(items))
}

// Confirm prompts for a yes/no answer. If assumeYes is true it returns
// true without prompting.
func Confirm(in io.Reader, out io.Writer, question string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}
	fmt.Fprintf(out, "%s [y/N]: ", strings.TrimSpace(question))
	line, err := readLine(in)
	if err != nil {
		return false, err
	}
	ans := strings.ToLower(strings.TrimSpace(line))
	return ans == "y" || ans == "yes", nil
}

// readLine reads a single line. Callers that prompt more than once from
// the same stream must pass a *bufio.Reader so buffered input is not lost
// between prompts.
func readLine(in io.Reader) (string, error) {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return line, nil
}
