package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jakechorley/nurse-roster/pkg/core/errs"
	"github.com/jakechorley/nurse-roster/pkg/core/model"
)

// lineReader hands out the non-blank lines of an instance file, split into fields
type lineReader struct {
	source string
	sc     *bufio.Scanner
	line   int
	fields []string
	peeked bool
	eof    bool
}

func newLineReader(r io.Reader, source string) *lineReader {
	return &lineReader{source: source, sc: bufio.NewScanner(r)}
}

func (lr *lineReader) location() string {
	if lr.line == 0 {
		return lr.source
	}
	return fmt.Sprintf("%s:%d", lr.source, lr.line)
}

func (lr *lineReader) errorf(format string, args ...any) error {
	return errs.MalformedInput(lr.location(), format, args...)
}

func (lr *lineReader) scan() error {
	for lr.sc.Scan() {
		lr.line++
		fields := strings.Fields(lr.sc.Text())
		if len(fields) > 0 {
			lr.fields = fields
			return nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", lr.source, err)
	}
	lr.eof = true
	lr.fields = nil
	return nil
}

// next returns the fields of the next non-blank line, failing at end of input
func (lr *lineReader) next(what string) ([]string, error) {
	fields, ok, err := lr.tryNext()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, lr.errorf("unexpected end of file, expected %s", what)
	}
	return fields, nil
}

// tryNext is next without failing at end of input
func (lr *lineReader) tryNext() ([]string, bool, error) {
	if lr.peeked {
		lr.peeked = false
		return lr.fields, !lr.eof, nil
	}
	if err := lr.scan(); err != nil {
		return nil, false, err
	}
	return lr.fields, !lr.eof, nil
}

// peek returns the next non-blank line without consuming it
func (lr *lineReader) peek() ([]string, bool, error) {
	if !lr.peeked {
		if err := lr.scan(); err != nil {
			return nil, false, err
		}
		lr.peeked = true
	}
	return lr.fields, !lr.eof, nil
}

// keyword consumes a line holding exactly keyword
func (lr *lineReader) keyword(keyword string) error {
	fields, err := lr.next(keyword)
	if err != nil {
		return err
	}
	if len(fields) != 1 || fields[0] != keyword {
		return lr.errorf("expected %s, got %q", keyword, strings.Join(fields, " "))
	}
	return nil
}

// assignment consumes a "KEY = value" line and returns value
func (lr *lineReader) assignment(key string) (string, error) {
	fields, err := lr.next(key)
	if err != nil {
		return "", err
	}
	// Accept both "KEY = v" and "KEY= v" / "KEY =v"
	joined := strings.Join(fields, " ")
	name, value, found := strings.Cut(joined, "=")
	if !found || strings.TrimSpace(name) != key {
		return "", lr.errorf("expected %s = <value>, got %q", key, joined)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", lr.errorf("missing value for %s", key)
	}
	return value, nil
}

// count consumes a "KEY = n" line with n >= 0
func (lr *lineReader) count(key string) (int, error) {
	value, err := lr.assignment(key)
	if err != nil {
		return 0, err
	}
	n, err := lr.atoi(value, key)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, lr.errorf("negative %s %d", key, n)
	}
	return n, nil
}

func (lr *lineReader) atoi(s, what string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, lr.errorf("%s: %q is not an integer", what, s)
	}
	return n, nil
}

// pair parses "(a,b)"
func (lr *lineReader) pair(s, what string) (int, int, error) {
	inner, ok := strings.CutPrefix(s, "(")
	if ok {
		inner, ok = strings.CutSuffix(inner, ")")
	}
	if !ok {
		return 0, 0, lr.errorf("%s: expected (a,b), got %q", what, s)
	}
	a, b, found := strings.Cut(inner, ",")
	if !found {
		return 0, 0, lr.errorf("%s: expected (a,b), got %q", what, s)
	}
	first, err := lr.atoi(strings.TrimSpace(a), what)
	if err != nil {
		return 0, 0, err
	}
	second, err := lr.atoi(strings.TrimSpace(b), what)
	if err != nil {
		return 0, 0, err
	}
	return first, second, nil
}

func (lr *lineReader) bounds(s, what string) (model.Bounds, error) {
	min, max, err := lr.pair(s, what)
	if err != nil {
		return model.Bounds{}, err
	}
	return model.Bounds{Min: min, Max: max}, nil
}

// expectEnd fails if anything but blank lines remain
func (lr *lineReader) expectEnd() error {
	fields, ok, err := lr.tryNext()
	if err != nil {
		return err
	}
	if ok {
		return lr.errorf("unexpected trailing content %q", strings.Join(fields, " "))
	}
	return nil
}

// header reads the "<weekIndex> <scenarioName>" line shared by history and
// solution files and checks it against scn
func (lr *lineReader) header(scn *model.Scenario) (int, error) {
	fields, err := lr.next("<week> <scenario>")
	if err != nil {
		return 0, err
	}
	if len(fields) != 2 {
		return 0, lr.errorf("expected <week> <scenario>, got %q", strings.Join(fields, " "))
	}
	week, err := lr.atoi(fields[0], "week")
	if err != nil {
		return 0, err
	}
	if fields[1] != scn.Name() {
		return 0, lr.errorf("file is for scenario %s, not %s", fields[1], scn.Name())
	}
	if week < 0 || week >= scn.NbWeeks() {
		return 0, lr.errorf("week %d outside horizon [0,%d)", week, scn.NbWeeks())
	}
	return week, nil
}
