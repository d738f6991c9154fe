package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/ghost91-/nimgame/internal/apperror"
)

// Reader parses whitespace-separated non-negative integers from an input
// stream, one token per call.
type Reader struct {
	scanner *bufio.Scanner
	output  io.Writer
}

func NewReader(input io.Reader, output io.Writer) *Reader {
	scanner := bufio.NewScanner(input)
	scanner.Split(bufio.ScanWords)

	return &Reader{
		scanner: scanner,
		output:  output,
	}
}

// ReadPositiveInteger - reads the next token and interprets it as a
// non-negative integer, failing with ErrParse otherwise. An exhausted input
// stream yields io.EOF so callers can tell "bad input" from "no more input".
func (that *Reader) ReadPositiveInteger() (int, error) {
	fmt.Fprint(that.output, "> ")

	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}

		return 0, io.EOF
	}

	token := that.scanner.Text()

	value, err := strconv.Atoi(token)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w: %q", apperror.ErrParse, token)
	}

	return value, nil
}
