package templating

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Line bounds, in bytes, including the line terminator.
// A line reaching BufSize-1 bytes is rejected.
const (
	TemplateBufSize = 8192
	ConfigBufSize   = 1024
)

// ErrLineTooLong reports a line exceeding the bound
// given to EachLine.
var ErrLineTooLong = errors.New("line too long")

// EachLine reads rd line by line and calls fn with each
// raw line, terminator included. The final line may lack
// a terminator. A line of bufSize-1 bytes or more stops
// the scan with ErrLineTooLong. Errors returned by fn
// are passed through unchanged.
func EachLine(
	rd io.Reader,
	bufSize int,
	fn func(line string) error,
) error {
	br := bufio.NewReaderSize(rd, bufSize)

	for num := 1; ; num++ {
		raw, err := br.ReadSlice('\n')
		if len(raw) >= bufSize-1 {
			return fmt.Errorf(
				"line %d: %w (limit %d bytes)",
				num, ErrLineTooLong, bufSize-2,
			)
		}

		if len(raw) > 0 {
			if fnErr := fn(string(raw)); fnErr != nil {
				return fnErr
			}
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("line %d: %w", num, err)
		}
	}
}
