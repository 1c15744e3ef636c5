package arginput

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// Lines splits r into newline-delimited lines behind a buffered reader
// and returns them as a forward-only sequence of (line, error) pairs.
//
// Line terminators are stripped: a trailing "\n", and a "\r" before it
// if the source used CRLF endings. A final line without a terminator is
// still yielded.
//
// Read failures are per-line, not stream-fatal: a failed read yields one
// ("", err) element and iteration continues with whatever the reader
// produces next, mirroring bufio.Reader's own behavior of reporting an
// error once and then reading on. Bytes read before the failure on that
// line are discarded.
//
// The sequence is finite and single-pass. Ranging over it a second time
// finds the reader already exhausted and yields nothing; it does not
// re-read or reopen anything.
func Lines(r io.Reader) iter.Seq2[string, error] {
	br := bufio.NewReader(r)
	return func(yield func(string, error) bool) {
		for {
			line, err := br.ReadString('\n')
			switch {
			case err == nil:
				if !yield(trimEOL(line), nil) {
					return
				}
			case err == io.EOF:
				if line != "" && !yield(trimEOL(line), nil) {
					return
				}
				return
			default:
				if !yield("", err) {
					return
				}
			}
		}
	}
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
