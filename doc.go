/*
Package arginput treats the files named on the command line, and stdin,
as one big concatenated input stream, in the manner of Ruby's ARGF.

[Argf] pulls input from the command line arguments, no frills, no
questions asked, and [ArgfLines] gives an iterator over all lines of
command line input. Both assume that the arguments contain only file
names (or the stdin sentinel "-"). If you need more control, for
example because a flag parser already consumed part of the argument
list, pass the remaining paths to [Input] or [InputLines] yourself.

If no paths are given at all, input comes solely from stdin. Otherwise
stdin is ignored and the contents of every named file are concatenated
in argument order. The argument "-" is special and is an alias for
stdin; it can be used to splice stdin back in between files, and may
appear more than once.

Resolution is atomic: every path is opened up front, and if any of them
fail to open, no stream is returned at all. Instead the error is an
[AggregateError] listing every failed path with its cause, not just the
first one, so a caller naming five bad files sees five errors in one
shot:

	lines, err := arginput.InputLines(paths)
	if err != nil {
		var agg *arginput.AggregateError
		if errors.As(err, &agg) {
			for _, open := range agg.Errors {
				fmt.Fprintln(os.Stderr, open)
			}
		}
		os.Exit(1)
	}
	for line, err := range lines {
		if err != nil {
			continue
		}
		process(line)
	}

The returned stream is forward-only and single-pass: it cannot seek,
never re-reads an input, and once exhausted yields nothing further.
Each file is closed as soon as it is drained; closing the stream early
releases the rest. Stdin is never closed.
*/
package arginput
