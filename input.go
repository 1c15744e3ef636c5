package arginput

import (
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"

	"arginput/internal/iterx"
)

// Input returns a stream of all the named inputs chained together, read
// in argument order.
//
// With an empty paths slice, the stream is stdin itself. Otherwise every
// path is opened eagerly, up front; the path "-" resolves to stdin
// instead of a file of that name. If any path fails to open, Input
// returns a nil stream and an *[AggregateError] listing every failure —
// resolution is all-or-nothing, and inputs that did open are closed
// again before returning.
//
// The stream is single-pass and not safe for concurrent use. Each input
// is closed as it is drained; Close releases the rest. Stdin is never
// closed.
func Input(paths []string) (io.ReadCloser, error) {
	if len(paths) == 0 {
		return io.NopCloser(os.Stdin), nil
	}

	// The chain owns each handle once resolution succeeds; until then
	// track them here so a failed resolution releases the ones that
	// did open.
	var opened []io.ReadCloser
	readers, failures := iterx.AttemptMap(paths, func(path string) (io.ReadCloser, error) {
		r, err := openArg(path)
		if err != nil {
			return nil, err
		}
		opened = append(opened, r)
		return r, nil
	})
	if len(failures) > 0 {
		for _, r := range opened {
			r.Close()
		}
		return nil, newAggregateError(failures)
	}
	return &chainReader{readers: readers}, nil
}

// InputLines returns the chained input of [Input] split into lines, per
// the contract of [Lines]. The underlying files are released when the
// iteration ends, whether it ran to exhaustion or was broken out of.
func InputLines(paths []string) (iter.Seq2[string, error], error) {
	r, err := Input(paths)
	if err != nil {
		return nil, err
	}
	lines := Lines(r)
	return func(yield func(string, error) bool) {
		defer r.Close()
		lines(yield)
	}, nil
}

// Argf acts like [Input], but pulls the paths from the command line.
//
// Argf assumes the argument list is undisturbed — os.Args[0] is the
// executable name and is skipped — and that every remaining argument is
// a file path or "-". No flag syntax is recognized: a flag left in
// os.Args is treated as a literal filename and will fail to open. Parse
// flags first and call [Input] with what remains if that is not the
// case.
func Argf() (io.ReadCloser, error) {
	return Input(os.Args[1:])
}

// ArgfLines acts like [InputLines], but pulls the paths from the
// command line. See [Argf] for the caveats.
func ArgfLines() (iter.Seq2[string, error], error) {
	return InputLines(os.Args[1:])
}

// openArg resolves one argument to a readable handle. Each "-" yields a
// fresh handle over the same process stdin.
func openArg(arg string) (io.ReadCloser, error) {
	if arg == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(arg)
	if err != nil {
		// os.Open wraps the cause in a *fs.PathError; OpenError
		// already records the path, so keep only the cause.
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return nil, &OpenError{Path: arg, Err: err}
	}
	return f, nil
}
