package arginput

import (
	"errors"
	"io"
)

// chainReader is the logical concatenation of an ordered list of readers.
// Read drains the current reader to exhaustion before touching the next;
// io.EOF surfaces only once every reader is spent. The walk is a flat
// pass over the slice, not a nest of pairwise wrappers.
type chainReader struct {
	readers []io.ReadCloser
}

func (c *chainReader) Read(p []byte) (n int, err error) {
	for len(c.readers) > 0 {
		n, err = c.readers[0].Read(p)
		if n > 0 || err != io.EOF {
			if err == io.EOF {
				// More readers may remain; don't surface EOF yet.
				err = nil
			}
			return n, err
		}
		// Current reader is drained; release it and move on. A close
		// failure on a fully-read input leaves nothing actionable.
		_ = c.readers[0].Close()
		c.readers = c.readers[1:]
	}
	return 0, io.EOF
}

// Close releases every reader not yet drained. Stdin handles enter the
// chain as NopClosers, so process stdin is never closed here. Closing
// twice is a no-op; reading after Close yields io.EOF.
func (c *chainReader) Close() error {
	var errs []error
	for _, r := range c.readers {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.readers = nil
	return errors.Join(errs...)
}
