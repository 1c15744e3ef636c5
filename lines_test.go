package arginput_test

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"arginput"

	"github.com/stretchr/testify/require"
)

// scriptReader plays back a fixed sequence of Read results, then EOF.
type scriptReader struct {
	steps []struct {
		data string
		err  error
	}
}

func (s *scriptReader) Read(p []byte) (int, error) {
	if len(s.steps) == 0 {
		return 0, io.EOF
	}
	step := s.steps[0]
	s.steps = s.steps[1:]
	return copy(p, step.data), step.err
}

func TestLines_StripsTerminators(t *testing.T) {
	lines := arginput.Lines(strings.NewReader("unix\nwindows\r\nold mac\r still one line\n"))

	vals, errs := collectLines(lines)
	require.Empty(t, errs)
	require.Equal(t, []string{"unix", "windows", "old mac\r still one line"}, vals)
}

func TestLines_YieldsFinalUnterminatedLine(t *testing.T) {
	lines := arginput.Lines(strings.NewReader("complete\ndangling"))

	vals, errs := collectLines(lines)
	require.Empty(t, errs)
	require.Equal(t, []string{"complete", "dangling"}, vals)
}

func TestLines_EmptyStreamYieldsNothing(t *testing.T) {
	vals, errs := collectLines(arginput.Lines(strings.NewReader("")))
	require.Empty(t, vals)
	require.Empty(t, errs)
}

func TestLines_ContinuesAfterReadError(t *testing.T) {
	src := &scriptReader{}
	src.steps = []struct {
		data string
		err  error
	}{
		{data: "before\n"},
		{err: fmt.Errorf("transient read failure")},
		{data: "after\n"},
	}

	vals, errs := collectLines(arginput.Lines(src))

	require.Equal(t, []string{"before", "after"}, vals)
	require.Len(t, errs, 1)
	require.EqualError(t, errs[0], "transient read failure")
}

func TestLines_StopsWhenConsumerBreaks(t *testing.T) {
	lines := arginput.Lines(strings.NewReader("one\ntwo\nthree\n"))

	var got []string
	for line, err := range lines {
		require.NoError(t, err)
		got = append(got, line)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []string{"one", "two"}, got)
}

func TestLines_NotRestartableAfterExhaustion(t *testing.T) {
	lines := arginput.Lines(strings.NewReader("only\npass\n"))

	first, errs := collectLines(lines)
	require.Empty(t, errs)
	require.Equal(t, []string{"only", "pass"}, first)

	second, errs := collectLines(lines)
	require.Empty(t, errs)
	require.Empty(t, second)
}
