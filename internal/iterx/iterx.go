// Package iterx provides small helpers over ordered in-memory sequences.
package iterx

// AttemptMap applies fn to every element of items, in order, exactly once
// per element. If every application succeeds, the successes are returned in
// input order. If any application fails, all successes are discarded and
// every failure is returned, also in input order.
//
// AttemptMap never short-circuits: elements after the first failure are
// still visited, so the caller sees the complete set of failures rather
// than only the first.
func AttemptMap[In, Out any](items []In, fn func(In) (Out, error)) ([]Out, []error) {
	var (
		successes []Out
		failures  []error
	)
	for _, item := range items {
		out, err := fn(item)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		if len(failures) == 0 {
			successes = append(successes, out)
		}
	}
	if len(failures) > 0 {
		return nil, failures
	}
	return successes, nil
}
