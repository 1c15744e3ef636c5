package arginput_test

import (
	"fmt"
	"strings"

	"arginput"
)

// ExampleLines splits any reader into lines; [InputLines] and
// [ArgfLines] apply the same splitting to the chained file inputs.
func ExampleLines() {
	report := strings.NewReader("alpha\nbeta\ngamma\n")

	for line, err := range arginput.Lines(report) {
		if err != nil {
			fmt.Println("read error:", err)
			continue
		}
		fmt.Println(line)
	}

	// Output:
	// alpha
	// beta
	// gamma
}
