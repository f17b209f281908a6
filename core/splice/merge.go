// core/splice/merge.go
package splice

import (
	"fmt"
	"strings"
)

// CountMismatchError reports that the two inputs have drifted out of sync:
// the filter file yielded a different number of labels than the covariance
// file yielded chunks.
type CountMismatchError struct {
	Labels int
	Chunks int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("row count mismatch: %d labels vs %d chunks", e.Labels, e.Chunks)
}

// Merge pairs label i with chunk i and returns the full output text, one
// delimiter-joined row per label, each terminated by a newline. The pairing is
// strictly positional; rows are never reordered, deduplicated, or aggregated.
func Merge(labels []string, chunks [][]string, delim byte) (string, error) {
	if len(labels) != len(chunks) {
		return "", &CountMismatchError{Labels: len(labels), Chunks: len(chunks)}
	}
	d := string(delim)
	var b strings.Builder
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(d)
		b.WriteString(strings.Join(chunks[i], d))
		b.WriteByte('\n')
	}
	return b.String(), nil
}
