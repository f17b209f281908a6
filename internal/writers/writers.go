// internal/writers/writers.go
package writers

import (
	"fmt"
	"io"
	"os"
)

// Stdout is the output path that selects stdout instead of a file.
const Stdout = "-"

// WriteOutput emits the fully assembled output text in a single write.
// A file destination is overwritten unconditionally; Stdout streams to w.
// The text is complete before this is called, so a failure here never leaves
// a truncated file behind a successful exit.
func WriteOutput(path, text string, w io.Writer) error {
	if path == Stdout {
		_, err := io.WriteString(w, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
