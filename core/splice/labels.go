// core/splice/labels.go
package splice

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ParseLabels reads filter-file content and returns one label per data row.
// The first line is a header and is dropped. A label is the text before the
// line's first delimiter; a line without the delimiter yields the whole line.
func ParseLabels(r io.Reader, delim byte) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var labels []string
	header := true
	for sc.Scan() {
		if header {
			header = false
			continue
		}
		line := sc.Text()
		if i := strings.IndexByte(line, delim); i >= 0 {
			line = line[:i]
		}
		labels = append(labels, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return labels, nil
}

// LoadLabels opens path and parses it with ParseLabels.
func LoadLabels(path string, delim byte) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return ParseLabels(fh, delim)
}
