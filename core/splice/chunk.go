// core/splice/chunk.go
package splice

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseChunks splits the covariance stream on delim into raw tokens, drops the
// leading header/id token, and groups the rest width at a time in order.
// Tokens are not trimmed or otherwise normalized. A final group shorter than
// width is kept as-is rather than padded or rejected, so no data is dropped;
// callers that need strict alignment get it from the count check in Merge.
func ParseChunks(r io.Reader, delim byte, width int) ([][]string, error) {
	if width < 1 {
		return nil, fmt.Errorf("chunk width must be >= 1, got %d", width)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	toks := strings.Split(string(raw), string(delim))
	toks = toks[1:] // header/id token

	var chunks [][]string
	for len(toks) > 0 {
		n := width
		if n > len(toks) {
			n = len(toks)
		}
		chunks = append(chunks, toks[:n:n])
		toks = toks[n:]
	}
	return chunks, nil
}

// LoadChunks opens path and parses it with ParseChunks.
func LoadChunks(path string, delim byte, width int) ([][]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return ParseChunks(fh, delim, width)
}
