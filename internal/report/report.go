// internal/report/report.go

// Package report emits a canonical-JSON artifact describing one repair run:
// the row counts, the tool version, and sha256 digests of every file touched.
// Canonicalization follows RFC 8785 (JCS) so byte-identical runs produce
// byte-identical reports.
package report

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/gowebpki/jcs"
)

const (
	SchemaID      = "covfix.repair_report"
	SchemaVersion = "1.0.0"
)

// File identifies one input or output file by path and content digest.
type File struct {
	Path   string `json:"path"`
	SHA256 string `json:"sha256"`
}

// Report is the artifact body.
type Report struct {
	SchemaID      string `json:"schema_id"`
	SchemaVersion string `json:"schema_version"`
	ToolVersion   string `json:"tool_version"`
	Filter        File   `json:"filter"`
	Covar         File   `json:"covar"`
	Output        File   `json:"output"`
	Labels        int    `json:"labels"`
	Chunks        int    `json:"chunks"`
	Rows          int    `json:"rows"`
	Width         int    `json:"width"`
}

// Digest returns the hex sha256 of b.
func Digest(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// DigestFile returns the hex sha256 of the file at path.
func DigestFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Digest(b), nil
}

// Write canonicalizes r per RFC 8785 and writes it to path with a trailing
// newline, overwriting any existing file.
func Write(path string, r Report) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return err
	}
	canon, err := jcs.Transform(raw)
	if err != nil {
		return fmt.Errorf("canonicalize report: %w", err)
	}
	canon = append(canon, '\n')
	if err := os.WriteFile(path, canon, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
