package ingest

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ReadLines reads one ingredient per line. Blank lines and lines starting
// with "#" are skipped. The result is never nil.
func ReadLines(r io.Reader) ([]string, error) {
	lines := []string{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read lines")
	}
	return lines, nil
}
