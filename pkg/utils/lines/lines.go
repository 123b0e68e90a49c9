// Package lines streams newline separated records from readers and files.
package lines

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
)

// MaxLineSize is the longest line ReadLines accepts.
const MaxLineSize = 1 << 20

// ReadLines calls fn for every non-blank line of r, trimmed of surrounding
// whitespace. It stops at the first error from fn or when ctx is done.
func ReadLines(ctx context.Context, r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// ReadFile opens path and calls ReadLines on it. The path "-" reads stdin.
func ReadFile(ctx context.Context, path string, fn func(line string) error) error {
	if path == "-" {
		return ReadLines(ctx, os.Stdin, fn)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return ReadLines(ctx, f, fn)
}
